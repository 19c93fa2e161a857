package prescriptionRepo

import "arogyamitra/models"

// PrescriptionRepository defines data access for analyzed prescriptions.
type PrescriptionRepository interface {
	// Create inserts a new prescription record.
	Create(p *models.Prescription) error
	// GetLatestByUser retrieves the user's most recent prescription by
	// CreatedAt, or nil when the user has none.
	GetLatestByUser(userID string) (*models.Prescription, error)
	// GetAllByUser retrieves all of the user's prescriptions, most recent first.
	GetAllByUser(userID string) ([]models.Prescription, error)
}
