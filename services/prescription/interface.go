package prescription

import (
	"context"

	"arogyamitra/models"
)

// Service runs the prescription image pipeline and serves stored results.
type Service interface {
	// Analyze runs image -> OCR -> structured AI plan -> persisted record.
	// Nothing is persisted unless every step succeeds; no retries are made.
	Analyze(ctx context.Context, image []byte, mimeType, userID, targetLanguage string) (*models.Prescription, error)
	// ListForUser returns the user's prescriptions, most recent first.
	ListForUser(userID string) ([]models.Prescription, error)
}
