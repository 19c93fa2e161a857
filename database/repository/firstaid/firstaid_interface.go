package firstaidRepo

import (
	"errors"

	"arogyamitra/models"
)

// ErrNotFound is returned when no case matches the given slug.
var ErrNotFound = errors.New("first-aid case not found")

// FirstAidRepository defines read-only access to the first-aid catalog.
type FirstAidRepository interface {
	// GetAllSummaries retrieves the title/case projection of every case.
	GetAllSummaries() ([]models.FirstAidSummary, error)
	// GetByCase retrieves a full case record by its slug, or ErrNotFound.
	GetByCase(caseKey string) (*models.FirstAidCase, error)
}
