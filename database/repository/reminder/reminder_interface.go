package reminderRepo

import (
	"errors"

	"arogyamitra/models"
)

// ErrNotFound is returned when no reminder matches the given id.
var ErrNotFound = errors.New("reminder not found")

// ReminderRepository defines data access for medicine reminders.
type ReminderRepository interface {
	// Create inserts a new reminder record. Duplicates are permitted.
	Create(reminder *models.Reminder) error
	// GetByUserAndDate retrieves a user's reminders for one date, sorted by
	// reminderTime ascending.
	GetByUserAndDate(userID, date string) ([]models.Reminder, error)
	// MarkTaken sets isTaken on the reminder and returns the updated record,
	// or ErrNotFound when the id does not exist.
	MarkTaken(id string) (*models.Reminder, error)
	// GetDue retrieves untaken reminders matching the exact date and time.
	GetDue(date, reminderTime string) ([]models.Reminder, error)
}
