package reminder

import (
	"time"

	reminderRepo "arogyamitra/database/repository/reminder"
	"arogyamitra/models"
	"arogyamitra/utils"

	"go.uber.org/zap"
)

// Notifier delivers a due-reminder notification. Delivery is best-effort
// and in-process; there is no retry or missed-reminder catch-up.
type Notifier interface {
	Notify(reminder models.Reminder)
}

// Service manages medicine reminders and the periodic due sweep.
type Service interface {
	// Create stores a new reminder. IsTaken always starts false.
	Create(reminder *models.Reminder) (*models.Reminder, error)
	// ListForDate returns the user's reminders for a date, sorted by time.
	ListForDate(userID, date string) ([]models.Reminder, error)
	// MarkTaken flips the reminder to taken; idempotent.
	MarkTaken(id string) (*models.Reminder, error)
	// NotifyDue sweeps reminders due at the given instant and notifies each
	// match. Errors are logged, never propagated.
	NotifyDue(now time.Time)
}

// DefaultReminderService implements Service on the reminder repository.
type DefaultReminderService struct {
	Repo     reminderRepo.ReminderRepository
	Notifier Notifier
}

func (s *DefaultReminderService) Create(reminder *models.Reminder) (*models.Reminder, error) {
	reminder.ID = ""
	reminder.IsTaken = false
	if err := s.Repo.Create(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *DefaultReminderService) ListForDate(userID, date string) ([]models.Reminder, error) {
	return s.Repo.GetByUserAndDate(userID, date)
}

func (s *DefaultReminderService) MarkTaken(id string) (*models.Reminder, error) {
	return s.Repo.MarkTaken(id)
}

// NotifyDue matches reminders against the minute of the given local time.
// A reminder is only matched on its exact minute, so a delayed or skipped
// sweep silently misses it.
func (s *DefaultReminderService) NotifyDue(now time.Time) {
	logger := utils.GetLogger()

	date := now.Format("2006-01-02")
	reminderTime := now.Format("15:04")

	due, err := s.Repo.GetDue(date, reminderTime)
	if err != nil {
		logger.Error("Reminder sweep failed", zap.Error(err))
		return
	}

	for _, r := range due {
		s.Notifier.Notify(r)
	}
}

// LogNotifier logs each due reminder; the only delivery channel in scope.
type LogNotifier struct{}

func (LogNotifier) Notify(r models.Reminder) {
	utils.GetLogger().Info("Sending medicine reminder",
		zap.String("userId", r.UserID),
		zap.String("medicine", r.MedicineName),
		zap.String("time", r.ReminderTime))
}
