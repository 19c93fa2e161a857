package cron

import (
	"time"

	"arogyamitra/services/reminder"
	"arogyamitra/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartReminderScheduler runs the due-reminder sweep once a minute. The
// sweep is best-effort: a tick that is delayed past a reminder's minute
// silently misses it, and errors inside a tick never stop later ticks.
func StartReminderScheduler(svc reminder.Service) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	if _, err := c.AddFunc("* * * * *", func() {
		svc.NotifyDue(time.Now())
	}); err != nil {
		logger.Fatal("Failed to schedule reminder sweep", zap.Error(err))
	}
	c.Start()

	logger.Info("Reminder sweep scheduled every minute")
	return c
}
