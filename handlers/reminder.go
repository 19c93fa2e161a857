package handlers

import (
	"errors"
	"net/http"

	reminderRepo "arogyamitra/database/repository/reminder"
	"arogyamitra/models"
	"arogyamitra/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes reminder CRUD over HTTP.
type ReminderHandler struct {
	Svc reminder.Service
}

// NewReminderHandler creates a new ReminderHandler instance.
func NewReminderHandler(svc reminder.Service) *ReminderHandler {
	return &ReminderHandler{Svc: svc}
}

// CreateReminderHandler stores a new reminder. Duplicates are permitted.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Reminder
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reminder payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, medicineName, reminderTime, and date are required."})
		return
	}

	saved, err := h.Svc.Create(&req)
	if err != nil {
		logger.Error("Failed to create reminder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder."})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListRemindersHandler returns a user's reminders for one date, sorted by
// reminder time.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.Param("userId")
	date := c.Param("date")

	reminders, err := h.Svc.ListForDate(userID, date)
	if err != nil {
		logger.Error("Failed to fetch reminders", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders."})
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	c.JSON(http.StatusOK, reminders)
}

// MarkTakenHandler flips a reminder to taken and returns the updated record.
func (h *ReminderHandler) MarkTakenHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("reminderId")
	updated, err := h.Svc.MarkTaken(id)
	if errors.Is(err, reminderRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found."})
		return
	}
	if err != nil {
		logger.Error("Failed to update reminder", zap.String("reminderId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder."})
		return
	}

	c.JSON(http.StatusOK, updated)
}
