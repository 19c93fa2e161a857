package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Chat endpoints.
	SendChatMessageHandler gin.HandlerFunc
	GetChatHistoryHandler  gin.HandlerFunc

	// Prescription endpoints.
	AnalyzePrescriptionHandler gin.HandlerFunc
	ListPrescriptionsHandler   gin.HandlerFunc

	// Reminder endpoints.
	CreateReminderHandler gin.HandlerFunc
	ListRemindersHandler  gin.HandlerFunc
	MarkTakenHandler      gin.HandlerFunc

	// First-aid endpoints.
	ListFirstAidCasesHandler gin.HandlerFunc
	GetFirstAidCaseHandler   gin.HandlerFunc
}
