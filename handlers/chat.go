package handlers

import (
	"net/http"

	"arogyamitra/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatRequest is the expected input for a chat turn.
type ChatRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ChatHandler exposes the chat relay over HTTP.
type ChatHandler struct {
	Svc chat.Service
}

// NewChatHandler creates a new ChatHandler instance.
func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// SendMessageHandler relays one chat message and returns the reply.
// Upstream and storage failures all collapse to a generic 500 here.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and message are required."})
		return
	}

	reply, err := h.Svc.Send(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		logger.Error("Chat relay failed", zap.String("userId", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetHistoryHandler returns the user's stored conversation turns.
func (h *ChatHandler) GetHistoryHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.Param("userId")
	messages, err := h.Svc.History(userID)
	if err != nil {
		logger.Error("Failed to fetch chat history", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history."})
		return
	}

	c.JSON(http.StatusOK, messages)
}
