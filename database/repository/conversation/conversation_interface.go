package conversationRepo

import "arogyamitra/models"

// ConversationRepository defines data access for per-user chat histories.
type ConversationRepository interface {
	// GetByUserID retrieves a user's conversation, or nil when none exists yet.
	GetByUserID(userID string) (*models.Conversation, error)
	// AppendMessages appends messages to the user's conversation, creating it
	// if absent. The push is a single atomic document update.
	AppendMessages(userID string, messages []models.Message) error
}
