package chat

import (
	"context"

	"arogyamitra/models"
)

// Service relays chat messages through the language model and records the
// exchange.
type Service interface {
	// Send builds the contextual system prompt, gets a completion for the
	// user's message, appends both turns to the conversation, and returns
	// the reply text.
	Send(ctx context.Context, userID, message string) (string, error)
	// History returns the user's stored conversation turns, oldest first.
	History(userID string) ([]models.Message, error)
}
