package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	conversationRepo "arogyamitra/database/repository/conversation"
	prescriptionRepo "arogyamitra/database/repository/prescription"
	"arogyamitra/models"
	"arogyamitra/services/llm"
	"arogyamitra/utils"

	"go.uber.org/zap"
)

const chatTemperature = 0.7

// noHistoryContext is the context sentence used when the user has no
// prescription on record.
const noHistoryContext = "The user has no prescription history."

const chatPromptFormat = `You are 'Arogya Mitra,' a helpful and empathetic health assistant.
**CRITICAL INSTRUCTION: Your entire reply MUST be in the selected user language and written in its native script (e.g., Devanagari for Hindi).**
For example, for Hindi, instead of 'Namaste', you MUST write 'नमस्ते'. Do not use Roman/English characters for Hindi/Telugu words.

CONTEXT: %s.
Answer the user's question based on this context if relevant. If the question is outside this context, provide a general, safe answer.
Always encourage consulting a doctor for serious issues.`

// DefaultChatService relays messages through the LLM with the user's latest
// prescription as context.
type DefaultChatService struct {
	LLM           llm.Client
	Conversations conversationRepo.ConversationRepository
	Prescriptions prescriptionRepo.PrescriptionRepository
}

func (s *DefaultChatService) Send(ctx context.Context, userID, message string) (string, error) {
	logger := utils.GetLogger()

	latest, err := s.Prescriptions.GetLatestByUser(userID)
	if err != nil {
		return "", fmt.Errorf("failed to look up prescription history: %w", err)
	}

	systemPrompt := fmt.Sprintf(chatPromptFormat, buildContext(latest))

	// Only the current exchange goes to the model; stored history is for
	// the client's transcript view.
	reply, err := s.LLM.Complete(ctx, systemPrompt, message, chatTemperature, false)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	now := time.Now()
	pair := []models.Message{
		{Role: "user", Content: message, Timestamp: now},
		{Role: "assistant", Content: reply, Timestamp: now},
	}
	if err := s.Conversations.AppendMessages(userID, pair); err != nil {
		return "", fmt.Errorf("failed to record conversation: %w", err)
	}

	logger.Debug("Chat turn recorded", zap.String("userId", userID))
	return reply, nil
}

func (s *DefaultChatService) History(userID string) ([]models.Message, error) {
	conv, err := s.Conversations.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return []models.Message{}, nil
	}
	return conv.Messages, nil
}

// buildContext summarizes the latest prescription for the system prompt.
func buildContext(latest *models.Prescription) string {
	if latest == nil {
		return noHistoryContext
	}
	names := make([]string, 0, len(latest.Medicines))
	for _, m := range latest.Medicines {
		names = append(names, m.Name)
	}
	return fmt.Sprintf("User's latest prescription: Medicines: %s. Advice: %s",
		strings.Join(names, ", "), strings.Join(latest.LifestyleAdvice, " "))
}
