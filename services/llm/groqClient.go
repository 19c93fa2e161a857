// File: services/llm/groqClient.go
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Client produces chat completions from a language model.
type Client interface {
	// Complete runs a single system+user exchange and returns the assistant
	// text. When jsonMode is set the model is constrained to emit a JSON
	// object.
	Complete(ctx context.Context, systemPrompt, userMessage string, temperature float32, jsonMode bool) (string, error)
}

// GroqClient implements Client against Groq's OpenAI-compatible API.
type GroqClient struct {
	client *openai.Client
	model  string
}

// NewGroqClient creates a Groq chat client for the given model.
func NewGroqClient(apiKey, model string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *GroqClient) Complete(ctx context.Context, systemPrompt, userMessage string, temperature float32, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: temperature,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("groq completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
