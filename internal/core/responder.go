package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/niveshak/internal/config"
	"github.com/Rorical/niveshak/internal/models"
)

var ErrEmptyReply = errors.New("assistant returned no choices")

// Responder produces the assistant's answer to a transcript whose last
// message is the user's newest submission.
type Responder interface {
	Reply(ctx context.Context, history []models.Message) (string, error)
}

// ResponderFunc adapts a plain function to Responder.
type ResponderFunc func(ctx context.Context, history []models.Message) (string, error)

func (f ResponderFunc) Reply(ctx context.Context, history []models.Message) (string, error) {
	return f(ctx, history)
}

// OpenAIResponder answers through an OpenAI compatible chat completion API.
type OpenAIResponder struct {
	client    *openai.Client
	model     string
	assistant string
}

// NewOpenAIResponder returns nil when the active profile has no API key.
func NewOpenAIResponder(cfg *config.Config) *OpenAIResponder {
	if !cfg.IsValid() {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.GetAPIKey())
	if cfg.GetBaseURL() != "" {
		clientConfig.BaseURL = cfg.GetBaseURL()
	}

	return &OpenAIResponder{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.GetModel(),
		assistant: cfg.GetAssistantName(),
	}
}

func (r *OpenAIResponder) Reply(ctx context.Context, history []models.Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: r.buildMessages(history),
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Message.Content, nil
}

func (r *OpenAIResponder) buildMessages(history []models.Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf("You are %s, an AI assistant. Answer helpfully and concisely.", r.assistant),
	})

	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.FromUser() {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	return messages
}
