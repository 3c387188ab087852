package core

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/niveshak/internal/config"
	"github.com/Rorical/niveshak/internal/models"
)

func completionServer(t *testing.T, choices []openai.ChatCompletionChoice, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:      "chatcmpl-1",
			Object:  "chat.completion",
			Model:   got.Model,
			Choices: choices,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func loadConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	return cfg
}

func TestNewOpenAIResponder_RequiresAPIKey(t *testing.T) {
	cfg := loadConfig(t, `{"profiles": {"default": {"model": "gpt-4o-mini"}}}`)
	assert.Nil(t, NewOpenAIResponder(cfg))
}

func TestOpenAIResponder_Reply(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := completionServer(t, []openai.ChatCompletionChoice{{
		Index:        0,
		Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Buy low."},
		FinishReason: openai.FinishReasonStop,
	}}, &req)

	cfg := loadConfig(t, `{"profiles": {"default": {"api_key": "sk-test", "base_url": "`+srv.URL+`/v1", "model": "gpt-4o"}}, "assistant_name": "Niveshak"}`)
	responder := NewOpenAIResponder(cfg)
	require.NotNil(t, responder)

	content, err := responder.Reply(context.Background(), []models.Message{
		{ID: 1, Sender: models.Assistant, Content: "Hi there!"},
		{ID: 2, Sender: models.User, Content: "Any tips?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy low.", content)

	assert.Equal(t, "gpt-4o", req.Model)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Niveshak")
	assert.Equal(t, openai.ChatMessageRoleAssistant, req.Messages[1].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[2].Role)
	assert.Equal(t, "Any tips?", req.Messages[2].Content)
}

func TestOpenAIResponder_NoChoices(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := completionServer(t, nil, &req)

	cfg := loadConfig(t, `{"profiles": {"default": {"api_key": "sk-test", "base_url": "`+srv.URL+`/v1"}}}`)
	_, err := NewOpenAIResponder(cfg).Reply(context.Background(), []models.Message{{ID: 1, Sender: models.User, Content: "x"}})
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestOpenAIResponder_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	cfg := loadConfig(t, `{"profiles": {"default": {"api_key": "sk-test", "base_url": "`+srv.URL+`/v1"}}}`)
	_, err := NewOpenAIResponder(cfg).Reply(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion")
}
