package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/willowmind/willow/internal/models"
)

// DefaultChatModel is used when no model is configured.
const DefaultChatModel = "gpt-4o-mini"

// EmptyResponseMessage is returned when the endpoint answers 2xx but the
// first choice carries no content.
const EmptyResponseMessage = "API Error: Received a successful response but it was empty."

// ChatClient issues chat-completion requests against a fixed endpoint.
type ChatClient struct {
	client *openai.Client
	model  string
}

// NewChatClient builds a client for the given bearer token. baseURL overrides
// the default endpoint when non-empty (tests point it at a stub server).
func NewChatClient(apiKey string, baseURL string, model string) *ChatClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultChatModel
	}
	return &ChatClient{client: openai.NewClientWithConfig(config), model: model}
}

// Complete sends the ordered room history as a role-tagged transcript and
// returns the assistant's reply. Failures never surface as errors: transport
// problems, non-2xx statuses and blank replies all come back as descriptive
// strings, and the caller persists whatever string it gets.
func (chat *ChatClient) Complete(ctx context.Context, history []models.ChatMessage) string {
	transcript := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, message := range history {
		role := openai.ChatMessageRoleAssistant
		if message.FromUser {
			role = openai.ChatMessageRoleUser
		}
		transcript = append(transcript, openai.ChatCompletionMessage{
			Role:    role,
			Content: message.Text,
		})
	}

	response, err := chat.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    chat.model,
		Messages: transcript,
	})
	if err != nil {
		return describeCompletionError(err)
	}

	if len(response.Choices) == 0 {
		return EmptyResponseMessage
	}
	content := response.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return EmptyResponseMessage
	}
	return content
}

func describeCompletionError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("API Error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	var requestErr *openai.RequestError
	if errors.As(err, &requestErr) {
		body := strings.TrimSpace(string(requestErr.Body))
		return fmt.Sprintf("API Error %d: %s", requestErr.HTTPStatusCode, body)
	}

	return "Network Error: " + err.Error()
}
