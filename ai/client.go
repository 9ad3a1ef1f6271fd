package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"ringside/config"
	"ringside/models"
)

// DefaultTimeout bounds how long a completion call may take before the bot
// falls back to the configured error message.
const DefaultTimeout = 30 * time.Second

// Completer generates a conversational reply for a user prompt. Past
// interactions are passed along so replies can stay in character across a
// conversation.
type Completer interface {
	Complete(ctx context.Context, prompt string, memories []models.Memory) (string, error)
}

// OpenAIClient implements Completer against the OpenAI chat completion API
type OpenAIClient struct {
	client  *openai.Client
	cfg     *config.Config
	timeout time.Duration
}

// NewOpenAIClient creates a completion client. AI prompt strings are read
// from the config on every call so constants updates take effect immediately.
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		client:  openai.NewClient(cfg.OpenAIKey),
		cfg:     cfg,
		timeout: DefaultTimeout,
	}
}

// Complete sends the prompt with the configured persona and the user's recent
// interactions as context
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, memories []models.Memory) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.cfg.AIModel
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: buildMessages(c.cfg.AI(), prompt, memories),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// buildMessages assembles the persona priming exchange followed by the actual
// user prompt with remembered context
func buildMessages(text config.AIText, prompt string, memories []models.Memory) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	system := text.SystemMessage
	if text.Character != "" {
		system = strings.TrimSpace(system + "\nStay in character as " + text.Character + ".")
	}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	if text.UserMessageFirst != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: text.UserMessageFirst,
		})
	}
	if text.AssistantMessage != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: text.AssistantMessage,
		})
	}

	var final strings.Builder
	if text.UserMessageSecond != "" {
		final.WriteString(text.UserMessageSecond)
		final.WriteString("\n\n")
	}
	if len(memories) > 0 {
		final.WriteString("Earlier interactions with this user:\n")
		for _, mem := range memories {
			final.WriteString(mem.Content)
			final.WriteString("\n")
		}
		final.WriteString("\n")
	}
	final.WriteString(prompt)

	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: final.String(),
	})
}
