package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arcticbots/sightsbot/core/logger"
	"github.com/arcticbots/sightsbot/i18n"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

var languageNames = map[i18n.Language]string{
	i18n.English: "English",
	i18n.Russian: "Russian",
}

// OpenAIOptions configures the chat-completion translator.
type OpenAIOptions struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAITranslator translates via a chat completion call.
type OpenAITranslator struct {
	client *openai.Client
	model  string
	limit  time.Duration
}

// NewOpenAITranslator builds a translator with sane defaults for zeroed
// options.
func NewOpenAITranslator(opts OpenAIOptions) *OpenAITranslator {
	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	limit := opts.Timeout
	if limit <= 0 {
		limit = 15 * time.Second
	}
	return &OpenAITranslator{
		client: openai.NewClient(opts.APIKey),
		model:  model,
		limit:  limit,
	}
}

// Translate implements Translator.
func (t *OpenAITranslator) Translate(ctx context.Context, text string, from, to i18n.Language) (string, error) {
	if strings.TrimSpace(text) == "" || from == to {
		return "", fmt.Errorf("%w: bad input", ErrUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	start := time.Now()
	resp, err := t.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"Translate the user message from %s to %s. Reply with the translation only.",
					languageNames[from], languageNames[to],
				),
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	took := time.Since(start)
	if err != nil {
		logger.Error(ctx, "translate", "provider.call",
			slog.String("status", "fail"),
			slog.String("provider", "openai"),
			slog.String("lang", to.String()),
			slog.Duration("duration", logger.RoundMS(took)),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("%w: empty translation", ErrUnavailable)
	}
	logger.Debug(ctx, "translate", "provider.call",
		slog.String("status", "ok"),
		slog.String("provider", "openai"),
		slog.String("lang", to.String()),
		slog.Duration("duration", logger.RoundMS(took)),
	)
	return out, nil
}
