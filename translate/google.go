package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arcticbots/sightsbot/core/logger"
	"github.com/arcticbots/sightsbot/i18n"
	"log/slog"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleOptions configures the web-endpoint translator.
type GoogleOptions struct {
	Client  *http.Client
	Timeout time.Duration
}

// GoogleTranslator calls the public Google web translation endpoint.
type GoogleTranslator struct {
	client *http.Client
	limit  time.Duration
}

// NewGoogleTranslator builds a translator with sane defaults for zeroed
// options.
func NewGoogleTranslator(opts GoogleOptions) *GoogleTranslator {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	limit := opts.Timeout
	if limit <= 0 {
		limit = 10 * time.Second
	}
	return &GoogleTranslator{client: client, limit: limit}
}

// Translate implements Translator.
func (t *GoogleTranslator) Translate(ctx context.Context, text string, from, to i18n.Language) (string, error) {
	if strings.TrimSpace(text) == "" || from == to {
		return "", fmt.Errorf("%w: bad input", ErrUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", from.String())
	q.Set("tl", to.String())
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, googleEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	took := time.Since(start)
	if err != nil {
		logger.Error(ctx, "translate", "provider.call",
			slog.String("status", "fail"),
			slog.String("provider", "google"),
			slog.String("lang", to.String()),
			slog.Duration("duration", logger.RoundMS(took)),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Error(ctx, "translate", "provider.call",
			slog.String("status", "fail"),
			slog.String("provider", "google"),
			slog.Int("http_code", resp.StatusCode),
		)
		return "", fmt.Errorf("%w: status %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	out, err := decodeSegments(body)
	if err != nil {
		return "", err
	}
	logger.Debug(ctx, "translate", "provider.call",
		slog.String("status", "ok"),
		slog.String("provider", "google"),
		slog.String("lang", to.String()),
		slog.Duration("duration", logger.RoundMS(took)),
	)
	return out, nil
}

// decodeSegments extracts translated text from the endpoint's nested-array
// payload: [[["segment","source",...],...],...].
func decodeSegments(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return "", fmt.Errorf("%w: malformed payload", ErrUnavailable)
	}
	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("%w: malformed payload", ErrUnavailable)
	}
	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		b.WriteString(piece)
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("%w: empty translation", ErrUnavailable)
	}
	return out, nil
}
