package config

import (
	"strings"
	"testing"
)

func baseConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := baseConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Catalog.Path != "sights.json" || cfg.Catalog.ImagesDir != "images" || cfg.Catalog.PageSize != 5 {
		t.Fatalf("catalog defaults: %+v", cfg.Catalog)
	}
	if cfg.Translator.Provider != TranslatorGoogle {
		t.Fatalf("translator provider = %q, want google", cfg.Translator.Provider)
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	err := Normalize(&Config{})
	if err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestNormalizeRunModes(t *testing.T) {
	cfg := baseConfig()
	cfg.Telegram.RunMode = "Polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("polling alias: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want longpoll", cfg.Telegram.RunMode)
	}

	cfg = baseConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown run mode")
	}
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := baseConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook without url")
	}

	cfg = baseConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook = WebhookConfig{URL: "https://bot.example/hook", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("valid webhook config: %v", err)
	}
}

func TestNormalizeTranslatorProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.Translator.Provider = "openai"
	if err := Normalize(cfg); err == nil {
		t.Fatal("openai without key must fail")
	}

	cfg = baseConfig()
	cfg.Translator = TranslatorConfig{Provider: "OpenAI", OpenAIKey: "sk-test"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("openai with key: %v", err)
	}
	if cfg.Translator.Provider != TranslatorOpenAI {
		t.Fatalf("provider = %q, want openai", cfg.Translator.Provider)
	}

	cfg = baseConfig()
	cfg.Translator.Provider = "babelfish"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNormalizeRateLimitExcludes(t *testing.T) {
	cfg := baseConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Fatalf("exclude not normalized: %v", cfg.RateLimit.ExcludeUpdates)
	}

	cfg = baseConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"carrier-pigeon"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown exclude value")
	}
}

func TestAccessAllowed(t *testing.T) {
	a := AccessConfig{AllowedIDs: []int64{42, 7}}
	if !a.Allowed(42) || !a.Allowed(7) {
		t.Fatal("listed ids must be allowed")
	}
	if a.Allowed(99) {
		t.Fatal("unlisted id must be rejected")
	}
	if (AccessConfig{}).Allowed(42) {
		t.Fatal("empty list allows nobody")
	}
}
