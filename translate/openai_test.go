package translate

import (
	"testing"
	"time"
)

func TestNewOpenAITranslatorDefaults(t *testing.T) {
	tr := NewOpenAITranslator(OpenAIOptions{APIKey: "sk-test"})
	if tr.model != "gpt-4o-mini" {
		t.Fatalf("default model = %q, want gpt-4o-mini", tr.model)
	}
	if tr.limit != 15*time.Second {
		t.Fatalf("default timeout = %v, want 15s", tr.limit)
	}

	tr = NewOpenAITranslator(OpenAIOptions{APIKey: "sk-test", Model: "gpt-4o", Timeout: time.Second})
	if tr.model != "gpt-4o" || tr.limit != time.Second {
		t.Fatalf("overrides not applied: model=%q limit=%v", tr.model, tr.limit)
	}
}
