package translation

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOfflineTranslateHit(t *testing.T) {
	t.Parallel()

	provider := NewOfflineProvider()
	result, err := provider.Translate(context.Background(), Request{Text: "  Hello ", From: "en", To: "es"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.TranslatedText != "hola" {
		t.Fatalf("unexpected translation: got %q want hola", result.TranslatedText)
	}
	if result.Confidence != offlineHitConfidence {
		t.Fatalf("unexpected confidence: got %v want %v", result.Confidence, offlineHitConfidence)
	}
	if result.Provider != "offline" {
		t.Fatalf("unexpected provider: %q", result.Provider)
	}
}

func TestOfflineTranslateMissReturnsPlaceholder(t *testing.T) {
	t.Parallel()

	provider := NewOfflineProvider()
	result, err := provider.Translate(context.Background(), Request{Text: "supercalifragilistic", From: "en", To: "es"})
	if err != nil {
		t.Fatalf("translate must not fail on a miss: %v", err)
	}
	if result.TranslatedText != "[es: supercalifragilistic]" {
		t.Fatalf("unexpected placeholder: %q", result.TranslatedText)
	}
	if result.Confidence != offlinePlaceholderConfidence {
		t.Fatalf("unexpected confidence: got %v want %v", result.Confidence, offlinePlaceholderConfidence)
	}
}

func TestOfflineNeverErrors(t *testing.T) {
	t.Parallel()

	provider := NewOfflineProvider()
	for _, req := range []Request{
		{Text: "", From: "auto", To: "es"},
		{Text: "anything", From: "auto", To: ""},
		{Text: "anything", From: "xx", To: "yy"},
	} {
		if _, err := provider.Translate(context.Background(), req); err != nil {
			t.Fatalf("offline provider errored for %+v: %v", req, err)
		}
	}
}

func TestOfflineLoadPhrasesMergesAndOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "phrases.json")
	payload := `{"es": {"hello": "buenas", "see you": "hasta luego"}}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write phrase table: %v", err)
	}

	provider := NewOfflineProvider()
	if err := provider.LoadPhrases(path); err != nil {
		t.Fatalf("load phrases: %v", err)
	}

	result, err := provider.Translate(context.Background(), Request{Text: "hello", To: "es"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.TranslatedText != "buenas" {
		t.Fatalf("expected user phrase to override embedded one, got %q", result.TranslatedText)
	}

	result, err = provider.Translate(context.Background(), Request{Text: "See You", To: "es"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.TranslatedText != "hasta luego" {
		t.Fatalf("expected merged phrase, got %q", result.TranslatedText)
	}
}

func TestOfflineLoadPhrasesRejectsInvalidTable(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"bad language key": `{"spanish": {"hello": "hola"}}`,
		"non-string value": `{"es": {"hello": 42}}`,
		"empty table":      `{}`,
		"not an object":    `["es"]`,
	}
	for name, payload := range cases {
		name, payload := name, payload
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "phrases.json")
			if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
				t.Fatalf("write phrase table: %v", err)
			}

			provider := NewOfflineProvider()
			if err := provider.LoadPhrases(path); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestOfflineHealthyAlwaysTrue(t *testing.T) {
	t.Parallel()

	if !NewOfflineProvider().Healthy(context.Background()) {
		t.Fatalf("offline provider must always report healthy")
	}
}
