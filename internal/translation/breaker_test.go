package translation

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	inner := &stubProvider{name: "remote", err: fmt.Errorf("down")}
	wrapped := WithBreaker(inner, BreakerSettings{MaxFailures: 3, ResetTimeout: time.Minute})

	req := Request{Text: "hello", From: "en", To: "es"}
	for i := 0; i < 6; i++ {
		if _, err := wrapped.Translate(context.Background(), req); err == nil {
			t.Fatalf("expected failure on call %d", i)
		}
	}

	// After tripping, calls fail fast without reaching the backend.
	if got := inner.callCount(); got != 3 {
		t.Fatalf("unexpected backend call count: got %d want 3", got)
	}
	if wrapped.Healthy(context.Background()) {
		t.Fatalf("expected open breaker to report unhealthy")
	}
}

func TestBreakerPassesThroughSuccess(t *testing.T) {
	t.Parallel()

	inner := &stubProvider{name: "remote"}
	wrapped := WithBreaker(inner, BreakerSettings{})

	if wrapped.Name() != "remote" {
		t.Fatalf("unexpected name: %q", wrapped.Name())
	}

	result, err := wrapped.Translate(context.Background(), Request{Text: "hello", From: "en", To: "es"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.TranslatedText != "HELLO" || result.Provider != "remote" {
		t.Fatalf("unexpected result: %+v", result)
	}

	code, err := wrapped.Detect(context.Background(), "hello")
	if err != nil || code != "en" {
		t.Fatalf("unexpected detection: %q, %v", code, err)
	}
}
