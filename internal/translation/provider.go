// Package translation implements the resilient multi-provider
// translation core: an ordered chain of heterogeneous backends with an
// LRU result cache and bounded-concurrency batch dispatch.
package translation

import "context"

// Provider is one interchangeable translation backend. Implementations
// issue exactly one outbound call per Translate invocation and never
// retry; retries happen in the orchestrator as fallback to the next
// provider in the chain.
type Provider interface {
	// Translate returns an error for any transport failure, non-2xx
	// response, or backend-reported failure. It must never degrade a
	// failure into a success.
	Translate(ctx context.Context, req Request) (*Result, error)

	// Detect reports the ISO 639-1 code of text, best effort. Backends
	// without cheap detection may return a fixed default.
	Detect(ctx context.Context, text string) (string, error)

	// Healthy is a cheap liveness probe. It is advisory only; the
	// orchestrator does not gate Translate calls on it.
	Healthy(ctx context.Context) bool

	Name() string
}

// Request describes one translation request. From is either an ISO
// 639-1 code or the "auto" sentinel.
type Request struct {
	Text string
	From string
	To   string
}

// Result is the outcome of one translation. Values are immutable once
// produced; a cache hit returns a copy with Cached set, never the
// cached original.
type Result struct {
	OriginalText   string  `json:"original_text"`
	TranslatedText string  `json:"translated_text"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Confidence     float64 `json:"confidence"`
	Provider       string  `json:"provider"`
	Cached         bool    `json:"cached"`
}
