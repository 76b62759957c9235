package translation

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings tunes the circuit breaker wrapped around remote
// providers.
type BreakerSettings struct {
	MaxFailures  int
	ResetTimeout time.Duration
}

// breakerProvider decorates a Provider with a circuit breaker. An open
// breaker fails Translate and Detect fast, which reads to the
// orchestrator like any other provider failure and advances the chain
// without waiting out the remote timeout.
type breakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker wraps provider in a circuit breaker. Providers that
// cannot fail (the offline dictionary) should not be wrapped.
func WithBreaker(provider Provider, settings BreakerSettings) Provider {
	maxFailures := uint32(5)
	if settings.MaxFailures > 0 {
		maxFailures = uint32(settings.MaxFailures)
	}
	resetTimeout := 30 * time.Second
	if settings.ResetTimeout > 0 {
		resetTimeout = settings.ResetTimeout
	}

	return &breakerProvider{
		inner: provider,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    provider.Name(),
			Timeout: resetTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
		}),
	}
}

func (b *breakerProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	value, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Translate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return value.(*Result), nil
}

func (b *breakerProvider) Detect(ctx context.Context, text string) (string, error) {
	value, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Detect(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

func (b *breakerProvider) Healthy(ctx context.Context) bool {
	if b.breaker.State() == gobreaker.StateOpen {
		return false
	}
	return b.inner.Healthy(ctx)
}

func (b *breakerProvider) Name() string {
	return b.inner.Name()
}
