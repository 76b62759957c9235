package translation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nimblechat/polyglot/internal/cache"
	"github.com/nimblechat/polyglot/internal/langdetect"
	"github.com/nimblechat/polyglot/internal/language"
)

// Synthetic provider names reported on the short-circuit paths.
const (
	providerNone     = "none"
	providerIdentity = "identity"
	providerFailed   = "failed"
)

const (
	defaultRequestTimeout   = 5 * time.Second
	defaultBatchConcurrency = 5
)

var errProvidersExhausted = errors.New("every translation provider failed")

// Options configures an Orchestrator. Zero fields fall back to the
// documented defaults.
type Options struct {
	CacheCapacity    int
	RequestTimeout   time.Duration
	BatchConcurrency int
}

// Orchestrator walks an ordered provider chain with per-provider
// failure isolation and memoizes successful results in a bounded LRU
// cache. It is stateless across calls except for that cache and is
// safe for concurrent use.
type Orchestrator struct {
	providers  []Provider
	cache      *cache.Cache[string, Result]
	logger     zerolog.Logger
	timeout    time.Duration
	batchLimit int
}

// NewOrchestrator builds an orchestrator over providers in priority
// order (best quality first; the last entry should be a provider that
// cannot fail, such as the offline dictionary).
func NewOrchestrator(providers []Provider, logger zerolog.Logger, opts Options) *Orchestrator {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	batchLimit := opts.BatchConcurrency
	if batchLimit < 1 {
		batchLimit = defaultBatchConcurrency
	}

	return &Orchestrator{
		providers:  providers,
		cache:      cache.New[string, Result](opts.CacheCapacity),
		logger:     logger,
		timeout:    timeout,
		batchLimit: batchLimit,
	}
}

// Translate turns text into the target language. It never fails: a
// fully exhausted provider chain yields a result echoing the input
// with Provider "failed" and Confidence 0, so callers can render
// best-effort output unconditionally.
func (o *Orchestrator) Translate(ctx context.Context, text, from, to string) Result {
	result, err := o.translate(ctx, text, from, to)
	if err != nil {
		return Result{
			OriginalText:   text,
			TranslatedText: text,
			From:           normalizeFrom(from),
			To:             normalizeTo(to),
			Confidence:     0,
			Provider:       providerFailed,
		}
	}
	return result
}

// TranslateBatch translates texts under the configured concurrency
// cap. Dispatch is chunked: up to the cap run in parallel and the
// whole chunk completes before the next starts. The returned slice is
// always index-aligned with the input; a failed item is substituted
// with an identity result and never affects its siblings.
func (o *Orchestrator) TranslateBatch(ctx context.Context, texts []string, from, to string) []Result {
	results := make([]Result, len(texts))

	for start := 0; start < len(texts); start += o.batchLimit {
		end := start + o.batchLimit
		if end > len(texts) {
			end = len(texts)
		}

		group := new(errgroup.Group)
		for i := start; i < end; i++ {
			i := i
			group.Go(func() error {
				result, err := o.translate(ctx, texts[i], from, to)
				if err != nil {
					results[i] = identityResult(texts[i], normalizeFrom(from), normalizeTo(to))
					return nil
				}
				results[i] = result
				return nil
			})
		}
		_ = group.Wait()
	}

	return results
}

// Detect resolves the language of text, trying provider detection in
// chain order before falling back to the local statistical detector
// and finally the script heuristic. It never fails.
func (o *Orchestrator) Detect(ctx context.Context, text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "en"
	}

	for _, provider := range o.providers {
		callCtx, cancel := context.WithTimeout(ctx, o.timeout)
		code, err := provider.Detect(callCtx, trimmed)
		cancel()
		if err != nil {
			o.logger.Debug().
				Err(err).
				Str("provider", provider.Name()).
				Msg("provider detection failed")
			continue
		}
		if normalized := language.NormalizeCode(code); normalized != "" {
			return normalized
		}
	}

	if code := langdetect.DetectISO6391(trimmed); code != "" {
		return code
	}
	return langdetect.ByScript(trimmed)
}

// DetectLocal classifies text by Unicode script ranges. It is pure,
// synchronous, and never touches the network.
func (o *Orchestrator) DetectLocal(text string) string {
	return langdetect.ByScript(text)
}

// LanguageByCode looks up the static language catalog.
func (o *Orchestrator) LanguageByCode(code string) (language.Language, bool) {
	return language.ByCode(code)
}

// ClearCache drops every memoized result.
func (o *Orchestrator) ClearCache() {
	o.cache.Clear()
}

// CacheLen reports the number of memoized results.
func (o *Orchestrator) CacheLen() int {
	return o.cache.Len()
}

// Healthy probes every provider and reports per-provider liveness.
func (o *Orchestrator) Healthy(ctx context.Context) map[string]bool {
	health := make(map[string]bool, len(o.providers))
	for _, provider := range o.providers {
		callCtx, cancel := context.WithTimeout(ctx, o.timeout)
		health[provider.Name()] = provider.Healthy(callCtx)
		cancel()
	}
	return health
}

func (o *Orchestrator) translate(ctx context.Context, text, from, to string) (Result, error) {
	from = normalizeFrom(from)
	to = normalizeTo(to)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{From: from, To: to, Confidence: 1, Provider: providerNone}, nil
	}
	if from == to {
		return identityResult(text, from, to), nil
	}

	key := cacheKey(from, to, trimmed)
	if hit, ok := o.cache.Get(key); ok {
		hit.Cached = true
		return hit, nil
	}

	req := Request{Text: trimmed, From: from, To: to}
	for _, provider := range o.providers {
		callCtx, cancel := context.WithTimeout(ctx, o.timeout)
		result, err := provider.Translate(callCtx, req)
		cancel()
		if err != nil {
			o.logger.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Str("from", from).
				Str("to", to).
				Msg("translation provider failed, advancing chain")
			continue
		}

		stored := *result
		stored.Cached = false
		o.cache.Set(key, stored)
		return stored, nil
	}

	return Result{}, errProvidersExhausted
}

func identityResult(text, from, to string) Result {
	return Result{
		OriginalText:   text,
		TranslatedText: text,
		From:           from,
		To:             to,
		Confidence:     1,
		Provider:       providerIdentity,
	}
}

func cacheKey(from, to, trimmedText string) string {
	return from + ":" + to + ":" + trimmedText
}

func normalizeFrom(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" || trimmed == language.Auto {
		return language.Auto
	}
	if code := language.NormalizeCode(trimmed); code != "" {
		return code
	}
	return language.Auto
}

func normalizeTo(raw string) string {
	if code := language.NormalizeCode(raw); code != "" {
		return code
	}
	return "en"
}
