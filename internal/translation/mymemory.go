package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nimblechat/polyglot/internal/langdetect"
	"github.com/nimblechat/polyglot/internal/language"
)

// DefaultMyMemoryEndpoint is the public MyMemory API host.
const DefaultMyMemoryEndpoint = "https://api.mymemory.translated.net"

// MyMemoryProvider is the secondary remote backend. MyMemory reports
// its own match score in [0,1] which maps directly onto Confidence.
type MyMemoryProvider struct {
	endpoint string
	email    string // raises the anonymous rate limit when set
	client   *http.Client
}

func NewMyMemoryProvider(endpoint, email string, timeout time.Duration) *MyMemoryProvider {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &MyMemoryProvider{
		endpoint: normalizeEndpoint(endpoint, DefaultMyMemoryEndpoint),
		email:    strings.TrimSpace(email),
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *MyMemoryProvider) Name() string {
	return "mymemory"
}

func (p *MyMemoryProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	to := language.NormalizeCode(req.To)
	if to == "" {
		return nil, fmt.Errorf("target language is required")
	}

	// MyMemory requires a concrete source language; resolve "auto"
	// with the local detector before the outbound call.
	from := language.NormalizeCode(req.From)
	if from == "" || from == language.Auto {
		from = langdetect.DetectISO6391(text)
	}
	if from == "" {
		from = langdetect.ByScript(text)
	}

	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", from+"|"+to)
	if p.email != "" {
		query.Set("de", p.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"/get?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build translation request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send translation request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mymemory status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed myMemoryResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode translation response: %w", err)
	}
	// MyMemory signals failures inside a 200 body.
	if parsed.ResponseStatus != 0 && parsed.ResponseStatus != http.StatusOK {
		details := strings.TrimSpace(parsed.ResponseData.ResponseDetails)
		if details == "" {
			details = "unspecified backend failure"
		}
		return nil, fmt.Errorf("mymemory response status %d: %s", parsed.ResponseStatus, details)
	}

	translated := strings.TrimSpace(parsed.ResponseData.TranslatedText)
	if translated == "" {
		return nil, fmt.Errorf("translation response was empty")
	}

	return &Result{
		OriginalText:   req.Text,
		TranslatedText: translated,
		From:           from,
		To:             to,
		Confidence:     clampUnit(parsed.ResponseData.Match),
		Provider:       p.Name(),
	}, nil
}

// Detect is a stub: MyMemory exposes no cheap detection endpoint, so
// the local statistical detector answers instead.
func (p *MyMemoryProvider) Detect(_ context.Context, text string) (string, error) {
	code := langdetect.DetectISO6391(text)
	if code == "" {
		return "", fmt.Errorf("no confident detection for sample")
	}
	return code, nil
}

func (p *MyMemoryProvider) Healthy(ctx context.Context) bool {
	// A minimal known-good translation doubles as the liveness probe.
	query := url.Values{}
	query.Set("q", "ping")
	query.Set("langpair", "en|es")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"/get?"+query.Encode(), nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}
