package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nimblechat/polyglot/internal/language"
)

// DefaultLibreTranslateEndpoint is the public LibreTranslate instance.
const DefaultLibreTranslateEndpoint = "https://libretranslate.com"

// libreTranslateConfidence is reported when the backend returns no
// detection confidence of its own.
const libreTranslateConfidence = 0.9

// LibreTranslateProvider is the primary remote backend. It speaks the
// LibreTranslate JSON API: POST /translate for translation and
// POST /detect for language detection.
type LibreTranslateProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewLibreTranslateProvider(endpoint, apiKey string, timeout time.Duration) *LibreTranslateProvider {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &LibreTranslateProvider{
		endpoint: normalizeEndpoint(endpoint, DefaultLibreTranslateEndpoint),
		apiKey:   strings.TrimSpace(apiKey),
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *LibreTranslateProvider) Name() string {
	return "libretranslate"
}

func (p *LibreTranslateProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	to := language.NormalizeCode(req.To)
	if to == "" {
		return nil, fmt.Errorf("target language is required")
	}
	from := strings.TrimSpace(req.From)
	if from == "" {
		from = language.Auto
	}

	body, err := json.Marshal(libreTranslateRequest{
		Q:      text,
		Source: from,
		Target: to,
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal translation request: %w", err)
	}

	respBody, err := p.post(ctx, "/translate", body)
	if err != nil {
		return nil, err
	}

	var parsed libreTranslateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode translation response: %w", err)
	}

	translated := strings.TrimSpace(parsed.TranslatedText)
	if translated == "" {
		return nil, fmt.Errorf("translation response was empty")
	}

	confidence := libreTranslateConfidence
	resolvedFrom := from
	if parsed.DetectedLanguage != nil {
		if code := language.NormalizeCode(parsed.DetectedLanguage.Language); code != "" {
			resolvedFrom = code
		}
		if parsed.DetectedLanguage.Confidence > 0 {
			confidence = clampUnit(parsed.DetectedLanguage.Confidence / 100)
		}
	}

	return &Result{
		OriginalText:   req.Text,
		TranslatedText: translated,
		From:           resolvedFrom,
		To:             to,
		Confidence:     confidence,
		Provider:       p.Name(),
	}, nil
}

func (p *LibreTranslateProvider) Detect(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("text is required")
	}

	body, err := json.Marshal(libreDetectRequest{Q: trimmed, APIKey: p.apiKey})
	if err != nil {
		return "", fmt.Errorf("marshal detection request: %w", err)
	}

	respBody, err := p.post(ctx, "/detect", body)
	if err != nil {
		return "", err
	}

	var candidates []libreDetectCandidate
	if err := json.Unmarshal(respBody, &candidates); err != nil {
		return "", fmt.Errorf("decode detection response: %w", err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("detection response was empty")
	}

	code := language.NormalizeCode(candidates[0].Language)
	if code == "" {
		return "", fmt.Errorf("detection returned unusable language %q", candidates[0].Language)
	}
	return code, nil
}

func (p *LibreTranslateProvider) Healthy(ctx context.Context) bool {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"/languages", nil)
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

func (p *LibreTranslateProvider) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errPayload libreErrorResponse
		if unmarshalErr := json.Unmarshal(respBody, &errPayload); unmarshalErr == nil {
			if msg := strings.TrimSpace(errPayload.Error); msg != "" {
				return nil, fmt.Errorf("libretranslate status %d: %s", resp.StatusCode, msg)
			}
		}
		return nil, fmt.Errorf("libretranslate status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return respBody, nil
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Confidence float64 `json:"confidence"`
		Language   string  `json:"language"`
	} `json:"detectedLanguage,omitempty"`
}

type libreDetectRequest struct {
	Q      string `json:"q"`
	APIKey string `json:"api_key,omitempty"`
}

type libreDetectCandidate struct {
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

type libreErrorResponse struct {
	Error string `json:"error"`
}

func normalizeEndpoint(raw, fallback string) string {
	endpoint := strings.TrimSpace(raw)
	if endpoint == "" {
		return fallback
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || strings.TrimSpace(parsed.Host) == "" {
		return fallback
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	return parsed.String()
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
