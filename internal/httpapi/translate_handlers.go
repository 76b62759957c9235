package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nimblechat/polyglot/internal/language"
)

type translateRequest struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

type batchTranslateRequest struct {
	Texts []string `json:"texts"`
	From  string   `json:"from"`
	To    string   `json:"to"`
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Language string             `json:"language"`
	Catalog  *language.Language `json:"catalog,omitempty"`
}

type healthResponse struct {
	Status      string          `json:"status"`
	Providers   map[string]bool `json:"providers"`
	CachedItems int             `json:"cached_items"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid JSON body")
	}

	result := s.orchestrator.Translate(c.Request().Context(), req.Text, req.From, req.To)
	return success(c, result)
}

func (s *Server) handleTranslateBatch(c echo.Context) error {
	var req batchTranslateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if len(req.Texts) == 0 {
		return fail(c, http.StatusBadRequest, "texts must not be empty")
	}
	if len(req.Texts) > maxBatchSize {
		return fail(c, http.StatusBadRequest, fmt.Sprintf("texts must not exceed %d items", maxBatchSize))
	}

	results := s.orchestrator.TranslateBatch(c.Request().Context(), req.Texts, req.From, req.To)
	return success(c, results)
}

func (s *Server) handleDetect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fail(c, http.StatusBadRequest, "text must not be empty")
	}

	code := s.orchestrator.Detect(c.Request().Context(), req.Text)
	resp := detectResponse{Language: code}
	if lang, ok := s.orchestrator.LanguageByCode(code); ok {
		resp.Catalog = &lang
	}
	return success(c, resp)
}

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, language.All())
}

func (s *Server) handleHealth(c echo.Context) error {
	providers := s.orchestrator.Healthy(c.Request().Context())

	status := "ok"
	for _, healthy := range providers {
		if !healthy {
			status = "degraded"
			break
		}
	}

	return success(c, healthResponse{
		Status:      status,
		Providers:   providers,
		CachedItems: s.orchestrator.CacheLen(),
	})
}
