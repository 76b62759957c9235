package translation

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nimblechat/polyglot/internal/langdetect"
	"github.com/nimblechat/polyglot/internal/language"
)

// Confidence constants for the offline dictionary. A phrase-table hit
// is a curated translation; a placeholder is barely better than
// nothing but keeps the chain terminating in a success.
const (
	offlineHitConfidence         = 0.9
	offlinePlaceholderConfidence = 0.1
)

//go:embed phrases.json
var embeddedPhrasesJSON []byte

//go:embed phrases.schema.json
var phrasesSchemaJSON string

var (
	phrasesSchemaOnce sync.Once
	phrasesSchema     *jsonschema.Schema
	phrasesSchemaErr  error
)

// phraseTable maps target language -> case-folded source text ->
// translated text.
type phraseTable map[string]map[string]string

// OfflineProvider is the deterministic last-resort backend. It never
// returns an error from Translate: a phrase-table miss yields a
// bracketed placeholder instead, which guarantees the provider chain
// always terminates in a success.
type OfflineProvider struct {
	phrases phraseTable
}

// NewOfflineProvider builds the provider from the embedded phrase
// table. The embedded table is trusted and decoded directly.
func NewOfflineProvider() *OfflineProvider {
	var table phraseTable
	if err := json.Unmarshal(embeddedPhrasesJSON, &table); err != nil {
		// The embedded table ships with the binary; failing to decode
		// it is a build defect, not a runtime condition.
		panic(fmt.Sprintf("decode embedded phrase table: %v", err))
	}
	return &OfflineProvider{phrases: foldPhraseTable(table)}
}

// LoadPhrases merges a user-supplied phrase table file into the
// provider after validating it against the phrase-table schema.
// Entries in the file override embedded ones.
func (p *OfflineProvider) LoadPhrases(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read phrase table: %w", err)
	}

	schema, err := loadPhrasesSchema()
	if err != nil {
		return fmt.Errorf("load phrase table schema: %w", err)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("decode phrase table JSON: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("phrase table schema validation failed: %w", err)
	}

	var table phraseTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return fmt.Errorf("unmarshal phrase table: %w", err)
	}

	for target, entries := range foldPhraseTable(table) {
		if p.phrases[target] == nil {
			p.phrases[target] = make(map[string]string, len(entries))
		}
		for source, translated := range entries {
			p.phrases[target][source] = translated
		}
	}
	return nil
}

func (p *OfflineProvider) Name() string {
	return "offline"
}

func (p *OfflineProvider) Translate(_ context.Context, req Request) (*Result, error) {
	to := language.NormalizeCode(req.To)
	if to == "" {
		to = "en"
	}

	folded := strings.ToLower(strings.TrimSpace(req.Text))
	if translated, ok := p.phrases[to][folded]; ok {
		return &Result{
			OriginalText:   req.Text,
			TranslatedText: translated,
			From:           req.From,
			To:             to,
			Confidence:     offlineHitConfidence,
			Provider:       p.Name(),
		}, nil
	}

	return &Result{
		OriginalText:   req.Text,
		TranslatedText: fmt.Sprintf("[%s: %s]", to, req.Text),
		From:           req.From,
		To:             to,
		Confidence:     offlinePlaceholderConfidence,
		Provider:       p.Name(),
	}, nil
}

func (p *OfflineProvider) Detect(_ context.Context, text string) (string, error) {
	code := langdetect.DetectISO6391(text)
	if code == "" {
		code = langdetect.ByScript(text)
	}
	return code, nil
}

func (p *OfflineProvider) Healthy(_ context.Context) bool {
	return true
}

func foldPhraseTable(table phraseTable) phraseTable {
	folded := make(phraseTable, len(table))
	for target, entries := range table {
		code := language.NormalizeCode(target)
		if code == "" {
			continue
		}
		folded[code] = make(map[string]string, len(entries))
		for source, translated := range entries {
			folded[code][strings.ToLower(strings.TrimSpace(source))] = translated
		}
	}
	return folded
}

func loadPhrasesSchema() (*jsonschema.Schema, error) {
	phrasesSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("phrases.schema.json", strings.NewReader(phrasesSchemaJSON)); err != nil {
			phrasesSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("phrases.schema.json")
		if err != nil {
			phrasesSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		phrasesSchema = schema
	})

	if phrasesSchemaErr != nil {
		return nil, phrasesSchemaErr
	}
	return phrasesSchema, nil
}
