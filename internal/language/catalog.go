// Package language holds the static language catalog and code
// normalization helpers shared by providers, the orchestrator, and the
// HTTP API.
package language

import "sort"

// Auto is the sentinel source-language value requesting detection.
const Auto = "auto"

// Language describes one catalog entry. The catalog is read-only and
// assembled once at process start.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
	Dir        string `json:"dir"` // "ltr" or "rtl"
}

var catalog = map[string]Language{
	"ar": {Code: "ar", Name: "Arabic", NativeName: "العربية", Flag: "🇸🇦", Dir: "rtl"},
	"de": {Code: "de", Name: "German", NativeName: "Deutsch", Flag: "🇩🇪", Dir: "ltr"},
	"en": {Code: "en", Name: "English", NativeName: "English", Flag: "🇬🇧", Dir: "ltr"},
	"es": {Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇪🇸", Dir: "ltr"},
	"fr": {Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷", Dir: "ltr"},
	"he": {Code: "he", Name: "Hebrew", NativeName: "עברית", Flag: "🇮🇱", Dir: "rtl"},
	"hi": {Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Flag: "🇮🇳", Dir: "ltr"},
	"it": {Code: "it", Name: "Italian", NativeName: "Italiano", Flag: "🇮🇹", Dir: "ltr"},
	"ja": {Code: "ja", Name: "Japanese", NativeName: "日本語", Flag: "🇯🇵", Dir: "ltr"},
	"ko": {Code: "ko", Name: "Korean", NativeName: "한국어", Flag: "🇰🇷", Dir: "ltr"},
	"nl": {Code: "nl", Name: "Dutch", NativeName: "Nederlands", Flag: "🇳🇱", Dir: "ltr"},
	"pl": {Code: "pl", Name: "Polish", NativeName: "Polski", Flag: "🇵🇱", Dir: "ltr"},
	"pt": {Code: "pt", Name: "Portuguese", NativeName: "Português", Flag: "🇵🇹", Dir: "ltr"},
	"ru": {Code: "ru", Name: "Russian", NativeName: "Русский", Flag: "🇷🇺", Dir: "ltr"},
	"tr": {Code: "tr", Name: "Turkish", NativeName: "Türkçe", Flag: "🇹🇷", Dir: "ltr"},
	"vi": {Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt", Flag: "🇻🇳", Dir: "ltr"},
	"zh": {Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳", Dir: "ltr"},
}

// ByCode resolves a catalog entry. The code is normalized first, so
// "EN-us" resolves to the "en" entry.
func ByCode(code string) (Language, bool) {
	lang, ok := catalog[NormalizeCode(code)]
	return lang, ok
}

// All returns the catalog sorted by code.
func All() []Language {
	languages := make([]Language, 0, len(catalog))
	for _, lang := range catalog {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Code < languages[j].Code
	})
	return languages
}

// Codes returns the sorted catalog codes.
func Codes() []string {
	codes := make([]string, 0, len(catalog))
	for code := range catalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
