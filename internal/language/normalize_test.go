package language

import "testing"

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	if got := NormalizeTag(" EN_us "); got != "en-us" {
		t.Fatalf("unexpected normalized tag: %q", got)
	}
	if got := NormalizeTag("zh-Hans"); got != "zh-hans" {
		t.Fatalf("unexpected normalized tag: %q", got)
	}
	if got := NormalizeTag("en--US"); got != "en-us" {
		t.Fatalf("unexpected collapsed tag: %q", got)
	}
	if got := NormalizeTag("en_123"); got != "" {
		t.Fatalf("expected invalid tag to normalize to empty string, got %q", got)
	}
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	if got := NormalizeCode(" EN-us "); got != "en" {
		t.Fatalf("unexpected normalized code: %q", got)
	}
	if got := NormalizeCode("zh"); got != "zh" {
		t.Fatalf("unexpected normalized code: %q", got)
	}
	if got := NormalizeCode(" "); got != "" {
		t.Fatalf("expected empty code for blank input, got %q", got)
	}
}

func TestByCode(t *testing.T) {
	t.Parallel()

	lang, ok := ByCode("EN-us")
	if !ok {
		t.Fatalf("expected catalog hit for EN-us")
	}
	if lang.Code != "en" || lang.Name != "English" || lang.Dir != "ltr" {
		t.Fatalf("unexpected catalog entry: %+v", lang)
	}

	lang, ok = ByCode("ar")
	if !ok || lang.Dir != "rtl" {
		t.Fatalf("expected Arabic to be right-to-left, got %+v (%t)", lang, ok)
	}

	if _, ok := ByCode("xx"); ok {
		t.Fatalf("did not expect catalog hit for unknown code")
	}
}

func TestAllIsSortedAndComplete(t *testing.T) {
	t.Parallel()

	languages := All()
	if len(languages) != len(Codes()) {
		t.Fatalf("unexpected catalog size: got %d want %d", len(languages), len(Codes()))
	}
	for i := 1; i < len(languages); i++ {
		if languages[i-1].Code >= languages[i].Code {
			t.Fatalf("catalog not sorted at index %d: %q >= %q", i, languages[i-1].Code, languages[i].Code)
		}
	}
	for _, lang := range languages {
		if lang.Dir != "ltr" && lang.Dir != "rtl" {
			t.Fatalf("unexpected direction for %s: %q", lang.Code, lang.Dir)
		}
	}
}
