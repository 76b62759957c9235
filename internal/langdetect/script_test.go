package langdetect

import "testing"

func TestByScript(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"你好世界", "zh"},
		{"こんにちは", "ja"},
		{"カタカナ", "ja"},
		{"안녕하세요", "ko"},
		{"مرحبا", "ar"},
		{"привет", "ru"},
		{"hello", "en"},
		{"", "en"},
		{"123 !?", "en"},
	}
	for _, tc := range cases {
		if got := ByScript(tc.text); got != tc.want {
			t.Fatalf("unexpected script classification for %q: got %q want %q", tc.text, got, tc.want)
		}
	}
}

func TestByScriptPrefersHanOverKana(t *testing.T) {
	t.Parallel()

	// Mixed kanji + kana resolves to the first matching range.
	if got := ByScript("日本語のテキスト"); got != "zh" {
		t.Fatalf("unexpected classification for mixed CJK: got %q want zh", got)
	}
}
