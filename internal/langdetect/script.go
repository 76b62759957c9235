package langdetect

// scriptRange maps one contiguous Unicode code-point range to a
// language code. Ranges are checked in declaration order and the first
// range with any matching rune in the text wins, so Han outranks kana
// for mixed CJK samples.
type scriptRange struct {
	lo, hi rune
	code   string
}

var scriptRanges = []scriptRange{
	{0x4E00, 0x9FFF, "zh"}, // CJK Unified Ideographs
	{0x3040, 0x30FF, "ja"}, // Hiragana + Katakana
	{0xAC00, 0xD7AF, "ko"}, // Hangul Syllables
	{0x0600, 0x06FF, "ar"}, // Arabic
	{0x0400, 0x04FF, "ru"}, // Cyrillic
}

// ByScript classifies text by inspecting Unicode code-point ranges.
// It is pure and allocation-free; unknown scripts default to "en".
func ByScript(text string) string {
	for _, sr := range scriptRanges {
		for _, r := range text {
			if r >= sr.lo && r <= sr.hi {
				return sr.code
			}
		}
	}
	return "en"
}
