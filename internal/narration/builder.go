package narration

import (
	"regexp"
	"strings"
)

// Placeholders spoken when a page has no extractable text. TTS engines treat
// empty input as an error, so narration is never empty.
var placeholders = map[string]string{
	"en": "No text found.",
	"vi": "Không tìm thấy văn bản.",
	"es": "No se encontró texto.",
	"fr": "Aucun texte trouvé.",
	"de": "Kein Text gefunden.",
	"ja": "テキストが見つかりません。",
	"zh": "未找到文本。",
}

var (
	reSpaceBeforeMark = regexp.MustCompile(`\s+([。、，！？；：])`)
	reMarkSpacing     = regexp.MustCompile(`([。、，！？；：])\s*`)
)

// Build turns raw extracted page text into speech-ready plain text for the
// target language. Whitespace runs and blank lines collapse to single
// separators; fullwidth sentence punctuation gets a trailing space so the
// synthesizer pauses between sentences. The transform is idempotent.
func Build(raw, lang string) string {
	text := strings.Join(strings.Fields(raw), " ")

	if usesFullwidthPunctuation(lang) {
		text = reSpaceBeforeMark.ReplaceAllString(text, "$1")
		text = reMarkSpacing.ReplaceAllString(text, "$1 ")
		text = strings.TrimSpace(text)
	}

	if text == "" {
		return Placeholder(lang)
	}
	return text
}

// Placeholder returns the language-appropriate "no text found" phrase,
// falling back to English for unknown languages.
func Placeholder(lang string) string {
	if p, ok := placeholders[strings.ToLower(lang)]; ok {
		return p
	}
	// Primary subtag: "zh-tw" -> "zh"
	if base, _, found := strings.Cut(strings.ToLower(lang), "-"); found {
		if p, ok := placeholders[base]; ok {
			return p
		}
	}
	return placeholders["en"]
}

func usesFullwidthPunctuation(lang string) bool {
	base := strings.ToLower(lang)
	if cut, _, found := strings.Cut(base, "-"); found {
		base = cut
	}
	switch base {
	case "zh", "ja", "ko":
		return true
	}
	return false
}
