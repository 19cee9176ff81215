package speech

import (
	"regexp"
	"strings"
)

var (
	emphasisPattern = regexp.MustCompile(`\*+(.*?)\*+`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	markupReplacer  = strings.NewReplacer("#", "", "`", "")
)

// SanitizeForSpeech strips markdown so a synthesizer does not read it out:
// emphasis markers go, links keep only their label, '#' and backticks are
// dropped and runs of whitespace collapse to one space.
func SanitizeForSpeech(text string) string {
	text = emphasisPattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = markupReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
