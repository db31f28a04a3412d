package press

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Normalize turns a raw feed summary into plain text: entities decoded,
// tags removed, whitespace collapsed to single spaces with trimmed ends.
// Total over all inputs; empty in, empty out.
//
// Entities are decoded to a fixpoint so double-escaped input cannot smuggle
// markup past the tag strip, and any angle bracket left after stripping
// (an unclosed tag, a decoded bare "&lt;") is dropped too.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	for {
		decoded := html.UnescapeString(text)
		if decoded == text {
			break
		}
		text = decoded
	}
	text = tagPattern.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return ' '
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}
