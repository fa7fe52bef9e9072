package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"joblabel-engine/internal/lexicon"
)

// Scorer turns normalized text into per-label evidence scores for one
// axis by summing matched keyword weights from the lexicon.
type Scorer struct {
	Lex *lexicon.Lexicon
}

// Score returns every label of the axis mapped to its raw score, zero
// included. Each word-boundary occurrence of a keyword counts, so a
// keyword repeated in the text compounds its label's score.
func (s Scorer) Score(text string, axis lexicon.Axis) map[string]float64 {
	labels := s.Lex.Labels(axis)
	scores := make(map[string]float64, len(labels))
	for _, label := range labels {
		total := 0.0
		for _, kw := range s.Lex.Keywords(axis, label) {
			if n := countOccurrences(text, kw.Pattern); n > 0 {
				total += kw.Weight * float64(n)
			}
		}
		scores[label] = total
	}
	return scores
}

// countOccurrences counts substring hits whose neighbors are not
// alphanumeric, so "go" matches in "go developer" but not "golang".
// Patterns carry their own punctuation ("c++", "ci/cd") untouched.
func countOccurrences(text, pattern string) int {
	n := 0
	for start := 0; ; {
		i := strings.Index(text[start:], pattern)
		if i < 0 {
			return n
		}
		at := start + i
		end := at + len(pattern)
		if boundary(text, at, true) && boundary(text, end, false) {
			n++
		}
		start = at + 1
	}
}

func boundary(text string, pos int, before bool) bool {
	var r rune
	if before {
		if pos == 0 {
			return true
		}
		r, _ = utf8.DecodeLastRuneInString(text[:pos])
	} else {
		if pos >= len(text) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(text[pos:])
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
