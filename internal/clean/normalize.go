package clean

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Punctuation kept so tokens like "c++", "node.js" and "ci/cd" survive.
const allowedPunct = ".,-/+#"

// Normalize turns raw posting text into clean lowercase plain text:
// markup stripped, entities decoded, disallowed characters removed,
// whitespace collapsed. Pure and idempotent; never fails, malformed
// input just yields best-effort output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := stripMarkup(raw)
	text = strings.ToLower(text)
	text = stripDisallowed(text)
	return strings.Join(strings.Fields(text), " ")
}

// TokenCount reports the number of whitespace-delimited tokens.
func TokenCount(s string) int {
	return len(strings.Fields(s))
}

func stripMarkup(raw string) string {
	// Plain text never round-trips through the HTML parser; the allow-set
	// excludes '<' and '&', which is what keeps Normalize idempotent.
	// Entity-encoded markup decodes into real tags on the first pass, so
	// the strip runs once more to drop what the decode uncovered.
	for i := 0; i < 2 && strings.ContainsAny(raw, "<&"); i++ {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err != nil {
			return raw
		}
		raw = doc.Text()
	}
	return raw
}

func stripDisallowed(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case strings.ContainsRune(allowedPunct, r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
