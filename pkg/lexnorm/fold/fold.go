// Package fold removes diacritical marks from Unicode text so that
// accented and unaccented spellings compare equal.
package fold

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops all combining marks (category Mn),
// and recomposes to NFC.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Accents returns s with all combining marks removed ("café" -> "cafe").
// Case is untouched; callers lowercase separately. The function is
// idempotent: Accents(Accents(s)) == Accents(s).
func Accents(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; on malformed
		// input, fall back to the original string.
		return s
	}
	return out
}
