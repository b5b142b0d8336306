// Package numeric recognizes clinical numeric token formats beyond the
// tagger's own like-num judgement: decimals with either separator,
// scientific notation, percent-family suffixes, and simple fractions
// such as blood-pressure readings.
package numeric

import (
	"regexp"

	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
)

// pattern anchors the whole token: an integer or decimal (separator
// "." or ","), optional e/E exponent, optional percent-family suffix
// (%, ‰, ‱, /%), or a simple integer fraction like 120/80.
var pattern = regexp.MustCompile(`^((\d+([.,]\d+)?([eE][+-]?\d+)?)(/%|%|‰|‱)?|(\d+/\d+))$`)

// IsNumeric reports whether t should be treated as a quantity: either
// the tagger flagged it as numeric, or its surface text matches the
// clinical numeric grammar. Pure and total; never panics.
func IsNumeric(t token.Token) bool {
	if t.LikeNum {
		return true
	}
	return Matches(t.Text)
}

// Matches reports whether s alone matches the clinical numeric grammar,
// ignoring any tagger flags.
func Matches(s string) bool {
	return pattern.MatchString(s)
}
