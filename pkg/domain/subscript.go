package domain

import (
	"strings"
	"unicode"
)

var subscriptDigits = [...]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// Subscript rewrites atom counts as Unicode subscripts for display.
// A digit is an atom count when it follows a letter, ')' or ']', or another
// atom-count digit, so coefficients and temperatures are left alone:
//
//	"2C2H5Br + 2Na" -> "2C₂H₅Br + 2Na"
//	"180 - 200°C"   -> "180 - 200°C"
func Subscript(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	inCount := false
	var prev rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if inCount || unicode.IsLetter(prev) || prev == ')' || prev == ']' {
				sb.WriteRune(subscriptDigits[r-'0'])
				inCount = true
				prev = r
				continue
			}
		} else {
			inCount = false
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}
