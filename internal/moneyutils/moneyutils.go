// Package moneyutils parses the money tokens found in Indian bank statements
// into decimal values. Statements mix western and lakh comma grouping
// ("1,234.56" and "1,13,832.38"), currency markers ("₹", "INR"), explicit
// polarity prefixes ("+", "-") and dash placeholders for empty columns.
package moneyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numberLikePattern = regexp.MustCompile(`^-?[\d,.]+$`)

// Epsilon is the currency-unit tolerance used when comparing balances.
var Epsilon = decimal.NewFromFloat(0.001)

// Clean strips commas, currency markers and surrounding whitespace from a
// money token. The polarity sign is preserved.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "INR", "")
	s = strings.TrimPrefix(s, "+")
	return strings.TrimSpace(s)
}

// ParseAmount converts an amount token to a decimal. Empty strings and the
// dash placeholder mean "no transfer in this column" and coerce to zero, as
// do tokens that fail numeric parsing. The result is the absolute value and
// whether the raw token carried a leading minus sign.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := Clean(s)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, false
	}
	negative := strings.HasPrefix(cleaned, "-")
	d, err := decimal.NewFromString(strings.TrimPrefix(cleaned, "-"))
	if err != nil {
		return decimal.Zero, false
	}
	return d, negative
}

// ParseBalance converts a balance token to a decimal. Unlike amounts, a bare
// dash is not a valid balance, so the second return reports success.
func ParseBalance(s string) (decimal.Decimal, bool) {
	cleaned := Clean(s)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsNumberLike reports whether a token looks like a money value once commas
// are ignored. Used by the token-positional extractors to locate the money
// columns at the end of a block.
func IsNumberLike(s string) bool {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return false
	}
	return numberLikePattern.MatchString(s)
}
