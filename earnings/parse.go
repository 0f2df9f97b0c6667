package earnings

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern is the input filter used by the form: digits with at most
// one decimal point. The empty string passes the filter but is not a number.
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// AcceptsAmountText reports whether raw may be typed into the amount field.
func AcceptsAmountText(raw string) bool {
	return amountPattern.MatchString(raw)
}

// ParseAmount parses raw entered text into a decimal.
//
// Surrounding whitespace is ignored. The remainder must be digits with at
// most one decimal point and at least one digit ("5", "5.", ".5", "5.25").
// Signs, exponents and grouping separators are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, &AmountError{Raw: raw, Reason: "empty"}
	}
	if !amountPattern.MatchString(s) || s == "." {
		return decimal.Zero, &AmountError{Raw: raw, Reason: "not a decimal number"}
	}

	// decimal.NewFromString rejects a trailing point.
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &AmountError{Raw: raw, Reason: err.Error()}
	}
	return d, nil
}
