package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on a typed amount. decimal accepts any exponent, and "1e50000000"
// would otherwise expand into a fifty-million-digit integer under the
// ledger lock.
const (
	MaxAmountIntegerDigits = 15
	MaxAmountScale         = 8
)

// ParseAmount reads a user-typed amount. Anything that is not a decimal
// number, or that falls outside MaxAmountIntegerDigits/MaxAmountScale, is
// ErrInvalidInput; the sign is checked later by the ledger.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidInput.WithCause(fmt.Errorf("amount %q is not a number", s))
	}
	// Both checks read only the coefficient length and the exponent, so they
	// stay cheap however large the exponent is.
	exp := int64(d.Exponent())
	if exp < -MaxAmountScale || int64(d.NumDigits())+exp > MaxAmountIntegerDigits {
		return decimal.Zero, ErrInvalidInput.WithCause(fmt.Errorf("amount %q is out of range", s))
	}
	return d, nil
}

// FormatAmount renders d with exactly two decimal places, rounding half away
// from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
