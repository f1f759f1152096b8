package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a currency amount in minor units (kuruş).
type Price int64

// MaxPrice is the largest amount a NUMERIC(10,2) column holds.
const MaxPrice Price = 9999999999

var maxPrice = decimal.New(int64(MaxPrice), -2)

// ParsePrice accepts a non-negative decimal with at most two fraction
// digits, e.g. "85", "12.5" or "85.00", up to MaxPrice.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if !digits(whole) || (hasFrac && !digits(frac)) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid price %q: want at most two fraction digits", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.GreaterThan(maxPrice) {
		return 0, fmt.Errorf("price %q exceeds %s", s, MaxPrice)
	}
	return Price(d.Shift(2).IntPart()), nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p Price) String() string {
	return decimal.New(int64(p), -2).StringFixed(2)
}
