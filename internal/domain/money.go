package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a monetary amount in centavos. Sums over Money are exact.
type Money int64

// maxIntegerDigits keeps parsed amounts well inside int64 cents.
const maxIntegerDigits = 15

// ParseMoney parses a decimal amount such as "1000", "600.5" or "12,90".
// Either '.' or ',' may separate at most two fractional digits. A leading
// sign is accepted so that callers can reject non-positive values with a
// precise error. Malformed input wraps ErrInvalidAmount.
func ParseMoney(s string) (Money, error) {
	in := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(in, "-"):
		neg = true
		in = in[1:]
	case strings.HasPrefix(in, "+"):
		in = in[1:]
	}

	whole, frac := in, ""
	if i := strings.IndexAny(in, ".,"); i >= 0 {
		whole, frac = in[:i], in[i+1:]
	}
	if whole == "" || len(whole) > maxIntegerDigits || len(frac) > 2 || !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrInvalidAmount)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrInvalidAmount)
	}
	var cents int64
	switch len(frac) {
	case 1:
		cents = int64(frac[0]-'0') * 10
	case 2:
		cents = int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	}

	m := Money(units*100 + cents)
	if neg {
		m = -m
	}
	return m, nil
}

// MustParseMoney is ParseMoney for literals known to be valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool { return m > 0 }

// String renders m with exactly two decimal places, e.g. "1100.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Sum adds amounts without rounding.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
