package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a currency amount in cents. All tariff arithmetic is done on
// integer cents so rounding happens exactly once, when an amount enters
// the system, and never compounds.
type Money int64

// MoneyFromFloat converts a currency amount expressed in whole units
// (e.g. 2.5 dollars) to Money, rounding to cent precision half away
// from zero.
func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100))
}

// ParseMoney parses a decimal currency string such as "1.80" into cents.
// A comma is accepted as the decimal separator. Fractions beyond two
// digits round half up.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("domain.ParseMoney: empty amount")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("domain.ParseMoney: %q: %w", s, err)
	}
	return MoneyFromFloat(f), nil
}

// Float returns the amount in whole currency units.
// Use only for display; arithmetic stays on Money.
func (m Money) Float() float64 { return float64(m) / 100 }

// String renders the amount with exactly two decimals, e.g. "2.50".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes Money as a plain JSON number with two decimals,
// matching what API clients expect for price fields.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*m = MoneyFromFloat(v)
		return nil
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	default:
		return fmt.Errorf("domain.Money: cannot decode %T", raw)
	}
}
