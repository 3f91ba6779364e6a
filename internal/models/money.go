package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is the shared amount type. Values round to 2 decimal places at the
// JSON boundary only; internal pricing math works on the raw decimal so
// repeated recomputation never compounds rounding error.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates an amount from a decimal.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount}
}

// NewMoneyFromFloat creates an amount from a float.
func NewMoneyFromFloat(amount float64) Money {
	return Money{Decimal: decimal.NewFromFloat(amount)}
}

// MarshalJSON emits a 2-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON accepts a string or a bare number.
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f)
	return nil
}

// String returns the 2-decimal display form.
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}
