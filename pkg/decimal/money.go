package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the way US currency is written.
var printer = message.NewPrinter(language.AmericanEnglish)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundDollars rounds to whole dollars for headline figures.
func (m Money) RoundDollars() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Abs drops the sign.
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Float64 returns the nearest float64 value.
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US currency with thousands separators, e.g. -$1,798.65.
func (m Money) Format() string {
	r := m.Round()
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	return sign + printer.Sprintf("$%.2f", r.Abs().Float64())
}

// FormatWhole renders the amount rounded to dollars, e.g. $647,515.
func (m Money) FormatWhole() string {
	r := m.RoundDollars()
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	return sign + printer.Sprintf("$%d", r.Abs().IntPart())
}
