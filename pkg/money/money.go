// Package money provides currency-safe arithmetic on integer cents using the
// Fowler Money pattern. Shares of a split always add back up to the total.
package money

import (
	"errors"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BRL is the only currency the engine reads from messages.
const BRL = "BRL"

// Money represents a monetary value with currency.
// It wraps go-money for safe arithmetic and shopspring/decimal for conversions.
type Money struct {
	m *money.Money
}

// New creates a Money value from cents (minor units) and a currency code.
func New(amountCents int64, currencyCode string) *Money {
	return &Money{
		m: money.New(amountCents, currencyCode),
	}
}

// NewFromDecimal creates Money from a decimal.Decimal value, rounding half
// away from zero to the currency's minor unit.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(BRL)
	}

	multiplier := decimal.New(1, int32(currency.Fraction))
	cents := amount.Mul(multiplier).Round(0).IntPart()

	return New(cents, currency.Code)
}

// Zero returns a zero Money value for the given currency
func Zero(currencyCode string) *Money {
	return New(0, currencyCode)
}

// Amount returns the amount in minor units (cents)
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// IsZero returns true if the amount is zero
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// IsPositive returns true if the amount is greater than zero
func (m *Money) IsPositive() bool {
	return m != nil && m.m != nil && m.m.IsPositive()
}

// Add adds two Money values. Returns error if currencies don't match.
func (m *Money) Add(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		return other, nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}

	result, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: result}, nil
}

// Display returns a formatted string for display (e.g., "R$1.234,56")
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return Zero(BRL).Display()
	}
	return m.m.Display()
}

// String returns the amount as a decimal string (e.g., "1234.56")
func (m *Money) String() string {
	if m == nil || m.m == nil {
		return "0.00"
	}
	return m.ToDecimal().StringFixed(int32(m.m.Currency().Fraction))
}

// ToDecimal converts to decimal.Decimal for precise calculations
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	currency := m.m.Currency()
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(currency.Fraction))
	return d.Div(divisor)
}

// Split divides money into n equal parts, distributing the remainder cent by
// cent to the first parts. No money is lost in division.
func (m *Money) Split(n int) ([]*Money, error) {
	if m == nil || m.m == nil {
		return nil, errors.New("cannot split nil money")
	}
	if n <= 0 {
		return nil, errors.New("n must be positive")
	}

	parts, err := m.m.Split(n)
	if err != nil {
		return nil, err
	}

	result := make([]*Money, len(parts))
	for i, p := range parts {
		result[i] = &Money{m: p}
	}
	return result, nil
}

// Percentage calculates a percentage of the amount.
// percent is the percentage value (e.g., 10 for 10%)
func (m *Money) Percentage(percent decimal.Decimal) *Money {
	if m == nil || m.m == nil {
		return Zero(BRL)
	}

	result := m.ToDecimal().Mul(percent).Div(decimal.NewFromInt(100))
	return NewFromDecimal(result, m.Currency())
}

// AddPercentage adds a percentage to the amount (e.g., a 10% service fee).
func (m *Money) AddPercentage(percent decimal.Decimal) *Money {
	if m == nil || m.m == nil {
		return Zero(BRL)
	}

	result, _ := m.Add(m.Percentage(percent))
	return result
}

// Discount subtracts a percentage from the amount (e.g., 20 for 20% off).
func (m *Money) Discount(percent decimal.Decimal) *Money {
	if m == nil || m.m == nil {
		return Zero(BRL)
	}

	return m.AddPercentage(percent.Neg())
}
