// Package billing holds the monetary value object and the pure checkout
// calculator for parking sessions.
package billing

import "fmt"

// DefaultCurrency is used when no currency is supplied.
const DefaultCurrency = "COP"

// Money is an integer amount of cents in a single currency. Monetary values
// are never stored as floats.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return NewMoney(0, currency)
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.Currency() == other.Currency()
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.amountInCents+other.amountInCents, m.Currency())
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", float64(m.amountInCents)/100.0, m.Currency())
}
