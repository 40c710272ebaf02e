package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for the zero value of an empty sum.
const DefaultCurrency = "BRL"

// Money is a currency-tagged decimal amount. Arithmetic across different
// currencies never coerces; it fails with ErrCurrencyMismatch.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney builds a Money with a normalized currency code. No bounds are
// enforced here; callers validate non-negativity where their rules require it.
func NewMoney(amount decimal.Decimal, currency string) Money {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	return Money{Amount: amount, Currency: code}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return NewMoney(decimal.Zero, currency)
}

// Add returns m + other, failing when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Mul returns m scaled by an integer factor, keeping the currency.
func (m Money) Mul(factor int64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(factor)), Currency: m.Currency}
}

// MulDecimal returns m scaled by a decimal factor, keeping the currency.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// Equal is value equality on (amount, currency). "10.0 BRL" equals "10 BRL".
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}

// SumMoney adds up a currency-homogeneous list. An empty list yields a zero
// value in the default currency; a mixed-currency list fails.
func SumMoney(values []Money) (Money, error) {
	if len(values) == 0 {
		return ZeroMoney(DefaultCurrency), nil
	}
	total := values[0]
	for _, v := range values[1:] {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
