package menu

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money holds an amount in currency minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulQuantity(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// String renders the amount in major units with two decimal places, e.g. "80.00".
func (m Money) String() string {
	return decimal.NewFromInt(m.cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
