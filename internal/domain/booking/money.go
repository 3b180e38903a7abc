package booking

import "math"

// Money is an amount in cents. Prices travel over the wire as dollar floats;
// converting at the boundary keeps the arithmetic exact.
type Money int64

func NewMoney(cents int64) Money {
	return Money(cents)
}

func MoneyFromDollars(dollars float64) Money {
	return Money(math.Round(dollars * 100))
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Dollars() float64 {
	return float64(m) / 100
}

func (m Money) Mul(n int) Money {
	return Money(int64(m) * int64(n))
}

func (m Money) Add(other Money) Money {
	return m + other
}
