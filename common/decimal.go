package common

import (
	"github.com/shopspring/decimal"
)

const Precision = 8

// Decimal rounds r to the given number of decimal places, half away
// from zero.
func (r Rational) Decimal(places int32) decimal.Decimal {
	n := decimal.New(r.n, 0)
	d := decimal.New(r.Denominator(), 0)
	return n.DivRound(d, places)
}

func (r Rational) StringFixed(places int32) string {
	return r.Decimal(places).StringFixed(places)
}
