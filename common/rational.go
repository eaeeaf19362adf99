package common

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOverflow        = errors.New("integer overflow")
)

var (
	Zero Rational
	One  = Rational{n: 1}
)

// Rational is a ratio of two int64 values.
//
// The denominator is stored biased by one, so the zero value is 0/1 and
// no value of the type ever holds a zero denominator. Neither component
// is ever math.MinInt64, which keeps negation and reduction total.
type Rational struct {
	n int64
	d int64
}

// Operand is anything the arithmetic methods accept on the right hand
// side, either a Rational or an Int. Use ToRational to convert one.
type Operand interface {
	asRational() Rational
}

// Int is a bare integer operand, treated as n/1.
type Int int64

func (i Int) asRational() Rational {
	return Rational{n: int64(i)}
}

// NewRational validates and stores numerator/denominator as given, it
// does not reduce them.
func NewRational(numerator, denominator int64) (Rational, error) {
	if denominator == 0 {
		return Zero, fmt.Errorf("rational %d/0: zero denominator: %w", numerator, ErrInvalidArgument)
	}
	if numerator == math.MinInt64 || denominator == math.MinInt64 {
		return Zero, fmt.Errorf("rational %d/%d: %w", numerator, denominator, ErrOverflow)
	}
	return Rational{n: numerator, d: denominator - 1}, nil
}

func (r Rational) asRational() Rational {
	return r
}

func (r Rational) Numerator() int64 {
	return r.n
}

func (r Rational) Denominator() int64 {
	return r.d + 1
}

func (r Rational) Float64() float64 {
	return float64(r.n) / float64(r.Denominator())
}

// Reduce rewrites r in lowest terms with a positive denominator.
func (r *Rational) Reduce() {
	*r = r.Reduced()
}

// Reduced returns r in lowest terms with a positive denominator, zero is
// always 0/1. The receiver is left unchanged.
func (r Rational) Reduced() Rational {
	if r.n == 0 {
		return Zero
	}
	n, d := r.n, r.Denominator()
	g := int64(gcd(abs(n), abs(d)))
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}
	return Rational{n: n, d: d - 1}
}

// Equal reports whether r and o have the same reduced form.
func (r Rational) Equal(o Rational) bool {
	return r.Reduced() == o.Reduced()
}

func (r Rational) Cmp(o Rational) int {
	x, y := r.Reduced(), o.Reduced()
	var a, b big.Int
	a.Mul(big.NewInt(x.n), big.NewInt(y.Denominator()))
	b.Mul(big.NewInt(y.n), big.NewInt(x.Denominator()))
	return a.Cmp(&b)
}

func (r Rational) Sign() int {
	s := 1
	if r.Denominator() < 0 {
		s = -1
	}
	switch {
	case r.n > 0:
		return s
	case r.n < 0:
		return -s
	}
	return 0
}

func (r Rational) IsZero() bool {
	return r.n == 0
}

func (r Rational) Neg() Rational {
	return Rational{n: -r.n, d: r.d}
}

func (r Rational) Abs() Rational {
	v := r.Reduced()
	if v.n < 0 {
		v.n = -v.n
	}
	return v
}

// Inv returns 1/r in lowest terms.
func (r Rational) Inv() (Rational, error) {
	if r.n == 0 {
		return Zero, fmt.Errorf("inverse of %s: division by zero: %w", r, ErrInvalidArgument)
	}
	return Rational{n: r.Denominator(), d: r.n - 1}.Reduced(), nil
}

func (r Rational) Add(o Operand) (Rational, error) {
	return r.combine("+", o, (*big.Int).Add)
}

// Sub returns r - o.
func (r Rational) Sub(o Operand) (Rational, error) {
	return r.combine("-", o, (*big.Int).Sub)
}

func (r Rational) Mul(o Operand) (Rational, error) {
	y, err := ToRational(o)
	if err != nil {
		return Zero, err
	}
	var n, d big.Int
	n.Mul(big.NewInt(r.n), big.NewInt(y.n))
	d.Mul(big.NewInt(r.Denominator()), big.NewInt(y.Denominator()))
	return fromBig("*", r, y, &n, &d)
}

// Div returns r multiplied by the reciprocal of o.
func (r Rational) Div(o Operand) (Rational, error) {
	y, err := ToRational(o)
	if err != nil {
		return Zero, err
	}
	if y.n == 0 {
		return Zero, fmt.Errorf("%s / %s: division by zero: %w", r, y, ErrInvalidArgument)
	}
	var n, d big.Int
	n.Mul(big.NewInt(r.n), big.NewInt(y.Denominator()))
	d.Mul(big.NewInt(r.Denominator()), big.NewInt(y.n))
	return fromBig("/", r, y, &n, &d)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.n, r.Denominator())
}

func (r Rational) combine(op string, o Operand, f func(z, x, y *big.Int) *big.Int) (Rational, error) {
	y, err := ToRational(o)
	if err != nil {
		return Zero, err
	}
	rd, yd := r.Denominator(), y.Denominator()
	if rd == yd {
		n := f(new(big.Int), big.NewInt(r.n), big.NewInt(y.n))
		return fromBig(op, r, y, n, big.NewInt(rd))
	}
	l := lcm(rd, yd)
	a := new(big.Int).Quo(l, big.NewInt(rd))
	a.Mul(a, big.NewInt(r.n))
	b := new(big.Int).Quo(l, big.NewInt(yd))
	b.Mul(b, big.NewInt(y.n))
	return fromBig(op, r, y, f(a, a, b), l)
}

// ToRational validates o the same way NewRational does, an Int holding
// math.MinInt64 fails with ErrOverflow.
func ToRational(o Operand) (Rational, error) {
	if o == nil {
		return Zero, fmt.Errorf("nil operand: %w", ErrInvalidArgument)
	}
	y := o.asRational()
	if y.n == math.MinInt64 {
		return Zero, fmt.Errorf("operand %d: %w", y.n, ErrOverflow)
	}
	return y, nil
}

// fromBig reduces n/d and narrows it back to int64, d must be non-zero.
func fromBig(op string, x, y Rational, n, d *big.Int) (Rational, error) {
	if n.Sign() == 0 {
		return Zero, nil
	}
	g := gcdBig(n, d)
	n.Quo(n, g)
	d.Quo(d, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if !n.IsInt64() || n.Int64() == math.MinInt64 || !d.IsInt64() {
		return Zero, fmt.Errorf("%s %s %s: %w", x, op, y, ErrOverflow)
	}
	return Rational{n: n.Int64(), d: d.Int64() - 1}, nil
}
