package common

import (
	"fmt"
	"math"
	"math/big"
)

// GCD returns the greatest common divisor of |a| and |b| using the
// Euclidean algorithm. GCD(0, 0) is 0. The only result that does not fit
// int64 is 2^63, from GCD(math.MinInt64, 0) and friends, which fails with
// ErrOverflow.
func GCD(a, b int64) (int64, error) {
	g := gcd(abs(a), abs(b))
	if g > math.MaxInt64 {
		return 0, fmt.Errorf("gcd %d %d: %w", a, b, ErrOverflow)
	}
	return int64(g), nil
}

// LCM returns the least common multiple of |a| and |b|, derived as
// |a*b| / gcd(a, b). LCM(0, x) is 0.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	l := lcm(a, b)
	if !l.IsInt64() {
		return 0, fmt.Errorf("lcm %d %d: %w", a, b, ErrOverflow)
	}
	return l.Int64(), nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm expects non-zero operands and returns a positive value, widened
// to big.Int because |a|/g*|b| may leave int64.
func lcm(a, b int64) *big.Int {
	x, y := abs(a), abs(b)
	l := new(big.Int).SetUint64(x / gcd(x, y))
	return l.Mul(l, new(big.Int).SetUint64(y))
}

func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// gcdBig is the Euclidean algorithm over big.Int, used to reduce the
// widened intermediates of the arithmetic operations.
func gcdBig(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	return x
}
