package common

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		a, b, g int64
	}{
		{1071, 462, 21},
		{-1071, 462, 21},
		{462, -1071, 21},
		{13, 7, 1},
		{0, 5, 5},
		{-5, 0, 5},
		{0, 0, 0},
		{math.MaxInt64, -math.MaxInt64, math.MaxInt64},
		{math.MaxInt64, math.MaxInt64 - 1, 1},
		{math.MinInt64, 2, 2},
		{math.MinInt64, -math.MaxInt64, 1},
	}
	for _, c := range cases {
		g, err := GCD(c.a, c.b)
		assert.Nil(err)
		assert.Equal(c.g, g, "gcd %d %d", c.a, c.b)
	}
	_, err := GCD(math.MinInt64, 0)
	assert.True(errors.Is(err, ErrOverflow))
	_, err = GCD(math.MinInt64, math.MinInt64)
	assert.True(errors.Is(err, ErrOverflow))

	assert.Equal(uint64(1<<63), abs(math.MinInt64))
	assert.Equal(uint64(math.MaxInt64), abs(-math.MaxInt64))

	l, err := LCM(4, 6)
	assert.Nil(err)
	assert.Equal(int64(12), l)
	l, err = LCM(-4, 6)
	assert.Nil(err)
	assert.Equal(int64(12), l)
	l, err = LCM(7, 13)
	assert.Nil(err)
	assert.Equal(int64(91), l)
	l, err = LCM(0, 13)
	assert.Nil(err)
	assert.Equal(int64(0), l)
	_, err = LCM(math.MaxInt64, math.MaxInt64-1)
	assert.True(errors.Is(err, ErrOverflow))

	g := gcdBig(big.NewInt(-1071), big.NewInt(462))
	assert.Equal(int64(21), g.Int64())
	g = gcdBig(big.NewInt(0), big.NewInt(-8))
	assert.Equal(int64(8), g.Int64())
}
