// Package safemath provides overflow-checked integer arithmetic.
package safemath

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrOverflow is returned when the exact result does not fit the target type
var ErrOverflow = errors.New("integer overflow")

// Add64 returns a + b or ErrOverflow
func Add64(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return c, nil
}

// Mul64 returns a * b or ErrOverflow
func Mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return c, nil
}

// Add32 returns a + b or ErrOverflow
func Add32(a, b int32) (int32, error) {
	c := int64(a) + int64(b)
	if c < math.MinInt32 || c > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return int32(c), nil
}

// Mul32 returns a * b or ErrOverflow
func Mul32(a, b int32) (int32, error) {
	c := int64(a) * int64(b)
	if c < math.MinInt32 || c > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return int32(c), nil
}

// ToInt32 narrows v or returns ErrOverflow
func ToInt32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in 32 bits", ErrOverflow, v)
	}
	return int32(v), nil
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod is the remainder matching FloorDiv; it has the sign of b.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// MulDivMod computes q = floor(a*b / c) and r = a*b - q*c without an
// intermediate overflow. c must be positive. The remainder is in [0, c).
func MulDivMod(a, b, c int64) (q, r int64, err error) {
	if c <= 0 {
		return 0, 0, fmt.Errorf("safemath: non-positive divisor %d", c)
	}
	if p, mulErr := Mul64(a, b); mulErr == nil {
		return FloorDiv(p, c), FloorMod(p, c), nil
	}

	prod := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	quo, rem := new(big.Int).DivMod(prod, big.NewInt(c), new(big.Int))
	if !quo.IsInt64() {
		return 0, 0, fmt.Errorf("%w: %d * %d / %d", ErrOverflow, a, b, c)
	}
	return quo.Int64(), rem.Int64(), nil
}

// AddMulDiv computes trunc((a*b + r) / c) toward zero, where c is positive.
func AddMulDiv(a, b, r, c int64) (int64, error) {
	if c <= 0 {
		return 0, fmt.Errorf("safemath: non-positive divisor %d", c)
	}
	total := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	total.Add(total, big.NewInt(r))
	total.Quo(total, big.NewInt(c))
	if !total.IsInt64() {
		return 0, fmt.Errorf("%w: (%d * %d + %d) / %d", ErrOverflow, a, b, r, c)
	}
	return total.Int64(), nil
}
