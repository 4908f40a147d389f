package checked

import (
	"errors"
	"math"
)

var (
	ErrOverflow  = errors.New("arithmetic overflow")
	ErrUnderflow = errors.New("arithmetic underflow")
)

// AddU64 returns a+b, or ErrOverflow if the sum exceeds uint64 range.
func AddU64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// SubU64 returns a-b, or ErrUnderflow if the result would go negative.
func SubU64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrUnderflow
	}
	return a - b, nil
}

// MulU64 returns a*b, or ErrOverflow if the product exceeds uint64 range.
func MulU64(a, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}
