package model

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an operation needs at least one point.
var ErrEmptyInput = errors.New("empty point set")

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
	Index    int // Offending position, -1 when not tied to a point set
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// ErrInvalidK indicates k is outside [1, n] for a set of n points.
type ErrInvalidK struct {
	K int
	N int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k %d: must be between 1 and %d", e.K, e.N)
}

// ValidateK checks 1 <= k <= n.
func ValidateK(k, n int) error {
	if k < 1 || k > n {
		return &ErrInvalidK{K: k, N: n}
	}
	return nil
}
