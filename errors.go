package clusterviz

import (
	"errors"
	"fmt"

	"github.com/hupe1980/clusterviz/model"
)

var (
	// ErrEmptyInput is returned when a nearest-neighbor query runs against
	// an empty point set.
	ErrEmptyInput = errors.New("point set is empty")

	// ErrNoClusters is returned when a Result without clusters is queried.
	ErrNoClusters = errors.New("result holds no clusters")
)

// ErrDimensionMismatch indicates a point or query whose dimension disagrees
// with the set's established dimension.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	// Index of the offending point, or -1 for queries.
	Index int
	cause error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidK indicates k < 1 or k greater than the number of points.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidK struct {
	K int
	N int
	cause error
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (must be 1-%d)", e.K, e.N)
}

func (e *ErrInvalidK) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrEmptyInput) {
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	}

	var dm *model.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, Index: dm.Index, cause: err}
	}
	var ik *model.ErrInvalidK
	if errors.As(err, &ik) {
		return &ErrInvalidK{K: ik.K, N: ik.N, cause: err}
	}

	return err
}
