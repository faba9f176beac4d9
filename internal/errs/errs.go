// internal/errs/errs.go
//
// Error kinds shared by the solver packages.
// Call sites wrap these with context (fmt.Errorf("%w: ...", errs.ErrX));
// callers classify with errors.Is.

package errs

import "errors"

var (
	// ErrInvalidInput covers malformed words and out-of-range pattern digits/codes.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange covers row, column and candidate indices outside bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSizeMismatch covers matrix buffer length != rows*cols and
	// weights that are not aligned with their candidates.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrEmptyInput covers empty word lists.
	ErrEmptyInput = errors.New("empty input")

	// ErrContradiction means no candidate answer satisfies the constraints.
	// It is an outcome, not a fault.
	ErrContradiction = errors.New("no possibilities left")

	// ErrUnsupported means the policy needs a precomputed pattern matrix.
	ErrUnsupported = errors.New("unsupported without pattern matrix")
)
