package numeric

import "errors"

var (
	// ErrEmptyInput signals an operation that requires at least one
	// element received none.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidArgument signals a numeric argument that violates a
	// documented precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)
