package outlier

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when the sequence cannot be used, e.g. it is empty.
	ErrInvalidInput = errors.New("invalid input sequence")

	// ErrInvalidArgument is returned when the fence multiplier is negative or not finite.
	ErrInvalidArgument = errors.New("invalid fence multiplier")

	// ErrTypeMismatch is returned when an element is not a comparable number,
	// e.g. NaN, an infinity, or a non-numeric record field.
	ErrTypeMismatch = errors.New("element is not a comparable number")

	// ErrMissingField is returned when a keyed record lacks the requested field.
	ErrMissingField = errors.New("record field is missing")
)
