package bezier

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index, range, or knot time
	// addresses a handle or segment that doesn't exist.
	ErrIndexOutOfRange = errors.New("bezier: index out of range")
	// ErrEmptyCollection is returned when removing handles from a curve that
	// has none.
	ErrEmptyCollection = errors.New("bezier: curve has no handles")
	// ErrInvalidTime is returned by [Curve.KnotInsert] for negative, infinite
	// or NaN times.
	ErrInvalidTime = errors.New("bezier: invalid knot time")
)
