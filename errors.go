package signals

import "errors"

var (
	// ErrKeyNotFound is returned by an exact lookup on a time that has no
	// recorded Sample
	ErrKeyNotFound = errors.New("time not found in signal")

	// ErrInvalidArgument is returned when a step is supplied to a range
	// lookup. Only contiguous half-open ranges are supported
	ErrInvalidArgument = errors.New("range step not supported")

	// ErrNoSample is returned by interpolation when nothing was recorded at
	// or before the query time
	ErrNoSample = errors.New("no sample at or before time")

	// ErrInvalidRange is returned when a range's start exceeds its end
	ErrInvalidRange = errors.New("range start exceeds end")
)
