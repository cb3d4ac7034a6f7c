package timecode

import "errors"

var (
	// ErrMalformedTimestamp reports text that is not in HH:MM:SS,mmm form.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrNegativeDelay reports a delay below zero seconds.
	ErrNegativeDelay = errors.New("delay must not be negative")
	// ErrDelayOutOfRange reports a delay whose hour field needs more than two digits.
	ErrDelayOutOfRange = errors.New("delay out of range")
	// ErrHourOutOfRange reports a shifted timestamp whose hour magnitude needs more than two digits.
	ErrHourOutOfRange = errors.New("shifted hour out of range")
	// ErrUnknownDirection reports a direction name other than forward or backward.
	ErrUnknownDirection = errors.New("unknown direction")
)
