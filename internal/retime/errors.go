package retime

import (
	"context"
	"errors"
	"fmt"

	"retime/internal/preflight"
)

var (
	// ErrInputPathUnset reports a run requested without an input file.
	ErrInputPathUnset = errors.New("input path is not set")
	// ErrOutputPathUnset reports a run requested without an output directory.
	ErrOutputPathUnset = errors.New("output directory is not set")
	// ErrWorkersOutOfRange reports a worker count outside 1..MaxWorkers.
	ErrWorkersOutOfRange = errors.New("workers out of range")
)

// ErrorClassifier allows errors to declare their classification.
// Known kinds: "configuration", "validation".
type ErrorClassifier interface {
	ErrorKind() string
}

// ConfigError reports a request that cannot start. It is always returned
// before any file is opened.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrorKind implements ErrorClassifier.
func (e *ConfigError) ErrorKind() string { return "configuration" }

// Kind classifies err for reporting. Errors without a declared kind map to
// "preflight", "canceled", or "internal".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	switch {
	case errors.Is(err, preflight.ErrCheckFailed):
		return "preflight"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
