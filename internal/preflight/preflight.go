package preflight

import (
	"errors"
	"fmt"
)

// ErrCheckFailed is wrapped by Result.Err for failed checks.
var ErrCheckFailed = errors.New("preflight check failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Err returns nil for a passed check, otherwise an error wrapping ErrCheckFailed.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrCheckFailed, r.Name, r.Detail)
}

// RunAll executes the input and output checks for a run.
func RunAll(inputPath, outputDir string) []Result {
	return []Result{
		CheckInputFile("Input file", inputPath),
		CheckDirectoryAccess("Output directory", outputDir),
	}
}

// FirstFailure returns the first failed result, if any.
func FirstFailure(results []Result) (Result, bool) {
	for _, result := range results {
		if !result.Passed {
			return result, true
		}
	}
	return Result{}, false
}
