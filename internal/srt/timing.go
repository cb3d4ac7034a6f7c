package srt

import (
	"errors"
	"fmt"
	"strings"

	"retime/internal/timecode"
)

const (
	// Arrow separates start and end on a timing line.
	Arrow = "-->"

	separator   = " --> "
	endColumn   = timecode.TimestampWidth + len(separator)
	minLineSize = endColumn + timecode.TimestampWidth
)

// ErrMalformedTimingLine reports a line that contains "-->" but does not
// follow the fixed-width layout.
var ErrMalformedTimingLine = errors.New("malformed timing line")

// TimingLine is a parsed "start --> end" line.
type TimingLine struct {
	// Indent is any whitespace before the start timestamp.
	Indent string
	Start  timecode.Clock
	End    timecode.Clock
	// Trailer holds anything after the end timestamp (cue settings such as
	// "X1:100 X2:200", trailing blanks), including its leading whitespace.
	Trailer string
}

// IsTimingLine reports whether line should be treated as a timing line.
func IsTimingLine(line string) bool {
	return strings.Contains(line, Arrow)
}

// ParseTimingLine splits a timing line at its fixed columns: after any
// leading whitespace the start timestamp occupies columns 0-11 and the end
// timestamp begins at column 17.
func ParseTimingLine(line string) (TimingLine, error) {
	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	if len(body) < minLineSize || body[timecode.TimestampWidth:endColumn] != separator {
		return TimingLine{}, fmt.Errorf("%w: %q", ErrMalformedTimingLine, line)
	}
	start, err := timecode.Parse(body[:timecode.TimestampWidth])
	if err != nil {
		return TimingLine{}, fmt.Errorf("%w: start: %w", ErrMalformedTimingLine, err)
	}
	end, err := timecode.Parse(body[endColumn:minLineSize])
	if err != nil {
		return TimingLine{}, fmt.Errorf("%w: end: %w", ErrMalformedTimingLine, err)
	}
	trailer := body[minLineSize:]
	if trailer != "" && trailer[0] != ' ' && trailer[0] != '\t' {
		return TimingLine{}, fmt.Errorf("%w: unexpected text after end timestamp in %q", ErrMalformedTimingLine, line)
	}
	return TimingLine{Indent: indent, Start: start, End: end, Trailer: trailer}, nil
}

// String reassembles the line exactly as it was parsed.
func (l TimingLine) String() string {
	return l.assemble(l.Start.String(), l.End.String())
}

func (l TimingLine) assemble(start, end string) string {
	return l.Indent + start + separator + end + l.Trailer
}

// Shift returns the shifted timing line text. belowZero reports whether
// either timestamp crossed below 00:00:00,000.
func (l TimingLine) Shift(delay timecode.Clock, p timecode.Policy) (text string, belowZero bool, err error) {
	start, err := timecode.Shift(l.Start, delay, p)
	if err != nil {
		return "", false, fmt.Errorf("shift start of %q: %w", l.String(), err)
	}
	end, err := timecode.Shift(l.End, delay, p)
	if err != nil {
		return "", false, fmt.Errorf("shift end of %q: %w", l.String(), err)
	}
	belowZero = strings.HasPrefix(start, "-") || strings.HasPrefix(end, "-")
	return l.assemble(start, end), belowZero, nil
}

// LineError ties a timing-line failure to its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ErrorKind classifies line failures as input validation problems.
func (e *LineError) ErrorKind() string { return "validation" }
