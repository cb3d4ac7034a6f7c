package timecode

import (
	"fmt"
	"strconv"
)

const (
	// TimestampWidth is the fixed width of an HH:MM:SS,mmm timestamp.
	TimestampWidth = 12
	// MaxDelaySeconds is the first delay that no longer fits a two-digit hour.
	MaxDelaySeconds = 100 * 3600
	maxHour         = 99
)

// Clock is one HH:MM:SS,mmm reading. Timestamps and the delay clock share
// this type; the delay clock always carries Millisecond == 0.
type Clock struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// String renders the clock in SubRip form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", c.Hour, c.Minute, c.Second, c.Millisecond)
}

// EncodeDelay converts whole seconds into a normalized delay clock.
//
// Sub-second delays are not representable. Values at or above
// MaxDelaySeconds are rejected because the hour would need three digits.
func EncodeDelay(seconds int) (Clock, error) {
	if seconds < 0 {
		return Clock{}, fmt.Errorf("%w: %d", ErrNegativeDelay, seconds)
	}
	if seconds >= MaxDelaySeconds {
		return Clock{}, fmt.Errorf("%w: %d seconds (max %d)", ErrDelayOutOfRange, seconds, MaxDelaySeconds-1)
	}
	hour := seconds / 3600
	remainder := seconds % 3600
	return Clock{
		Hour:   hour,
		Minute: remainder / 60,
		Second: remainder % 60,
	}, nil
}

// Seconds returns the clock's whole-second total, ignoring milliseconds.
func (c Clock) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Parse reads a fixed-width HH:MM:SS,mmm timestamp.
func Parse(text string) (Clock, error) {
	if len(text) != TimestampWidth || text[2] != ':' || text[5] != ':' || text[8] != ',' {
		return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, text)
	}
	hour, errH := parseDigits(text[0:2])
	minute, errM := parseDigits(text[3:5])
	second, errS := parseDigits(text[6:8])
	millis, errMS := parseDigits(text[9:12])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, text)
	}
	if minute > 59 || second > 59 {
		return Clock{}, fmt.Errorf("%w: %q has minute or second above 59", ErrMalformedTimestamp, text)
	}
	return Clock{Hour: hour, Minute: minute, Second: second, Millisecond: millis}, nil
}

// parseDigits accepts ASCII digits only; strconv.Atoi alone would take a sign.
func parseDigits(field string) (int, error) {
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(field)
}
