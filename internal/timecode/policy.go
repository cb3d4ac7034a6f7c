package timecode

import "fmt"

// Hour is the hour field after ApplyHour. Negative marks a backward shift
// that crossed below 00:00:00,000; Render uses it to pick the complement
// form. Text is the sign-prefixed two-digit rendering of Value.
type Hour struct {
	Value    int
	Negative bool
	Text     string
}

// Policy supplies the direction-specific steps of Shift.
type Policy interface {
	// Check reports whether combining a and b overflows (forward) or
	// underflows (backward) the 60 base.
	Check(a, b int) bool
	// Progress is the carry (+1) or borrow (-1) folded into the next unit.
	Progress() int
	// Combine returns the new field value in [0, 59].
	Combine(a, b int) int
	// ApplyHour combines the (already carried) hour with the delay hour.
	ApplyHour(hour, delayHour int) Hour
	// Render assembles the final HH:MM:SS,mmm text.
	Render(hour Hour, minute, second, millisecond int) (string, error)
}

// Forward adds the delay.
type Forward struct{}

func (Forward) Check(a, b int) bool { return a+b >= 60 }

func (Forward) Progress() int { return 1 }

func (Forward) Combine(a, b int) int { return mod60(a + b) }

func (Forward) ApplyHour(hour, delayHour int) Hour {
	value := hour + delayHour
	return Hour{Value: value, Text: fmt.Sprintf("%02d", value)}
}

func (Forward) Render(hour Hour, minute, second, millisecond int) (string, error) {
	if hour.Value > maxHour {
		return "", fmt.Errorf("%w: %d", ErrHourOutOfRange, hour.Value)
	}
	return assemble(hour.Text, minute, second, millisecond), nil
}

// Backward subtracts the delay. Results below zero are rendered as the
// magnitude of the negative time with a leading '-' on the hour.
type Backward struct{}

func (Backward) Check(a, b int) bool { return a-b < 0 }

func (Backward) Progress() int { return -1 }

func (Backward) Combine(a, b int) int { return mod60(a - b) }

func (Backward) ApplyHour(hour, delayHour int) Hour {
	value := hour - delayHour
	if value < 0 {
		return Hour{Value: value, Negative: true, Text: signedHour(-value)}
	}
	return Hour{Value: value, Text: fmt.Sprintf("%02d", value)}
}

func (Backward) Render(hour Hour, minute, second, millisecond int) (string, error) {
	if !hour.Negative {
		return assemble(hour.Text, minute, second, millisecond), nil
	}
	c := complement(hour.Value, minute, second, millisecond)
	if c.Hour > maxHour {
		return "", fmt.Errorf("%w: -%d", ErrHourOutOfRange, c.Hour)
	}
	return assemble(signedHour(c.Hour), c.Minute, c.Second, c.Millisecond), nil
}

// complement turns a reading with a negative hour and non-negative lower
// fields into the magnitude of that (negative) time. Each field is
// complemented against its base and the borrow is pushed upwards, so
// hour=-1 minute=59 second=59 ms=500 becomes 00:00:00,500.
func complement(hour, minute, second, millisecond int) Clock {
	var out Clock
	borrow := 0
	if millisecond == 0 {
		borrow = 1
	} else {
		out.Millisecond = 1000 - millisecond
	}
	out.Second = 59 - second + borrow
	borrow = 0
	if out.Second == 60 {
		out.Second = 0
		borrow = 1
	}
	out.Minute = 59 - minute + borrow
	borrow = 0
	if out.Minute == 60 {
		out.Minute = 0
		borrow = 1
	}
	out.Hour = -hour - 1 + borrow
	return out
}

func signedHour(magnitude int) string {
	return fmt.Sprintf("-%02d", magnitude)
}

func assemble(hour string, minute, second, millisecond int) string {
	return fmt.Sprintf("%s:%02d:%02d,%03d", hour, minute, second, millisecond)
}

// mod60 is the mathematical modulo: mod60(5-40) == 25.
func mod60(v int) int {
	r := v % 60
	if r < 0 {
		r += 60
	}
	return r
}
