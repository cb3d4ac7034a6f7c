package timecode

// Shift moves ts by the delay clock using the policy's arithmetic.
//
// Units are resolved from the bottom up: the seconds carry or borrow is
// folded into the minute before the minute is combined, and the minute
// carry or borrow into the hour before ApplyHour. Milliseconds are never
// shifted.
func Shift(ts, delay Clock, p Policy) (string, error) {
	minute := ts.Minute
	hour := ts.Hour

	if p.Check(ts.Second, delay.Second) {
		minute += p.Progress()
	}
	second := p.Combine(ts.Second, delay.Second)

	if p.Check(minute, delay.Minute) {
		hour += p.Progress()
	}
	minute = p.Combine(minute, delay.Minute)

	h := p.ApplyHour(hour, delay.Hour)
	return p.Render(h, minute, second, ts.Millisecond)
}

// ShiftText parses text and shifts it.
func ShiftText(text string, delay Clock, p Policy) (string, error) {
	ts, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Shift(ts, delay, p)
}
