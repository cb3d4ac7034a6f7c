package timecode

import (
	"fmt"
	"strings"
)

// Direction selects the shift policy for a whole run.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// ParseDirection accepts "forward" or "backward" (case-insensitive). An
// empty value means forward.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "forward":
		return DirectionForward, nil
	case "backward":
		return DirectionBackward, nil
	default:
		return DirectionForward, fmt.Errorf("%w: %q", ErrUnknownDirection, value)
	}
}

func (d Direction) String() string {
	if d == DirectionBackward {
		return "backward"
	}
	return "forward"
}

// Policy returns the arithmetic policy bound to d.
func (d Direction) Policy() Policy {
	if d == DirectionBackward {
		return Backward{}
	}
	return Forward{}
}

// MarshalText lets reports and configs carry the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
