package entity

import "fmt"

// Direction is a horizontal input direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction as "left" or "right"
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case DirLeft, DirRight:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
}

// UnmarshalText decodes "left" or "right"
func (d *Direction) UnmarshalText(text []byte) error {
	dir, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = dir
	return nil
}

// ParseDirection parses a direction name
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
