package game

import (
	"encoding/json"
	"fmt"
)

// Direction is the side the object ball is cut toward. EI 0 shots are
// straight-in and carry DirectionNone.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return ""
}

// Sign is -1 for left, +1 for right and 0 when there is no direction.
func (d Direction) Sign() float64 {
	switch d {
	case DirectionLeft:
		return -1
	case DirectionRight:
		return 1
	}
	return 0
}

// ParseDirection accepts "left", "right" or "" (none).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "LEFT", "l", "L":
		return DirectionLeft, nil
	case "right", "RIGHT", "r", "R":
		return DirectionRight, nil
	case "", "none":
		return DirectionNone, nil
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	if d == DirectionNone {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = DirectionNone
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
