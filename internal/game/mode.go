package game

import (
	"errors"
	"strings"
)

var ErrInvalidMode = errors.New("invalid trainer mode")

// SnapMode says where raw pointer input is quantized.
type SnapMode string

const (
	SnapOnDrag    SnapMode = "drag"    // client snaps while dragging
	SnapOnRelease SnapMode = "release" // raw value is snapped on submit
)

// Aids are the display toggles a renderer honours. They never affect scoring.
type Aids struct {
	AimLine        bool     `json:"aim_line"`
	GhostBall      bool     `json:"ghost_ball"`
	ObjectBallLine bool     `json:"object_ball_line"`
	Snap           SnapMode `json:"snap"`
}

// Mode is one trainer variant.
type Mode struct {
	Name     string `json:"name"`
	MaxBalls int    `json:"max_balls"`
	Aids     Aids   `json:"aids"`
}

var modes = map[string]Mode{
	"8-ball": {
		Name: "8-ball", MaxBalls: 15,
		Aids: Aids{AimLine: true, GhostBall: true, ObjectBallLine: true, Snap: SnapOnDrag},
	},
	"9-ball": {
		Name: "9-ball", MaxBalls: 9,
		Aids: Aids{AimLine: false, GhostBall: false, ObjectBallLine: true, Snap: SnapOnRelease},
	},
	"10-ball": {
		Name: "10-ball", MaxBalls: 10,
		Aids: Aids{AimLine: false, GhostBall: false, ObjectBallLine: false, Snap: SnapOnRelease},
	},
}

// ModeByName resolves "8-ball", "9-ball" or "10-ball" (also "8", "9", "10").
func ModeByName(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(n, "-ball") {
		n += "-ball"
	}
	m, ok := modes[n]
	if !ok {
		return Mode{}, ErrInvalidMode
	}
	return m, nil
}

// ParseSnapMode accepts "drag" or "release".
func ParseSnapMode(s string) (SnapMode, error) {
	switch SnapMode(strings.ToLower(s)) {
	case SnapOnDrag:
		return SnapOnDrag, nil
	case SnapOnRelease:
		return SnapOnRelease, nil
	}
	return "", ErrInvalidMode
}
