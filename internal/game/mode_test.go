package game

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestModeByName(t *testing.T) {
	tests := []struct {
		name     string
		maxBalls int
	}{
		{"8-ball", 15},
		{"8", 15},
		{" 9-Ball ", 9},
		{"10", 10},
	}
	for _, tc := range tests {
		m, err := ModeByName(tc.name)
		if err != nil {
			t.Fatalf("%q: %v", tc.name, err)
		}
		if m.MaxBalls != tc.maxBalls {
			t.Errorf("%q: max balls %d, want %d", tc.name, m.MaxBalls, tc.maxBalls)
		}
	}
	if _, err := ModeByName("snooker"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("got %v, want ErrInvalidMode", err)
	}
}

func TestModeAids(t *testing.T) {
	eight, _ := ModeByName("8-ball")
	ten, _ := ModeByName("10-ball")
	if !eight.Aids.AimLine || !eight.Aids.GhostBall || eight.Aids.Snap != SnapOnDrag {
		t.Errorf("8-ball aids: %+v", eight.Aids)
	}
	if ten.Aids.AimLine || ten.Aids.ObjectBallLine || ten.Aids.Snap != SnapOnRelease {
		t.Errorf("10-ball aids: %+v", ten.Aids)
	}
}

func TestDirectionJSON(t *testing.T) {
	b, err := json.Marshal(Shot{EI: 0})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"ei":0,"direction":null}` {
		t.Errorf("got %s", b)
	}

	var s Shot
	if err := json.Unmarshal([]byte(`{"ei":2.5,"direction":"left"}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Direction != DirectionLeft {
		t.Errorf("got %s, want left", s.Direction)
	}
	if err := json.Unmarshal([]byte(`{"direction":"up"}`), &s); err == nil {
		t.Errorf("expected error for unknown direction")
	}
}
