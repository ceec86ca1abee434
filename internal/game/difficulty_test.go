package game

import (
	"slices"
	"testing"
)

func TestLegalEIsPerLevel(t *testing.T) {
	c := NewCurriculum(EIScale)
	tests := []struct {
		level int
		want  []float64
	}{
		{1, []float64{0, 1, 2, 3, 4}},
		{2, []float64{0, 1, 2, 3, 4, 5}},
		{3, []float64{0, 1, 2, 3, 4, 5, 6}},
		{4, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{5, []float64{0, 0.5, 1, 1.5, 2, 3, 4, 5, 6, 7, 8}},
		{10, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5, 6, 6.5, 7, 7.5, 8}},
	}
	for _, tc := range tests {
		got := c.LegalEIs(tc.level)
		if !slices.Equal(got, tc.want) {
			t.Errorf("level %d: got %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestLegalEIsOnlyGrow(t *testing.T) {
	c := NewCurriculum(EIScale)
	for level := MinLevel; level < MaxLevel; level++ {
		cur := c.LegalEIs(level)
		next := c.LegalEIs(level + 1)
		if len(next) <= len(cur) {
			t.Errorf("level %d -> %d did not add any EI", level, level+1)
		}
		for _, ei := range cur {
			if !slices.Contains(next, ei) {
				t.Errorf("EI %.1f legal at level %d but not at %d", ei, level, level+1)
			}
		}
	}
}

func TestLegalEIsClampLevel(t *testing.T) {
	c := NewCurriculum(EIScale)
	if !slices.Equal(c.LegalEIs(0), c.LegalEIs(1)) {
		t.Errorf("level 0 should clamp to level 1")
	}
	if !slices.Equal(c.LegalEIs(42), c.LegalEIs(10)) {
		t.Errorf("level 42 should clamp to level 10")
	}
}

func TestNewlyIntroduced(t *testing.T) {
	c := NewCurriculum(EIScale)
	if got := c.NewlyIntroduced(1); len(got) != 0 {
		t.Errorf("level 1 should introduce nothing, got %v", got)
	}
	if got := c.NewlyIntroduced(4); !slices.Equal(got, []float64{7, 8}) {
		t.Errorf("level 4: got %v", got)
	}
	if got := c.NewlyIntroduced(5); !slices.Equal(got, []float64{0.5, 1.5}) {
		t.Errorf("level 5: got %v", got)
	}
}

func TestCurriculumCap(t *testing.T) {
	c := NewCurriculum(7)
	if got := c.LegalEIs(4); !slices.Equal(got, []float64{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("capped level 4: got %v", got)
	}
	if c.IsLegal(10, 7.5) || c.IsLegal(10, 8) {
		t.Errorf("EIs above the cap must never be legal")
	}
	if got := c.NewlyIntroduced(4); !slices.Equal(got, []float64{7}) {
		t.Errorf("capped level 4 introductions: got %v", got)
	}

	if got := NewCurriculum(-1).MaxEI; got != EIScale {
		t.Errorf("invalid cap should fall back to %v, got %v", EIScale, got)
	}
}

func TestSnapInterval(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		want := 1.0
		if level >= 5 {
			want = 0.5
		}
		if got := SnapInterval(level); got != want {
			t.Errorf("level %d: got %v, want %v", level, got, want)
		}
	}
}

func TestSnapEI(t *testing.T) {
	c := NewCurriculum(EIScale)
	tests := []struct {
		raw   float64
		level int
		want  float64
	}{
		{2.4, 1, 2},
		{2.5, 1, 3},
		{9.3, 1, 4},
		{-1.2, 1, 1},
		{2.3, 5, 2}, // grid gives 2.5, not legal yet; tie goes low
		{1.4, 5, 1.5},
		{2.3, 10, 2.5},
		{7.9, 10, 8},
		{0.2, 10, 0},
	}
	for _, tc := range tests {
		if got := c.SnapEI(tc.raw, tc.level); got != tc.want {
			t.Errorf("SnapEI(%v, %d) = %v, want %v", tc.raw, tc.level, got, tc.want)
		}
	}
}
