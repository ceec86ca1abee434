package game

import (
	"testing"
)

func TestCandidateWeights(t *testing.T) {
	s := NewSelector(NewCurriculum(EIScale))

	for _, c := range s.Candidates(1) {
		want := float64(KnownEIWeight * DirectionWeights)
		if c.Value == 0 {
			want = ZeroEIWeight
		}
		if c.Weight != want {
			t.Errorf("level 1 EI %v: weight %v, want %v", c.Value, c.Weight, want)
		}
	}

	for _, c := range s.Candidates(5) {
		var want float64
		switch c.Value {
		case 0:
			want = ZeroEIWeight
		case 0.5, 1.5:
			want = NewEIWeight * DirectionWeights
		default:
			want = KnownEIWeight * DirectionWeights
		}
		if c.Weight != want {
			t.Errorf("level 5 EI %v: weight %v, want %v", c.Value, c.Weight, want)
		}
	}
}

func TestSelectTargetShotAlwaysLegal(t *testing.T) {
	c := NewCurriculum(EIScale)
	s := NewSelector(c)
	rng := NewRand(2024)

	for level := MinLevel; level <= MaxLevel; level++ {
		seenLeft, seenRight := false, false
		for i := 0; i < 10000; i++ {
			shot := s.SelectTargetShot(rng, level)
			if !c.IsLegal(level, shot.EI) {
				t.Fatalf("level %d: illegal EI %v", level, shot.EI)
			}
			switch {
			case shot.EI == 0 && shot.Direction != DirectionNone:
				t.Fatalf("EI 0 drawn with direction %s", shot.Direction)
			case shot.EI != 0 && shot.Direction == DirectionNone:
				t.Fatalf("EI %v drawn without direction", shot.EI)
			}
			seenLeft = seenLeft || shot.Direction == DirectionLeft
			seenRight = seenRight || shot.Direction == DirectionRight
		}
		if !seenLeft || !seenRight {
			t.Errorf("level %d: directions not both drawn (left=%v right=%v)", level, seenLeft, seenRight)
		}
	}
}

func TestSelectTargetShotFavoursNewEIs(t *testing.T) {
	s := NewSelector(NewCurriculum(EIScale))
	rng := NewRand(99)
	counts := map[float64]int{}
	for i := 0; i < 20000; i++ {
		counts[s.SelectTargetShot(rng, 2).EI]++
	}
	// 5 is new at level 2 (weight 14) against 8 for known EIs
	if counts[5] <= counts[4] {
		t.Errorf("new EI 5 drawn %d times, known EI 4 drawn %d times", counts[5], counts[4])
	}
	if counts[0] >= counts[1] {
		t.Errorf("EI 0 drawn %d times, EI 1 drawn %d times", counts[0], counts[1])
	}
}
