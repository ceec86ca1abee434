package game

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDecideCorrectAdvancesBall(t *testing.T) {
	p, tr := Decide(NewProgress(), true, 15)
	if p.Score != 10 {
		t.Errorf("score: got %d, want 10", p.Score)
	}
	if p.Ball != 1 {
		t.Errorf("ball should not move before commit, got %d", p.Ball)
	}
	if tr.NextBall != 2 || tr.LevelUp || tr.RackClear {
		t.Errorf("unexpected transition %+v", tr)
	}
	if !p.Evaluated || !p.HasPending() {
		t.Errorf("decision should be pending and evaluated: %+v", p)
	}

	p = Commit(p, 15)
	if p.Ball != 2 || p.Level != 1 || p.HasPending() || p.Evaluated {
		t.Errorf("after commit: %+v", p)
	}
}

func TestDecideIncorrectStepsBack(t *testing.T) {
	p, tr := Decide(NewProgress(), false, 15)
	if p.Score != 0 || tr.NextBall != 1 {
		t.Errorf("ball 1 miss: score %d next %d", p.Score, tr.NextBall)
	}

	start := Progress{Ball: 5, Level: 3, Score: 40}
	p, tr = Decide(start, false, 15)
	if tr.NextBall != 4 || p.Score != 40 {
		t.Errorf("ball 5 miss: next %d score %d", tr.NextBall, p.Score)
	}
	if p = Commit(p, 15); p.Ball != 4 || p.Level != 3 {
		t.Errorf("after commit: %+v", p)
	}
}

func TestDecideRackClearLevelsUp(t *testing.T) {
	start := Progress{Ball: 15, Level: 3, Score: 200}
	p, tr := Decide(start, true, 15)
	if !tr.RackClear || !tr.LevelUp || tr.NextLevel != 4 || tr.NextBall != 1 {
		t.Fatalf("unexpected transition %+v", tr)
	}
	if p.Level != 3 {
		t.Errorf("level should stay 3 until commit, got %d", p.Level)
	}
	p = Commit(p, 15)
	if p.Ball != 1 || p.Level != 4 || p.Score != 210 {
		t.Errorf("after commit: %+v", p)
	}
}

func TestDecideRackClearAtMaxLevel(t *testing.T) {
	start := Progress{Ball: 9, Level: MaxLevel, Score: 990}
	p, tr := Decide(start, true, 9)
	if !tr.RackClear || tr.LevelUp || tr.NextLevel != MaxLevel {
		t.Fatalf("unexpected transition %+v", tr)
	}
	p = Commit(p, 9)
	if p.Ball != 1 || p.Level != MaxLevel {
		t.Errorf("after commit: %+v", p)
	}
}

func TestProgressInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxBalls := rapid.SampledFrom([]int{9, 10, 15}).Draw(t, "maxBalls")
		answers := rapid.SliceOf(rapid.Bool()).Draw(t, "answers")

		p := NewProgress()
		for _, correct := range answers {
			before := p
			p, _ = Decide(p, correct, maxBalls)
			if p.Score < before.Score || p.Score%ScoreIncrement != 0 {
				t.Fatalf("score went from %d to %d", before.Score, p.Score)
			}
			p = Commit(p, maxBalls)
			if p.Ball < 1 || p.Ball > maxBalls {
				t.Fatalf("ball out of range: %d", p.Ball)
			}
			if p.Level < before.Level || p.Level > MaxLevel {
				t.Fatalf("level went from %d to %d", before.Level, p.Level)
			}
		}
	})
}
