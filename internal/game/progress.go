package game

// Progress is the trainer's position in the rack. Pending fields hold a
// transition decided at evaluation time; they are applied by Commit when the
// next round starts, so the evaluated round keeps rendering the old ball and
// level.
type Progress struct {
	Ball         int  `json:"ball"`
	Level        int  `json:"level"`
	Score        int  `json:"score"`
	PendingBall  *int `json:"pending_ball,omitempty"`
	PendingLevel *int `json:"pending_level,omitempty"`
	Evaluated    bool `json:"evaluated"`
}

// Transition describes what a decision queued.
type Transition struct {
	LevelUp   bool `json:"level_up"`
	RackClear bool `json:"rack_clear"`
	NextBall  int  `json:"next_ball"`
	NextLevel int  `json:"next_level"`
}

// NewProgress is ball 1, level 1, score 0.
func NewProgress() Progress {
	return Progress{Ball: 1, Level: MinLevel}
}

// HasPending reports whether a transition is waiting to be committed.
func (p Progress) HasPending() bool {
	return p.PendingBall != nil || p.PendingLevel != nil
}

// Decide queues the transition for an evaluated answer and marks the round
// evaluated. Ball and level stay as they are until Commit.
func Decide(p Progress, correct bool, maxBalls int) (Progress, Transition) {
	next := p
	next.Evaluated = true
	t := Transition{NextBall: p.Ball, NextLevel: p.Level}

	if correct {
		next.Score += ScoreIncrement
		if p.Ball >= maxBalls {
			t.RackClear = true
			t.NextBall = 1
			if p.Level < MaxLevel {
				t.LevelUp = true
				t.NextLevel = p.Level + 1
				next.PendingLevel = intPtr(t.NextLevel)
			}
		} else {
			t.NextBall = p.Ball + 1
		}
	} else {
		t.NextBall = max(1, p.Ball-1)
	}

	next.PendingBall = intPtr(t.NextBall)
	return next, t
}

// Commit applies and clears any pending transition and opens a new round.
func Commit(p Progress, maxBalls int) Progress {
	next := p
	if p.PendingBall != nil {
		next.Ball = *p.PendingBall
	}
	if p.PendingLevel != nil {
		next.Level = *p.PendingLevel
	}
	next.PendingBall = nil
	next.PendingLevel = nil
	next.Evaluated = false

	next.Ball = max(1, min(maxBalls, next.Ball))
	next.Level = ClampLevel(next.Level)
	return next
}

func intPtr(v int) *int {
	return &v
}
