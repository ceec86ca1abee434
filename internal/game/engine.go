package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

var (
	ErrRoundEvaluated = errors.New("round already evaluated")
	ErrNoActiveRound  = errors.New("no active round")
	ErrInvalidAnswer  = errors.New("invalid answer")
)

// TargetShot is the shot shown to the player for one round.
type TargetShot struct {
	EI                float64   `json:"ei"`
	Direction         Direction `json:"direction"`
	Angle             float64   `json:"angle"`
	PocketDistance    float64   `json:"pocket_distance"`
	MaxPocketDistance float64   `json:"max_pocket_distance"`
	Pocket            Vec2      `json:"pocket"`
	ObjectBall        Vec2      `json:"object_ball"`
	GhostBall         Vec2      `json:"ghost_ball"`
	CueBall           Vec2      `json:"cue_ball"`
}

// IsZero reports whether no round has been dealt.
func (t TargetShot) IsZero() bool {
	return t.PocketDistance == 0
}

// Answer is what the player committed. Raw answers are unsnapped pointer
// values and get quantized to the level grid before comparison.
type Answer struct {
	EI        float64   `json:"ei"`
	Direction Direction `json:"direction"`
	Raw       bool      `json:"raw,omitempty"`
}

// Engine deals rounds and scores answers for one trainer mode. It keeps no
// per-player state; progress is passed in and returned.
type Engine struct {
	mode       Mode
	curriculum Curriculum
	selector   Selector
	table      Table

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine builds an engine. A nil rng gets a time-seeded source.
func NewEngine(mode Mode, curriculum Curriculum, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Engine{
		mode:       mode,
		curriculum: curriculum,
		selector:   NewSelector(curriculum),
		table:      NewStandardTable(),
		rng:        rng,
	}
}

// NewRand returns a PCG-backed source. Seed 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>17|1))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (e *Engine) Mode() Mode             { return e.mode }
func (e *Engine) Curriculum() Curriculum { return e.curriculum }
func (e *Engine) Table() Table           { return e.table }

// ResetRack returns fresh progress at level 1, ball 1, score 0.
func (e *Engine) ResetRack() Progress {
	return NewProgress()
}

// NewRound commits any pending transition and deals a target at the resulting
// level. forceReset starts over from a fresh rack instead of committing.
func (e *Engine) NewRound(p Progress, forceReset bool) (TargetShot, Progress) {
	if forceReset {
		p = e.ResetRack()
	} else {
		p = Commit(p, e.mode.MaxBalls)
	}

	e.mu.Lock()
	shot := e.selector.SelectTargetShot(e.rng, p.Level)
	u := e.rng.Float64()
	e.mu.Unlock()

	return e.PlaceShot(shot, u), p
}

// PlaceShot positions a selected shot on the table. u in [0, 1) picks the
// pocket distance within the outer half of the available range.
func (e *Engine) PlaceShot(shot Shot, u float64) TargetShot {
	angle := EIToAngle(shot.EI)
	maxDist := e.table.MaxPocketDistance(angle, shot.Direction)
	dist := e.table.PocketDistance(maxDist, u)

	return TargetShot{
		EI:                shot.EI,
		Direction:         shot.Direction,
		Angle:             angle,
		PocketDistance:    dist,
		MaxPocketDistance: maxDist,
		Pocket:            e.table.PocketPosition(angle, shot.Direction, dist).Fixed(),
		ObjectBall:        e.table.ObjectBallPosition(angle, shot.Direction).Fixed(),
		GhostBall:         e.table.Origin(),
		CueBall:           e.table.CueBallPosition(),
	}
}

// Evaluate scores an answer against a target without touching progress.
func (e *Engine) Evaluate(level int, target TargetShot, a Answer) (Verdict, error) {
	if math.IsNaN(a.EI) || math.IsInf(a.EI, 0) || a.EI < 0 {
		return Verdict{}, ErrInvalidAnswer
	}

	answerEI := QuantizeEI(a.EI)
	if a.Raw {
		answerEI = e.curriculum.SnapEI(a.EI, level)
	}
	answerDir := a.Direction
	if answerEI != 0 && answerDir == DirectionNone {
		return Verdict{}, ErrInvalidAnswer
	}

	targetEI := QuantizeEI(AngleToEI(target.Angle))
	targetDir := target.Direction
	if targetEI == 0 {
		targetDir = DirectionNone
	}

	outcome := Classify(targetEI, targetDir, answerEI, answerDir)
	return Verdict{
		Outcome:         outcome,
		Correct:         outcome == OutcomeCorrect,
		TargetEI:        targetEI,
		TargetDirection: targetDir,
		AnswerEI:        answerEI,
		AnswerDirection: answerDir,
	}, nil
}

// SubmitAnswer evaluates an answer and returns progress with the next
// transition pending. The round is closed to further answers.
func (e *Engine) SubmitAnswer(p Progress, target TargetShot, a Answer) (Verdict, Progress, error) {
	if p.Evaluated {
		return Verdict{}, p, ErrRoundEvaluated
	}

	v, err := e.Evaluate(p.Level, target, a)
	if err != nil {
		return Verdict{}, p, err
	}

	next, t := Decide(p, v.Correct, e.mode.MaxBalls)
	v.Transition = t
	v.ScoreDelta = next.Score - p.Score
	return v, next, nil
}
