package game

import (
	"math/rand/v2"
	"slices"
)

// Shot is a selected target before pocket placement.
type Shot struct {
	EI        float64   `json:"ei"`
	Direction Direction `json:"direction"`
}

// Selector draws target shots for a difficulty level.
type Selector struct {
	curriculum Curriculum
}

func NewSelector(c Curriculum) Selector {
	return Selector{curriculum: c}
}

// Candidates returns the weighted EIs for level in ascending order.
func (s Selector) Candidates(level int) []Weighted[float64] {
	fresh := s.curriculum.NewlyIntroduced(level)
	legal := s.curriculum.LegalEIs(level)

	out := make([]Weighted[float64], 0, len(legal))
	for _, ei := range legal {
		w := float64(ZeroEIWeight)
		if ei != 0 {
			base := KnownEIWeight
			if slices.Contains(fresh, ei) {
				base = NewEIWeight
			}
			w = float64(base * DirectionWeights)
		}
		out = append(out, Weighted[float64]{Value: ei, Weight: w})
	}
	return out
}

// SelectTargetShot draws an EI and, for nonzero EIs, a direction.
func (s Selector) SelectTargetShot(rng *rand.Rand, level int) Shot {
	ei, ok := WeightedChoice(rng, s.Candidates(level))
	if !ok {
		return Shot{}
	}
	if ei == 0 {
		return Shot{EI: 0, Direction: DirectionNone}
	}
	dir := DirectionRight
	if rng.IntN(2) == 0 {
		dir = DirectionLeft
	}
	return Shot{EI: ei, Direction: dir}
}
