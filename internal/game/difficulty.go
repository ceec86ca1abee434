package game

import (
	"math"
	"slices"
)

// baseEIs are legal from level 1.
var baseEIs = []float64{0, 1, 2, 3, 4}

// levelAdditions lists the EIs first unlocked at each level. Levels 2-4 extend
// the whole-number range, levels 5-10 bring in the halves.
var levelAdditions = map[int][]float64{
	2:  {5},
	3:  {6},
	4:  {7, 8},
	5:  {0.5, 1.5},
	6:  {2.5, 3.5},
	7:  {4.5},
	8:  {5.5},
	9:  {6.5},
	10: {7.5},
}

// Curriculum maps difficulty levels to legal target EIs, capped at MaxEI.
type Curriculum struct {
	MaxEI float64
}

// NewCurriculum returns a curriculum capped at maxEI. Values outside (0, 8]
// fall back to the full range.
func NewCurriculum(maxEI float64) Curriculum {
	if maxEI <= 0 || maxEI > EIScale || math.IsNaN(maxEI) {
		maxEI = EIScale
	}
	return Curriculum{MaxEI: maxEI}
}

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}

// LegalEIs returns the sorted set of target EIs at level.
func (c Curriculum) LegalEIs(level int) []float64 {
	level = ClampLevel(level)
	eis := c.capped(baseEIs)
	for l := MinLevel + 1; l <= level; l++ {
		eis = append(eis, c.capped(levelAdditions[l])...)
	}
	slices.Sort(eis)
	return eis
}

// NewlyIntroduced returns the EIs that become legal exactly at level.
func (c Curriculum) NewlyIntroduced(level int) []float64 {
	level = ClampLevel(level)
	if level == MinLevel {
		return []float64{}
	}
	eis := c.capped(levelAdditions[level])
	slices.Sort(eis)
	return eis
}

// IsLegal reports whether ei is a legal target at level.
func (c Curriculum) IsLegal(level int, ei float64) bool {
	return slices.Contains(c.LegalEIs(level), ei)
}

func (c Curriculum) capped(eis []float64) []float64 {
	out := make([]float64, 0, len(eis))
	for _, ei := range eis {
		if ei <= c.MaxEI {
			out = append(out, ei)
		}
	}
	return out
}

// SnapInterval is the input granularity at level.
func SnapInterval(level int) float64 {
	if level >= HalfStepLevel {
		return 0.5
	}
	return 1.0
}

// SnapEI quantizes a raw pointer EI to the level grid and then to the closest
// legal EI. Ties keep the lower value.
func (c Curriculum) SnapEI(raw float64, level int) float64 {
	interval := SnapInterval(level)
	snapped := math.Round(math.Abs(raw)/interval) * interval

	legal := c.LegalEIs(level)
	closest := legal[0]
	minDiff := math.Abs(snapped - legal[0])
	for _, v := range legal[1:] {
		if d := math.Abs(snapped - v); d < minDiff {
			minDiff = d
			closest = v
		}
	}
	return closest
}
