package game

import "math/rand/v2"

// Weighted pairs a value with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice draws one value with probability proportional to its weight.
// Candidates are walked in order and the first whose cumulative weight exceeds
// the draw wins. Non-positive weights are never chosen. ok is false when
// nothing can be chosen.
func WeightedChoice[T any](rng *rand.Rand, items []Weighted[T]) (value T, ok bool) {
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return value, false
	}

	draw := rng.Float64() * total
	cumulative := 0.0
	last := -1
	for i, it := range items {
		if it.Weight <= 0 {
			continue
		}
		cumulative += it.Weight
		if cumulative > draw {
			return it.Value, true
		}
		last = i
	}
	// float rounding can leave draw == total
	return items[last].Value, true
}
