package genetic

import "math/rand"

// CrossoverMethod names a built-in recombination strategy for slice genomes.
type CrossoverMethod string

const (
	// CrossoverOnePoint cuts both parents at one point and swaps the tails.
	CrossoverOnePoint CrossoverMethod = "one-point"
	// CrossoverTwoPoint cuts both parents at two points and swaps the middle
	// segment.
	CrossoverTwoPoint CrossoverMethod = "two-point"
)

// OnePointCrossover returns a CrossoverFunc for slice genomes of any element
// type. The cut point is drawn from [0, len) of the shorter parent, so
// parents of unequal length are supported; the children take the parents'
// lengths, swapped. Parents are never modified.
func OnePointCrossover[E any]() CrossoverFunc[[]E] {
	return func(a, b []E, rng *rand.Rand) ([]E, []E) {
		point := 0
		if shortest := min(len(a), len(b)); shortest > 0 {
			point = rng.Intn(shortest)
		}
		child1 := make([]E, 0, len(b))
		child1 = append(child1, a[:point]...)
		child1 = append(child1, b[point:]...)
		child2 := make([]E, 0, len(a))
		child2 = append(child2, b[:point]...)
		child2 = append(child2, a[point:]...)
		return child1, child2
	}
}

// TwoPointCrossover returns a CrossoverFunc for slice genomes of any element
// type. Two cut points are drawn from [0, len) of the shorter parent,
// distinct whenever that length allows, and the segment between them is
// swapped; each child keeps its primary parent's length. Parents are never
// modified.
func TwoPointCrossover[E any]() CrossoverFunc[[]E] {
	return func(a, b []E, rng *rand.Rand) ([]E, []E) {
		p1, p2 := 0, 0
		if shortest := min(len(a), len(b)); shortest > 0 {
			p1, p2 = rng.Intn(shortest), rng.Intn(shortest)
			for shortest > 1 && p2 == p1 {
				p2 = rng.Intn(shortest)
			}
			if p1 > p2 {
				p1, p2 = p2, p1
			}
		}
		child1 := make([]E, 0, len(a))
		child1 = append(child1, a[:p1]...)
		child1 = append(child1, b[p1:p2]...)
		child1 = append(child1, a[p2:]...)
		child2 := make([]E, 0, len(b))
		child2 = append(child2, b[:p1]...)
		child2 = append(child2, a[p1:p2]...)
		child2 = append(child2, b[p2:]...)
		return child1, child2
	}
}

// builtinCrossover resolves a CrossoverMethod to its built-in CrossoverFunc.
// The built-ins only exist for G = []float64; any other genome type must
// supply Options.Crossover directly.
func builtinCrossover[G any](method CrossoverMethod) (CrossoverFunc[G], error) {
	var fn CrossoverFunc[[]float64]
	switch method {
	case CrossoverOnePoint:
		fn = OnePointCrossover[float64]()
	case CrossoverTwoPoint:
		fn = TwoPointCrossover[float64]()
	default:
		return nil, configErrorf("invalid crossover_method '%s', must be one of '%s', '%s'",
			method, CrossoverOnePoint, CrossoverTwoPoint)
	}
	if cast, ok := any(fn).(CrossoverFunc[G]); ok {
		return cast, nil
	}
	var zero G
	return nil, configErrorf("crossover_method '%s' has no built-in for genome type %T; set the Crossover option", method, zero)
}
