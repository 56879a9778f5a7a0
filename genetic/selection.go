package genetic

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SelectionMethod names a built-in parent selection strategy.
type SelectionMethod string

const (
	// SelectionFitnessProportional draws parents with probability
	// proportional to raw fitness (roulette wheel).
	SelectionFitnessProportional SelectionMethod = "fitness-proportional"
	// SelectionRankProportional draws parents with probability proportional
	// to their fitness rank, which flattens large fitness gaps.
	SelectionRankProportional SelectionMethod = "rank-proportional"
	// SelectionTournament draws a fixed-size sample with replacement and
	// keeps its fittest member.
	SelectionTournament SelectionMethod = "tournament"
)

// selector draws parent indices from a generation's fitness scores.
// prepare runs once per generation before any pick; pick may run many times.
type selector interface {
	prepare(fitness []float64)
	pick(fitness []float64, rng *rand.Rand) (int, error)
	// rejectMate reports whether the second parent of a mating pair must be
	// redrawn given the first.
	rejectMate(first, second int) bool
}

// newSelector builds the selector for a method. tournamentSize is only used
// by SelectionTournament.
func newSelector(method SelectionMethod, tournamentSize int) (selector, error) {
	switch method {
	case SelectionFitnessProportional:
		return &fitnessProportionalSelector{}, nil
	case SelectionRankProportional:
		return &rankProportionalSelector{}, nil
	case SelectionTournament:
		return &tournamentSelector{size: tournamentSize}, nil
	}
	return nil, configErrorf("invalid selection_method '%s', must be one of '%s', '%s', '%s'",
		method, SelectionFitnessProportional, SelectionRankProportional, SelectionTournament)
}

// fitnessProportionalSelector implements roulette-wheel selection on raw
// fitness. It requires a positive, non-NaN aggregate fitness.
type fitnessProportionalSelector struct {
	total float64
}

func (s *fitnessProportionalSelector) prepare(fitness []float64) {
	s.total = floats.Sum(fitness)
}

func (s *fitnessProportionalSelector) pick(fitness []float64, rng *rand.Rand) (int, error) {
	if math.IsNaN(s.total) || s.total <= 0 {
		return 0, &SelectionError{Total: s.total}
	}
	r := rng.Float64() * s.total
	cum := 0.0
	for i, f := range fitness {
		cum += f
		if cum > r {
			return i, nil
		}
	}
	// An infinite aggregate never satisfies cum > r; the final slot absorbs
	// the draw.
	return len(fitness) - 1, nil
}

// rejectMate redraws while both picks land on the same individual, so a
// mating pair always holds two distinct parents.
func (s *fitnessProportionalSelector) rejectMate(first, second int) bool {
	return second == first
}

// rankProportionalSelector weights each individual by its fitness rank plus
// one, with rank 0 for the least fit. Ties keep their slot order.
type rankProportionalSelector struct {
	rank  []int
	total float64
}

func (s *rankProportionalSelector) prepare(fitness []float64) {
	n := len(fitness)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return fitness[order[i]] < fitness[order[j]]
	})
	s.rank = make([]int, n)
	for r, idx := range order {
		s.rank[idx] = r
	}
	s.total = float64(n*(n+1)) / 2
}

func (s *rankProportionalSelector) pick(fitness []float64, rng *rand.Rand) (int, error) {
	r := rng.Float64() * s.total
	cum := 0.0
	for i := range s.rank {
		cum += float64(s.rank[i] + 1)
		if cum > r {
			return i, nil
		}
	}
	return len(s.rank) - 1, nil
}

// rejectMate redraws while the picks differ, so a rank-proportional mating
// pair converges on a single parent crossed with itself.
func (s *rankProportionalSelector) rejectMate(first, second int) bool {
	return second != first
}

// tournamentSelector samples size individuals with replacement and keeps the
// fittest. Ties go to the earlier draw.
type tournamentSelector struct {
	size int
}

func (s *tournamentSelector) prepare(fitness []float64) {}

func (s *tournamentSelector) pick(fitness []float64, rng *rand.Rand) (int, error) {
	best := rng.Intn(len(fitness))
	for k := 1; k < s.size; k++ {
		challenger := rng.Intn(len(fitness))
		if fitness[challenger] > fitness[best] {
			best = challenger
		}
	}
	return best, nil
}

// rejectMate redraws while the picks differ, so a tournament mating pair
// converges on a single parent crossed with itself.
func (s *tournamentSelector) rejectMate(first, second int) bool {
	return second != first
}
