package genetic

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// statistics accumulates per-generation fitness summaries across a run.
// Standard deviation is the population form (divisor n, not n-1).
type statistics struct {
	maxHistory   []float64
	meanHistory  []float64
	stdevHistory []float64

	// lastMax is the max fitness of the most recently observed generation.
	lastMax float64
	// static counts bred generations whose max fitness was not lower than
	// the previous generation's. It accumulates across the whole run and is
	// never reset, so it is not a consecutive-window stagnation count.
	static int
}

func newStatistics() *statistics {
	return &statistics{lastMax: math.Inf(-1)}
}

// observe records one generation's fitness scores and returns its summary.
// Generation 0 seeds the baseline but is excluded from the histories and
// from the static-generation count.
func (s *statistics) observe(gen int, fitness []float64) (maxFit, mean, stdev float64) {
	maxFit = floats.Max(fitness)
	mean = stat.Mean(fitness, nil)
	stdev = stat.PopStdDev(fitness, nil)

	if gen > 0 {
		s.maxHistory = append(s.maxHistory, maxFit)
		s.meanHistory = append(s.meanHistory, mean)
		s.stdevHistory = append(s.stdevHistory, stdev)
		if maxFit >= s.lastMax {
			s.static++
		}
	}
	s.lastMax = maxFit
	return maxFit, mean, stdev
}
