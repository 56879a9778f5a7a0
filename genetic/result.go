package genetic

import "github.com/gofrs/uuid"

// Result is the query handle for a completed run. It is immutable; all
// accessors that return slices return fresh copies.
type Result[G any] struct {
	runID        uuid.UUID
	population   []Individual[G]
	fittest      int
	generations  int
	maxHistory   []float64
	meanHistory  []float64
	stdevHistory []float64
}

// newResult snapshots the engine's final generation. The fittest index is
// the individual with strictly greatest fitness; ties keep the lowest index.
func (e *Engine[G]) newResult() *Result[G] {
	individuals := make([]Individual[G], e.popSize)
	fittest := 0
	for i := 0; i < e.popSize; i++ {
		individuals[i] = Individual[G]{
			Genome:  e.pop.current.genomes[i],
			Fitness: e.pop.current.fitness[i],
		}
		if individuals[i].Fitness > individuals[fittest].Fitness {
			fittest = i
		}
	}
	return &Result[G]{
		runID:        e.runID,
		population:   individuals,
		fittest:      fittest,
		generations:  e.generation,
		maxHistory:   e.stats.maxHistory,
		meanHistory:  e.stats.meanHistory,
		stdevHistory: e.stats.stdevHistory,
	}
}

// RunID returns the identifier assigned to the run, for correlating debug
// notices with results.
func (r *Result[G]) RunID() uuid.UUID {
	return r.runID
}

// Generations returns the number of bred generations, which is also the
// length of every history sequence.
func (r *Result[G]) Generations() int {
	return r.generations
}

// Fittest returns the genome of the fittest individual in the final
// generation.
func (r *Result[G]) Fittest() G {
	return r.population[r.fittest].Genome
}

// FittestIndividual returns the fittest individual together with its
// fitness.
func (r *Result[G]) FittestIndividual() Individual[G] {
	return r.population[r.fittest]
}

// Population returns the final generation in slot order.
func (r *Result[G]) Population() []Individual[G] {
	out := make([]Individual[G], len(r.population))
	copy(out, r.population)
	return out
}

// MaxFitnessHistory returns the max fitness of each bred generation, in
// order. Generation 0 is not included.
func (r *Result[G]) MaxFitnessHistory() []float64 {
	return copyFloats(r.maxHistory)
}

// MeanFitnessHistory returns the mean fitness of each bred generation.
func (r *Result[G]) MeanFitnessHistory() []float64 {
	return copyFloats(r.meanHistory)
}

// StdevFitnessHistory returns the population standard deviation of fitness
// of each bred generation.
func (r *Result[G]) StdevFitnessHistory() []float64 {
	return copyFloats(r.stdevHistory)
}

func copyFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
