package genetic

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"github.com/sourcegraph/conc/pool"
)

// phase tracks the engine lifecycle.
type phase int

const (
	phaseInit phase = iota
	phaseEvolving
	phaseTerminated
)

// Engine evolves a fixed-size population of genomes of type G. Build one
// with New and drive it with Run. An Engine is single-use and must not be
// shared between goroutines.
type Engine[G any] struct {
	settings[G]

	runID      uuid.UUID
	pop        *population[G]
	stats      *statistics
	generation int
	phase      phase
}

// New validates opts and builds an Engine. No individuals exist until Run
// materializes generation 0.
func New[G any](opts Options[G]) (*Engine[G], error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return &Engine[G]{
		settings: s,
		runID:    uuid.Must(uuid.NewV4()),
		pop:      newPopulation[G](s.popSize),
		stats:    newStatistics(),
	}, nil
}

// Run executes the evolutionary loop to completion and returns the query
// handle for the final generation. The stop condition is checked against the
// most recently completed generation before any breeding, so a stop
// condition that is already satisfied at generation 0 yields the initial
// population unchanged. Cancellation via ctx is observed between
// generations. Run can be called once; any error aborts the run without a
// Result.
func (e *Engine[G]) Run(ctx context.Context) (*Result[G], error) {
	if e.phase != phaseInit {
		return nil, errors.New("engine has already run")
	}
	e.phase = phaseEvolving

	e.debugf("run %s: building generation 0 (pop_size=%d elite_size=%d selection=%s)",
		e.runID, e.popSize, e.eliteSize, e.selectionMethod)
	for i := 0; i < e.popSize; i++ {
		e.pop.current.genomes[i] = e.random(e.rng)
	}
	if err := e.evaluate(0); err != nil {
		e.phase = phaseTerminated
		return nil, err
	}
	maxFit, mean, stdev := e.stats.observe(0, e.pop.current.fitness)
	e.debugf("run %s: generation 0 max=%g mean=%g stdev=%g", e.runID, maxFit, mean, stdev)

	for !e.stop.done(e.generation, e.stats) {
		if err := ctx.Err(); err != nil {
			e.phase = phaseTerminated
			return nil, err
		}

		e.generation++
		e.pop.advance()
		e.pop.carryElites(e.eliteSize)
		if err := e.breed(); err != nil {
			e.phase = phaseTerminated
			return nil, err
		}
		e.mutateChildren()
		if err := e.evaluate(e.eliteSize); err != nil {
			e.phase = phaseTerminated
			return nil, err
		}

		maxFit, mean, stdev := e.stats.observe(e.generation, e.pop.current.fitness)
		e.debugf("run %s: generation %d max=%g mean=%g stdev=%g static=%d",
			e.runID, e.generation, maxFit, mean, stdev, e.stats.static)
	}

	e.phase = phaseTerminated
	e.debugf("run %s: terminated at generation %d", e.runID, e.generation)
	return e.newResult(), nil
}

// breed fills every non-elite slot of the current generation with children
// recombined from the previous one. Children arrive in pairs; when the
// number of open slots is odd, the final pair's second child is discarded.
func (e *Engine[G]) breed() error {
	parents := e.pop.previous
	e.sel.prepare(parents.fitness)

	for i := e.eliteSize; i < e.popSize; i += 2 {
		first, err := e.pickParent(parents.fitness)
		if err != nil {
			return err
		}
		second, err := e.pickParent(parents.fitness)
		if err != nil {
			return err
		}
		for e.sel.rejectMate(first, second) {
			if second, err = e.pickParent(parents.fitness); err != nil {
				return err
			}
		}

		child1, child2 := e.crossover(parents.genomes[first], parents.genomes[second], e.rng)
		e.pop.current.genomes[i] = child1
		if i+1 < e.popSize {
			e.pop.current.genomes[i+1] = child2
		}
	}
	return nil
}

// pickParent draws one parent index, stamping the current generation onto
// any SelectionError.
func (e *Engine[G]) pickParent(fitness []float64) (int, error) {
	idx, err := e.sel.pick(fitness, e.rng)
	if err != nil {
		var serr *SelectionError
		if errors.As(err, &serr) {
			serr.Generation = e.generation
		}
		return 0, err
	}
	return idx, nil
}

// mutateChildren applies the mutation operator to each non-elite slot with
// probability mutationRate. Elite slots are never mutated.
func (e *Engine[G]) mutateChildren() {
	cur := e.pop.current
	for i := e.eliteSize; i < e.popSize; i++ {
		if e.rng.Float64() < e.mutationRate {
			cur.genomes[i] = e.mutate(cur.genomes[i], e.rng)
		}
	}
}

// evaluate scores every slot from first onward; elites keep their carried
// fitness. With evalConcurrency > 1 the slots are scored by a bounded worker
// pool. Each worker writes only its own slot, so the resulting scores are
// identical to a sequential pass.
func (e *Engine[G]) evaluate(first int) error {
	cur := e.pop.current

	if e.evalConcurrency > 1 {
		p := pool.New().WithMaxGoroutines(e.evalConcurrency).WithErrors().WithFirstError()
		for i := first; i < e.popSize; i++ {
			i := i
			p.Go(func() error {
				fit, err := e.fitness(cur.genomes[i])
				if err != nil {
					return &EvalError{Generation: e.generation, Index: i, Err: err}
				}
				cur.fitness[i] = fit
				return nil
			})
		}
		return p.Wait()
	}

	for i := first; i < e.popSize; i++ {
		fit, err := e.fitness(cur.genomes[i])
		if err != nil {
			return &EvalError{Generation: e.generation, Index: i, Err: err}
		}
		cur.fitness[i] = fit
	}
	return nil
}

// debugf routes a progress notice to the logger when Debug is enabled.
func (e *Engine[G]) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	e.log.Printf(format, args...)
}
