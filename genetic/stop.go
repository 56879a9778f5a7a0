package genetic

// StopCondition names a built-in termination rule.
type StopCondition string

const (
	// StopGenerationCount terminates once the configured number of
	// generations has been bred.
	StopGenerationCount StopCondition = "generation-count"
	// StopFitnessStatic terminates once the static-generation count exceeds
	// the configured limit.
	StopFitnessStatic StopCondition = "fitness-static"
)

// stopCondition decides whether a run terminates. It is consulted after each
// completed generation, before any breeding of the next one.
type stopCondition interface {
	done(generation int, stats *statistics) bool
}

func newStopCondition(condition StopCondition, maxGenerations, maxStatic int) (stopCondition, error) {
	switch condition {
	case StopGenerationCount:
		return &generationCountStop{max: maxGenerations}, nil
	case StopFitnessStatic:
		return &fitnessStaticStop{max: maxStatic}, nil
	}
	return nil, configErrorf("invalid stop_condition '%s', must be one of '%s', '%s'",
		condition, StopGenerationCount, StopFitnessStatic)
}

// generationCountStop terminates after max generations have been bred. With
// max <= 0 the initial population is already the final result.
type generationCountStop struct {
	max int
}

func (c *generationCountStop) done(generation int, stats *statistics) bool {
	return generation >= c.max
}

// fitnessStaticStop terminates once more than max generations have passed
// without the max fitness dropping below its predecessor. The underlying
// count is cumulative across the run, not a consecutive window.
type fitnessStaticStop struct {
	max int
}

func (c *fitnessStaticStop) done(generation int, stats *statistics) bool {
	return stats.static > c.max
}
