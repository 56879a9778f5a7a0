package genetic

// generation is one fixed-size cohort of genomes and their fitness scores,
// stored in parallel slices indexed by population slot.
type generation[G any] struct {
	genomes []G
	fitness []float64
}

func newGeneration[G any](size int) *generation[G] {
	return &generation[G]{
		genomes: make([]G, size),
		fitness: make([]float64, size),
	}
}

// population double-buffers two generations: breeding reads parents from the
// previous buffer while children are written into the current one.
type population[G any] struct {
	size     int
	current  *generation[G]
	previous *generation[G]
}

func newPopulation[G any](size int) *population[G] {
	return &population[G]{
		size:     size,
		current:  newGeneration[G](size),
		previous: newGeneration[G](size),
	}
}

// advance retires the current generation to the previous buffer and recycles
// the old previous buffer for the next generation's children.
func (p *population[G]) advance() {
	p.current, p.previous = p.previous, p.current
}

// carryElites copies the first n slots of the previous generation into the
// same slots of the current one, fitness included. Slots are copied by
// position, not by fitness rank.
func (p *population[G]) carryElites(n int) {
	for i := 0; i < n; i++ {
		p.current.genomes[i] = p.previous.genomes[i]
		p.current.fitness[i] = p.previous.fitness[i]
	}
}
