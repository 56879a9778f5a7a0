package genetic

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// The engine treats genomes as opaque values of type G. All knowledge about a
// genome's structure lives in the four pluggable functions below; built-in
// implementations are provided for G = []float64.

// InitFunc produces one random genome for the initial generation.
type InitFunc[G any] func(rng *rand.Rand) G

// FitnessFunc scores a genome. Higher is fitter; +Inf is a valid score and is
// treated as maximal. A non-nil error aborts the run.
type FitnessFunc[G any] func(genome G) (float64, error)

// MutateFunc alters a bred child genome. It may modify the genome in place
// and return it, or return a replacement.
type MutateFunc[G any] func(genome G, rng *rand.Rand) G

// CrossoverFunc recombines two parent genomes into two children. The parents
// must not be modified.
type CrossoverFunc[G any] func(a, b G, rng *rand.Rand) (G, G)

// Individual pairs a genome with the fitness it was assigned during the run.
type Individual[G any] struct {
	Genome  G
	Fitness float64
}

// Defaults for G = []float64.
const (
	// DefaultVectorLength is the genome length used by RandomVector.
	DefaultVectorLength = 8
	// DefaultTargetSum is the sum that SumProximityFitness rewards.
	DefaultTargetSum = 5.6
)

// RandomVector returns a genome of DefaultVectorLength values drawn uniformly
// from [-1, 1). It is the default InitFunc for []float64 genomes.
func RandomVector(rng *rand.Rand) []float64 {
	genome := make([]float64, DefaultVectorLength)
	for i := range genome {
		genome[i] = rng.Float64()*2 - 1
	}
	return genome
}

// ReplaceElementMutation overwrites one randomly chosen element with a fresh
// uniform value from [-1, 1). It is the default MutateFunc for []float64
// genomes. Zero-length genomes are returned unchanged.
func ReplaceElementMutation(genome []float64, rng *rand.Rand) []float64 {
	if len(genome) == 0 {
		return genome
	}
	genome[rng.Intn(len(genome))] = rng.Float64()*2 - 1
	return genome
}

// SumProximityFitness scores a genome by how close its element sum is to
// DefaultTargetSum, as 1 / |sum - target|. An exact match scores +Inf. It is
// the default FitnessFunc for []float64 genomes and never returns an error.
func SumProximityFitness(genome []float64) (float64, error) {
	return 1 / math.Abs(floats.Sum(genome)-DefaultTargetSum), nil
}
