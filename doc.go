// Package genetic provides a generic genetic algorithm engine.
//
// The engine evolves a fixed-size population of genomes through selection,
// crossover, mutation and elitism. Genomes are opaque to the engine: their
// structure is defined entirely by four caller-supplied functions (initial
// construction, fitness, mutation, crossover). Built-in defaults are
// provided for []float64 genomes, along with fitness-proportional,
// rank-proportional and tournament selection, one- and two-point crossover,
// and generation-count and fitness-static stop conditions.
//
// Basic usage:
//
//	// Configure a run
//	opts := genetic.DefaultOptions[[]float64]()
//	opts.PopSize = 50
//	opts.MaxGenerationCount = 200
//
//	// Build and run the engine
//	engine, err := genetic.New(opts)
//	if err != nil {
//		log.Fatalf("Error building engine: %v", err)
//	}
//	result, err := engine.Run(context.Background())
//	if err != nil {
//		log.Fatalf("Error running engine: %v", err)
//	}
//
//	// Query the final generation
//	fmt.Println("Fittest genome:", result.Fittest())
//	fmt.Println("Max fitness by generation:", result.MaxFitnessHistory())
package genetic
