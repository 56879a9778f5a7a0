package genetic

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

// Defaults applied by DefaultOptions and by option resolution.
const (
	DefaultPopSize            = 100
	DefaultMutationRate       = 0.05
	DefaultMaxGenerationCount = 100
)

// Options configures an Engine. Start from DefaultOptions, override fields,
// and pass the result to New; zero enum values resolve to their defaults,
// but PopSize must be positive.
type Options[G any] struct {
	// PopSize is the population size, fixed for the whole run.
	PopSize int

	// Random builds one individual of the initial generation. Defaults to
	// RandomVector when G is []float64; required otherwise.
	Random InitFunc[G]

	// Mutate alters one bred child. Defaults to ReplaceElementMutation when
	// G is []float64; required otherwise.
	Mutate MutateFunc[G]

	// MutationRate is the per-child probability of one Mutate call. Rates of
	// 1 or more are replaced by DefaultMutationRate; only strictly-less-
	// than-one rates are honored, including zero and negative ones.
	MutationRate float64

	// SelectionMethod picks the parent selection strategy.
	SelectionMethod SelectionMethod

	// TournamentSize is the sample size for SelectionTournament. Zero
	// derives ceil(PopSize/10).
	TournamentSize int

	// EliteSize is the number of leading population slots carried into each
	// new generation unchanged. nil derives ceil(PopSize/2); an explicit
	// zero disables elitism.
	EliteSize *int

	// CrossoverMethod picks the built-in recombination strategy. Ignored
	// when Crossover is set.
	CrossoverMethod CrossoverMethod

	// Crossover overrides CrossoverMethod with a custom recombination
	// function. Required for genome types other than []float64 unless a
	// built-in applies.
	Crossover CrossoverFunc[G]

	// Fitness scores an individual. Defaults to SumProximityFitness when G
	// is []float64; required otherwise.
	Fitness FitnessFunc[G]

	// StopCondition picks the termination rule.
	StopCondition StopCondition

	// MaxGenerationCount is the generation budget for StopGenerationCount.
	MaxGenerationCount int

	// MaxStaticGenerations is the static-generation budget for
	// StopFitnessStatic.
	MaxStaticGenerations int

	// EvalConcurrency is the number of goroutines used to evaluate fitness
	// within one generation. Values below 2 evaluate sequentially; results
	// are identical either way.
	EvalConcurrency int

	// Debug routes per-generation progress notices to Logger. It has no
	// computational effect.
	Debug bool

	// Logger receives progress notices when Debug is set. Defaults to the
	// standard library logger.
	Logger Logger

	// Rand is the run's random source. Defaults to a time-seeded source;
	// inject a seeded one for reproducible runs.
	Rand *rand.Rand
}

// DefaultOptions returns the canonical configuration: a population of 100
// evolved by fitness-proportional selection and two-point crossover for 100
// generations. TournamentSize and EliteSize stay unset and are derived from
// the final PopSize by New.
func DefaultOptions[G any]() Options[G] {
	return Options[G]{
		PopSize:            DefaultPopSize,
		MutationRate:       DefaultMutationRate,
		SelectionMethod:    SelectionFitnessProportional,
		CrossoverMethod:    CrossoverTwoPoint,
		StopCondition:      StopGenerationCount,
		MaxGenerationCount: DefaultMaxGenerationCount,
	}
}

// optionsFile mirrors the scalar Options fields for INI mapping.
type optionsFile struct {
	PopSize              int     `ini:"pop_size"`
	MutationRate         float64 `ini:"mutation_rate"`
	SelectionMethod      string  `ini:"selection_method"`
	TournamentSize       int     `ini:"tournament_size"`
	EliteSize            int     `ini:"elite_size"`
	CrossoverMethod      string  `ini:"crossover_method"`
	StopCondition        string  `ini:"stop_condition"`
	MaxGenerationCount   int     `ini:"max_generation_count"`
	MaxStaticGenerations int     `ini:"max_static_generations"`
	EvalConcurrency      int     `ini:"eval_concurrency"`
	Debug                bool    `ini:"debug"`
}

// LoadOptions overlays the [engine] section of an INI file onto opts. Keys
// absent from the file leave the corresponding field untouched, so defaults
// set up front survive a partial profile. Values are validated by New, not
// here; only the file syntax is checked.
func LoadOptions[G any](filePath string, opts *Options[G]) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return fmt.Errorf("failed to load options file '%s': %w", filePath, err)
	}

	sec := cfg.Section("engine")

	// Pre-fill the mapping struct so keys missing from the file keep the
	// caller's values.
	file := optionsFile{
		PopSize:              opts.PopSize,
		MutationRate:         opts.MutationRate,
		SelectionMethod:      string(opts.SelectionMethod),
		TournamentSize:       opts.TournamentSize,
		CrossoverMethod:      string(opts.CrossoverMethod),
		StopCondition:        string(opts.StopCondition),
		MaxGenerationCount:   opts.MaxGenerationCount,
		MaxStaticGenerations: opts.MaxStaticGenerations,
		EvalConcurrency:      opts.EvalConcurrency,
		Debug:                opts.Debug,
	}
	if err := sec.MapTo(&file); err != nil {
		return fmt.Errorf("failed to map [engine] section: %w", err)
	}

	// Reload the bool explicitly in case MapTo stumbled over comments.
	if key, err := sec.GetKey("debug"); err == nil {
		file.Debug, _ = key.Bool()
	}

	opts.PopSize = file.PopSize
	opts.MutationRate = file.MutationRate
	opts.SelectionMethod = SelectionMethod(cleanIniString(file.SelectionMethod))
	opts.TournamentSize = file.TournamentSize
	opts.CrossoverMethod = CrossoverMethod(cleanIniString(file.CrossoverMethod))
	opts.StopCondition = StopCondition(cleanIniString(file.StopCondition))
	opts.MaxGenerationCount = file.MaxGenerationCount
	opts.MaxStaticGenerations = file.MaxStaticGenerations
	opts.EvalConcurrency = file.EvalConcurrency
	opts.Debug = file.Debug

	// elite_size distinguishes "absent" from an explicit 0, which disables
	// elitism.
	if sec.HasKey("elite_size") {
		eliteSize := file.EliteSize
		opts.EliteSize = &eliteSize
	}

	return nil
}

// settings is the resolved, validated form of Options that the engine runs
// on. All derived defaults are applied and all strategy names are bound to
// implementations.
type settings[G any] struct {
	popSize              int
	mutationRate         float64
	eliteSize            int
	tournamentSize       int
	selectionMethod      SelectionMethod
	maxGenerationCount   int
	maxStaticGenerations int
	evalConcurrency      int
	debug                bool

	random    InitFunc[G]
	mutate    MutateFunc[G]
	fitness   FitnessFunc[G]
	crossover CrossoverFunc[G]
	sel       selector
	stop      stopCondition
	rng       *rand.Rand
	log       Logger
}

// newSettings validates opts and resolves every derived default and strategy
// binding. All failures are ConfigErrors.
func newSettings[G any](opts Options[G]) (settings[G], error) {
	var s settings[G]
	var zero G

	if opts.PopSize <= 0 {
		return s, configErrorf("pop_size must be positive, got %d", opts.PopSize)
	}
	s.popSize = opts.PopSize

	s.mutationRate = opts.MutationRate
	if s.mutationRate >= 1 {
		// Only strictly-less-than-one rates are honored.
		s.mutationRate = DefaultMutationRate
	}

	if opts.EliteSize == nil {
		s.eliteSize = (s.popSize + 1) / 2 // ceil(popSize/2)
	} else {
		s.eliteSize = *opts.EliteSize
	}
	if s.eliteSize < 0 {
		return s, configErrorf("elite_size cannot be negative, got %d", s.eliteSize)
	}
	if s.eliteSize > s.popSize {
		return s, configErrorf("elite_size (%d) cannot exceed pop_size (%d)", s.eliteSize, s.popSize)
	}

	s.tournamentSize = opts.TournamentSize
	if s.tournamentSize == 0 {
		s.tournamentSize = (s.popSize + 9) / 10 // ceil(popSize/10)
	}
	if s.tournamentSize < 0 {
		return s, configErrorf("tournament_size cannot be negative, got %d", s.tournamentSize)
	}
	if s.tournamentSize > s.popSize {
		return s, configErrorf("tournament_size (%d) cannot exceed pop_size (%d)", s.tournamentSize, s.popSize)
	}

	s.selectionMethod = opts.SelectionMethod
	if s.selectionMethod == "" {
		s.selectionMethod = SelectionFitnessProportional
	}
	sel, err := newSelector(s.selectionMethod, s.tournamentSize)
	if err != nil {
		return s, err
	}
	s.sel = sel

	s.random = opts.Random
	if s.random == nil {
		if fn, ok := any(InitFunc[[]float64](RandomVector)).(InitFunc[G]); ok {
			s.random = fn
		} else {
			return s, configErrorf("no built-in random function for genome type %T; set the Random option", zero)
		}
	}
	s.mutate = opts.Mutate
	if s.mutate == nil {
		if fn, ok := any(MutateFunc[[]float64](ReplaceElementMutation)).(MutateFunc[G]); ok {
			s.mutate = fn
		} else {
			return s, configErrorf("no built-in mutation function for genome type %T; set the Mutate option", zero)
		}
	}
	s.fitness = opts.Fitness
	if s.fitness == nil {
		if fn, ok := any(FitnessFunc[[]float64](SumProximityFitness)).(FitnessFunc[G]); ok {
			s.fitness = fn
		} else {
			return s, configErrorf("no built-in fitness function for genome type %T; set the Fitness option", zero)
		}
	}

	s.crossover = opts.Crossover
	if s.crossover == nil {
		method := opts.CrossoverMethod
		if method == "" {
			method = CrossoverTwoPoint
		}
		fn, err := builtinCrossover[G](method)
		if err != nil {
			return s, err
		}
		s.crossover = fn
	}

	condition := opts.StopCondition
	if condition == "" {
		condition = StopGenerationCount
	}
	s.maxGenerationCount = opts.MaxGenerationCount
	s.maxStaticGenerations = opts.MaxStaticGenerations
	stop, err := newStopCondition(condition, s.maxGenerationCount, s.maxStaticGenerations)
	if err != nil {
		return s, err
	}
	s.stop = stop

	s.evalConcurrency = opts.EvalConcurrency
	if s.evalConcurrency < 1 {
		s.evalConcurrency = 1
	}

	s.debug = opts.Debug
	s.log = opts.Logger
	if s.log == nil {
		s.log = defaultLogger()
	}

	s.rng = opts.Rand
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s, nil
}

// cleanIniString removes inline comments and trims whitespace from a string
// read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
