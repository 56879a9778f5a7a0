package genetic

import "fmt"

// ConfigError reports an invalid engine configuration. It is returned by New
// before any generation has run.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

// configErrorf builds a ConfigError from a format string.
func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// EvalError reports a fitness function failure. The run aborts on the first
// failed evaluation; Generation and Index locate the individual whose
// evaluation failed.
type EvalError struct {
	Generation int
	Index      int
	Err        error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("fitness evaluation failed for individual %d in generation %d: %v", e.Index, e.Generation, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// SelectionError reports that parent selection could not proceed, typically
// because the aggregate fitness of a generation is zero, negative, or NaN
// under fitness-proportional selection.
type SelectionError struct {
	Generation int
	Total      float64
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection failed in generation %d: aggregate fitness %v does not admit proportional selection", e.Generation, e.Total)
}
