package genetic

import "log"

// Logger receives the engine's per-generation progress notices. The standard
// library's *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// defaultLogger is used when Options.Debug is set but no Logger is provided.
func defaultLogger() Logger {
	return log.Default()
}
