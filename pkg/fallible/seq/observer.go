package seq

import (
	"github.com/rs/zerolog"
)

// Observer is the progress sink collaborator: it receives the name and
// rendered outcome of each successful step. The coordinator guarantees it
// is never invoked for a step at or after the first failure.
type Observer func(step, outcome string)

// Nop is an observer that discards everything.
func Nop() Observer {
	return func(string, string) {}
}

// LogObserver reports step progress through a zerolog logger.
func LogObserver(l zerolog.Logger) Observer {
	return func(step, outcome string) {
		l.Debug().Str("step", step).Msg(outcome)
	}
}
