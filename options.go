package shutdown

import "github.com/charmbracelet/log"

// config holds optional combinator behavior set via Option.
type config struct {
	logger *log.Logger
}

// Option configures a Combinator at construction time.
type Option func(*config)

// WithLogger makes the combinator log phase transitions and the otherwise
// discarded trigger/task resolution values at debug level. Pure
// observation; the state machine is unaffected.
//
// Example:
//
//	shutdown.New(triggers, tasks, cleanup, shutdown.WithLogger(log.Default()))
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
