package shutdown

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// triggerConfig represents the configuration for a SignalTrigger.
type triggerConfig struct {
	sysch <-chan os.Signal
	usrch []<-chan struct{}

	deadline time.Duration
}

type TriggerOption func(*triggerConfig)

// WithCustomSystemSignal adds a custom OS signal channel
//
// Example:
//
//		ch := make(chan os.Signal, 1)
//		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, ...other signals)
//	 	trigger := shutdown.SignalTrigger(ctx, shutdown.WithCustomSystemSignal(ch))
func WithCustomSystemSignal(ch chan os.Signal) TriggerOption {
	return func(c *triggerConfig) {
		c.sysch = ch
	}
}

// WithSysSignal adds default OS signal handling for graceful shutdown
//
// SIGINT (Signal Interrupt) - Typically sent when user presses Ctrl+C
// SIGTERM (Signal Terminate) - Polite request to terminate the program (e.g., from Docker or Kubernetes).
//
// Example:
//
//	trigger := shutdown.SignalTrigger(ctx, shutdown.WithSysSignal())
func WithSysSignal() TriggerOption {
	return func(c *triggerConfig) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

		c.sysch = ch
	}
}

// WithUserChanSignal adds custom user channels that will activate the
// trigger when closed or sent to. Useful for custom shutdown conditions
// beyond OS signals.
func WithUserChanSignal(uch ...<-chan struct{}) TriggerOption {
	return func(c *triggerConfig) {
		c.usrch = uch
	}
}

// WithDeadline makes the trigger fire after d even if no signal arrives.
// By default no deadline is applied - the trigger waits indefinitely.
// A non-positive duration disables the deadline.
//
// Example:
//
//	WithDeadline(5 * time.Minute)
func WithDeadline(d time.Duration) TriggerOption {
	return func(c *triggerConfig) {
		c.deadline = d
	}
}

// newDefaultTriggerConfig create default config
func newDefaultTriggerConfig() *triggerConfig {
	config := &triggerConfig{}
	WithSysSignal()(config)
	WithDeadline(0)(config)

	return config
}
