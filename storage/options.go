package storage

import (
	"log/slog"

	"github.com/spetersoncode/flagshim/retry"
)

// ErrorPolicy decides whether storage failures reach the caller.
type ErrorPolicy int

const (
	// PolicySwallow reports failures and hides them from the caller. A failed
	// read looks like a cold cache and a failed write looks like success.
	PolicySwallow ErrorPolicy = iota

	// PolicyPropagate reports failures and also returns them as *OpError.
	PolicyPropagate
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger that receives storage diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithEvents sets a channel that receives adapter events.
// Events are sent non-blocking; if the channel is full, events are dropped.
func WithEvents(ch chan<- Event) Option {
	return func(a *Adapter) {
		a.events = ch
	}
}

// WithErrorPolicy sets how storage failures are surfaced.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(a *Adapter) {
		a.policy = p
	}
}

// WithRetry retries primitive calls that fail with a transient error.
// Retries are disabled by default.
func WithRetry(cfg retry.Config) Option {
	return func(a *Adapter) {
		a.retry = cfg
	}
}
