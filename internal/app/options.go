package app

import (
	"io"
	"time"

	logAdapter "github.com/bft-labs/stringsaver/internal/adapters/log"
	"github.com/bft-labs/stringsaver/internal/ports"
)

// Option configures optional behavior of a Saver.
type Option func(*options)

type options struct {
	out         io.Writer
	logger      ports.Logger
	now         func() time.Time
	latestFirst bool
}

func defaultOptions() options {
	return options{
		out:         io.Discard,
		logger:      logAdapter.NewNoopLogger(),
		now:         time.Now,
		latestFirst: true,
	}
}

// WithOutput sets where the result lines are written.
// If not provided, output is discarded.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the time source used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLatestFirst controls whether the previous-value lookup is ordered by
// timestamp, newest first. When false the store's natural order is used.
func WithLatestFirst(enabled bool) Option {
	return func(o *options) {
		o.latestFirst = enabled
	}
}
