package chartjs

import (
	"log/slog"

	"github.com/Ramsolanki/Chart.js/interaction"
)

type options struct {
	normalizer       interaction.Normalizer
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Resolver behavior.
type Option func(*options)

// WithNormalizer configures the platform collaborator that converts raw
// events into chart-local coordinates.
//
// If nil is passed, interaction.DefaultNormalizer is used.
func WithNormalizer(n interaction.Normalizer) Option {
	return func(o *options) {
		o.normalizer = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// resolve operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for resolve operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		normalizer:       interaction.DefaultNormalizer,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
