package chartjs

import (
	"context"
	"fmt"
	"time"

	"github.com/Ramsolanki/Chart.js/chart"
	"github.com/Ramsolanki/Chart.js/interaction"
)

// Compile-time check that the chart state satisfies the engine capability.
var _ interaction.Chart = (*chart.Chart)(nil)

// Resolver dispatches interaction queries to the registered selection
// policies, adding structured logging and metrics around the core.
//
// The zero-cost path is the interaction package itself; use a Resolver when
// modes are selected by name at runtime (configuration-driven tooltips) or
// when observability is wanted.
type Resolver struct {
	normalizer interaction.Normalizer
	metrics    MetricsCollector
	logger     *Logger
	modes      map[interaction.Mode]interaction.ModeFunc
}

// NewResolver creates a Resolver with the built-in mode registry.
func NewResolver(optFns ...Option) *Resolver {
	o := applyOptions(optFns)

	modes := make(map[interaction.Mode]interaction.ModeFunc, len(interaction.Modes))
	for name, fn := range interaction.Modes {
		modes[name] = fn
	}

	return &Resolver{
		normalizer: o.normalizer,
		metrics:    o.metricsCollector,
		logger:     o.logger,
		modes:      modes,
	}
}

// RegisterMode adds or replaces a selection policy under the given name.
// Built-in names may be overridden.
func (r *Resolver) RegisterMode(name interaction.Mode, fn interaction.ModeFunc) {
	if fn != nil {
		r.modes[name] = fn
	}
}

// Resolve runs the named selection policy for ev against c.
//
// Degenerate inputs (empty chart, position outside the chart area) yield an
// empty, nil-error result; the only failure is an unregistered mode name.
func (r *Resolver) Resolve(ctx context.Context, mode interaction.Mode, c interaction.Chart, ev interaction.Event, opts interaction.Options) ([]interaction.Match, error) {
	fn, ok := r.modes[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	// Pre-resolve raw events so the configured normalizer applies uniformly
	// to every policy.
	if raw, isRaw := ev.(interaction.RawEvent); isRaw {
		ev = interaction.NormalizedEvent{Position: r.normalizer(raw, c)}
	}

	start := time.Now()
	matches := fn(c, ev, opts)
	r.metrics.RecordResolve(string(mode), len(matches), time.Since(start))
	r.logger.LogResolve(ctx, string(mode), len(matches))

	return matches, nil
}
