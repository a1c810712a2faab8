// Package chartjs provides hit-testing and interaction resolution for
// rendered charts.
//
// Given a pointer position and a selection mode, the engine resolves the set
// of (element, dataset, index) triples considered "hit". It backs tooltip
// display, hover highlighting and click handling; what to do with the
// resolved elements is the caller's concern.
//
// # Quick Start
//
//	c := chart.New(model.Rect{Right: 100, Bottom: 100}, meta)
//	r := chartjs.NewResolver()
//	ev := interaction.NormalizedEvent{Position: model.Point{X: 21, Y: 40}}
//	matches, err := r.Resolve(ctx, interaction.ModeNearest, c, ev, interaction.Options{})
//
// The interaction package is usable directly without a Resolver; the
// Resolver adds mode dispatch by name, structured logging, metrics and
// concurrent batch resolution.
//
// # Concurrency
//
// Every query is a pure read over the chart snapshot. Rapid successive
// pointer events may be resolved concurrently; ResolveAll fans a recorded
// event trace out across goroutines.
package chartjs
