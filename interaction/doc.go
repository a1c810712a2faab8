// Package interaction resolves which data elements are hit for a pointer
// position on a rendered chart.
//
// Six selection modes share one traversal primitive: position normalization,
// an optional binary-search restriction over sorted datasets, axis-aware
// distance and a per-mode selection policy. Every query is a pure read over
// the chart snapshot; degenerate inputs (empty chart, position outside the
// chart area, all data skipped) yield an empty result, never an error.
//
// # Modes
//
//   - ModeIndex: elements of every dataset sharing the matched data index
//   - ModeDataset: every element of the matched dataset
//   - ModePoint: elements geometrically containing the position
//   - ModeNearest: element(s) with minimal center distance, ties kept
//   - ModeX / ModeY: elements whose axis range contains the position
//
// # Usage
//
//	ev := interaction.NormalizedEvent{Position: model.Point{X: 21, Y: 40}}
//	matches := interaction.NearestMode(chart, ev, interaction.Options{})
package interaction
