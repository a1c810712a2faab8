package interaction

import (
	"github.com/Ramsolanki/Chart.js/chart"
	"github.com/Ramsolanki/Chart.js/model"
)

// Chart is the capability the engine consumes. *chart.Chart satisfies it.
type Chart interface {
	SortedVisibleDatasetMetas() []*chart.Meta
	DatasetMeta(index int) *chart.Meta
	ChartArea() model.Rect
}

// Event is the tagged union of inputs a mode accepts: either a raw platform
// event still in platform coordinates, or a position already resolved into
// chart-local pixels.
type Event interface {
	isEvent()
}

// NormalizedEvent carries a pre-resolved chart-local position. Modes use it
// verbatim.
type NormalizedEvent struct {
	Position model.Point
}

func (NormalizedEvent) isEvent() {}

// RawEvent is a platform pointer/touch event. Modes hand it to a Normalizer
// to obtain chart-local coordinates.
type RawEvent struct {
	Type    string
	OffsetX float64
	OffsetY float64
}

func (RawEvent) isEvent() {}

// Normalizer converts a raw platform event into chart-local coordinates.
// It is the platform/DOM collaborator; the engine never implements one
// beyond the offset-passthrough default.
type Normalizer func(ev RawEvent, c Chart) model.Point

// DefaultNormalizer maps a raw event's offset coordinates verbatim.
func DefaultNormalizer(ev RawEvent, _ Chart) model.Point {
	return model.Point{X: ev.OffsetX, Y: ev.OffsetY}
}

// ResolvePosition turns an event into a chart-local position. A nil
// normalizer falls back to DefaultNormalizer.
func ResolvePosition(ev Event, c Chart, normalize Normalizer) model.Point {
	switch e := ev.(type) {
	case NormalizedEvent:
		return e.Position
	case RawEvent:
		if normalize == nil {
			normalize = DefaultNormalizer
		}
		return normalize(e, c)
	default:
		return model.Point{}
	}
}
