package interaction

import (
	"math"

	"github.com/Ramsolanki/Chart.js/element"
	"github.com/Ramsolanki/Chart.js/model"
)

// Mode names a selection policy.
type Mode string

const (
	ModeIndex   Mode = "index"
	ModeDataset Mode = "dataset"
	ModePoint   Mode = "point"
	ModeNearest Mode = "nearest"
	ModeX       Mode = "x"
	ModeY       Mode = "y"
)

// Options tunes a selection mode. A zero Axis (model.AxisDefault) picks the
// mode's default from DefaultAxis.
type Options struct {
	Axis      model.Axis
	Intersect bool
}

func (o Options) axisOr(def model.Axis) model.Axis {
	if o.Axis == model.AxisDefault {
		return def
	}
	return o.Axis
}

// Match is one resolved hit.
type Match struct {
	Element      element.Element
	DatasetIndex int
	Index        int
}

// ModeFunc resolves the elements hit by ev under one selection policy.
type ModeFunc func(c Chart, ev Event, opts Options) []Match

// DefaultAxis is the axis each mode applies when Options.Axis is unset.
var DefaultAxis = map[Mode]model.Axis{
	ModeIndex:   model.AxisX,
	ModeDataset: model.AxisXY,
	ModePoint:   model.AxisXY,
	ModeNearest: model.AxisXY,
	ModeX:       model.AxisX,
	ModeY:       model.AxisY,
}

// Modes is the registry of selection policies by name.
var Modes = map[Mode]ModeFunc{
	ModeIndex:   IndexMode,
	ModeDataset: DatasetMode,
	ModePoint:   PointMode,
	ModeNearest: NearestMode,
	ModeX:       XAxisMode,
	ModeY:       YAxisMode,
}

// getIntersectItems collects the elements whose geometry contains pos,
// restricted to the optimizer's candidate range along axis.
func getIntersectItems(c Chart, pos model.Point, axis model.Axis) []Match {
	var items []Match
	evaluateInRange(c, axis, pos, func(el element.Element, datasetIndex, index int) {
		if el.InRange(pos.X, pos.Y) {
			items = append(items, Match{Element: el, DatasetIndex: datasetIndex, Index: index})
		}
	}, true)
	return items
}

// getNearestItems collects the candidate(s) with minimal center distance to
// pos. Exact distance ties keep every tied candidate. With intersect set,
// only elements containing pos compete.
func getNearestItems(c Chart, pos model.Point, axis model.Axis, intersect bool) []Match {
	metric := MetricForAxis(axis)
	minDistance := math.Inf(1)
	var items []Match
	evaluateInRange(c, axis, pos, func(el element.Element, datasetIndex, index int) {
		if intersect && !el.InRange(pos.X, pos.Y) {
			return
		}
		d := metric(pos, el.CenterPoint())
		if d < minDistance {
			minDistance = d
			items = append(items[:0], Match{Element: el, DatasetIndex: datasetIndex, Index: index})
		} else if d == minDistance {
			items = append(items, Match{Element: el, DatasetIndex: datasetIndex, Index: index})
		}
	}, intersect)
	return items
}

func selectItems(c Chart, pos model.Point, axis model.Axis, intersect bool) []Match {
	if intersect {
		return getIntersectItems(c, pos, axis)
	}
	return getNearestItems(c, pos, axis, false)
}

// IndexMode resolves the data index nearest to (or intersecting) the event
// position, then collects the element at that index from every visible
// dataset.
func IndexMode(c Chart, ev Event, opts Options) []Match {
	pos := ResolvePosition(ev, c, nil)
	if !c.ChartArea().Contains(pos) {
		return nil
	}
	items := selectItems(c, pos, opts.axisOr(DefaultAxis[ModeIndex]), opts.Intersect)
	if len(items) == 0 {
		return nil
	}

	index := items[0].Index
	var out []Match
	for _, meta := range c.SortedVisibleDatasetMetas() {
		if el, ok := meta.ElementAt(index); ok {
			out = append(out, Match{Element: el, DatasetIndex: meta.Index, Index: index})
		}
	}
	return out
}

// DatasetMode resolves the dataset nearest to (or intersecting) the event
// position and returns all of its elements.
func DatasetMode(c Chart, ev Event, opts Options) []Match {
	pos := ResolvePosition(ev, c, nil)
	if !c.ChartArea().Contains(pos) {
		return nil
	}
	items := selectItems(c, pos, opts.axisOr(DefaultAxis[ModeDataset]), opts.Intersect)
	if len(items) == 0 {
		return nil
	}

	meta := c.DatasetMeta(items[0].DatasetIndex)
	if meta == nil {
		return nil
	}
	out := make([]Match, 0, len(meta.Elements))
	for i := range meta.Elements {
		if el, ok := meta.ElementAt(i); ok {
			out = append(out, Match{Element: el, DatasetIndex: meta.Index, Index: i})
		}
	}
	return out
}

// PointMode returns the elements geometrically containing the event
// position. There is no nearest-neighbor fallback.
func PointMode(c Chart, ev Event, opts Options) []Match {
	pos := ResolvePosition(ev, c, nil)
	if !c.ChartArea().Contains(pos) {
		return nil
	}
	return getIntersectItems(c, pos, opts.axisOr(DefaultAxis[ModePoint]))
}

// NearestMode returns the element(s) whose center is closest to the event
// position, keeping all exact ties.
func NearestMode(c Chart, ev Event, opts Options) []Match {
	pos := ResolvePosition(ev, c, nil)
	if !c.ChartArea().Contains(pos) {
		return nil
	}
	return getNearestItems(c, pos, opts.axisOr(DefaultAxis[ModeNearest]), opts.Intersect)
}

// axisRangeItems collects every element whose axis range contains the event
// position. With intersect set, the whole result is discarded unless at
// least one element fully contains the position.
func axisRangeItems(c Chart, pos model.Point, intersect bool, inAxisRange func(element.Element) bool) []Match {
	var items []Match
	intersects := false
	evaluateVisible(c, func(el element.Element, datasetIndex, index int) {
		if inAxisRange(el) {
			items = append(items, Match{Element: el, DatasetIndex: datasetIndex, Index: index})
		}
		if el.InRange(pos.X, pos.Y) {
			intersects = true
		}
	})
	if intersect && !intersects {
		return nil
	}
	return items
}

// XAxisMode returns every element whose horizontal range contains the event
// position.
func XAxisMode(c Chart, ev Event, opts Options) []Match {
	pos := ResolvePosition(ev, c, nil)
	if !c.ChartArea().Contains(pos) {
		return nil
	}
	return axisRangeItems(c, pos, opts.Intersect, func(el element.Element) bool {
		return el.InXRange(pos.X)
	})
}

// YAxisMode returns every element whose vertical range contains the event
// position.
func YAxisMode(c Chart, ev Event, opts Options) []Match {
	pos := ResolvePosition(ev, c, nil)
	if !c.ChartArea().Contains(pos) {
		return nil
	}
	return axisRangeItems(c, pos, opts.Intersect, func(el element.Element) bool {
		return el.InYRange(pos.Y)
	})
}
