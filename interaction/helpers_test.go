package interaction

import (
	"github.com/Ramsolanki/Chart.js/chart"
	"github.com/Ramsolanki/Chart.js/element"
	"github.com/Ramsolanki/Chart.js/model"
)

// pointsMeta builds a sorted, shared-options dataset of point elements at
// the given x coordinates, all on one horizontal line.
func pointsMeta(index int, y float64, xs ...float64) *chart.Meta {
	els := make([]element.Element, len(xs))
	for i, x := range xs {
		els[i] = &element.Point{X: x, Y: y, Radius: 3, HitRadius: 1}
	}
	return &chart.Meta{
		Index:         index,
		Elements:      els,
		Sorted:        true,
		SharedOptions: true,
		IndexScale:    &chart.Scale{Axis: model.AxisX},
	}
}

func testChart(metas ...*chart.Meta) *chart.Chart {
	return chart.New(model.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}, metas...)
}

func at(p model.Point) Event {
	return NormalizedEvent{Position: p}
}

func indicesOf(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
