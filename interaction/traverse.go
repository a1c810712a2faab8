package interaction

import (
	"github.com/Ramsolanki/Chart.js/element"
	"github.com/Ramsolanki/Chart.js/model"
)

// Handler receives each candidate element with its dataset and data index.
type Handler func(el element.Element, datasetIndex, index int)

// evaluateVisible scans every element of every visible dataset, skipping
// missing, skipped and hidden data points.
func evaluateVisible(c Chart, handler Handler) {
	for _, meta := range c.SortedVisibleDatasetMetas() {
		for i, el := range meta.Elements {
			if el == nil || el.Skip() || meta.DataHidden(i) {
				continue
			}
			handler(el, meta.Index, i)
		}
	}
}

// evaluateInRange scans only the index range the search optimizer considers
// reachable from pos along axis. For AxisXY no restriction applies and every
// dataset is scanned in full.
func evaluateInRange(c Chart, axis model.Axis, pos model.Point, handler Handler, intersect bool) {
	value := pos.X
	if axis == model.AxisY {
		value = pos.Y
	}
	for _, meta := range c.SortedVisibleDatasetMetas() {
		r := searchRange(meta, axis, value, intersect)
		for i := r.Lo; i <= r.Hi; i++ {
			el := meta.Elements[i]
			if el == nil || el.Skip() || meta.DataHidden(i) {
				continue
			}
			handler(el, meta.Index, i)
		}
	}
}
