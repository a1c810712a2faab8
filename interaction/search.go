package interaction

import (
	"sort"

	"github.com/Ramsolanki/Chart.js/chart"
	"github.com/Ramsolanki/Chart.js/element"
	"github.com/Ramsolanki/Chart.js/model"
)

// Range is an inclusive index interval; Hi < Lo denotes the empty range.
type Range struct {
	Lo int
	Hi int
}

func fullRange(n int) Range {
	return Range{Lo: 0, Hi: n - 1}
}

// axisKey returns the element's center coordinate along axis.
func axisKey(el element.Element, axis model.Axis) float64 {
	p := el.CenterPoint()
	if axis == model.AxisY {
		return p.Y
	}
	return p.X
}

// keyAt returns the sort key for index i. Nil entries (data that produced no
// element) borrow the key of the nearest non-nil entry at or before i, or
// after i for a leading nil run, which keeps the key sequence monotonic.
func keyAt(elements []element.Element, i int, axis model.Axis) float64 {
	for j := i; j >= 0; j-- {
		if elements[j] != nil {
			return axisKey(elements[j], axis)
		}
	}
	for j := i + 1; j < len(elements); j++ {
		if elements[j] != nil {
			return axisKey(elements[j], axis)
		}
	}
	return 0
}

// widenPastNil grows a bracketed range whose edges landed on nil entries
// until each edge reaches a non-nil element, so a nil hole never hides the
// true bracketing neighbor from the scan.
func widenPastNil(elements []element.Element, r Range) Range {
	for r.Lo > 0 && elements[r.Lo] == nil {
		r.Lo--
	}
	for r.Hi < len(elements)-1 && elements[r.Hi] == nil {
		r.Hi++
	}
	return r
}

// lookupFunc brackets a target value in a sorted element sequence.
type lookupFunc func(elements []element.Element, axis model.Axis, value float64) Range

// lookupByKey returns the tightest index range around value for elements
// sorted ascending along axis. Exact matches span all ties; otherwise the
// range holds the two neighbors bracketing value, so a nearest-neighbor scan
// over it never misses the closest element.
func lookupByKey(elements []element.Element, axis model.Axis, value float64) Range {
	n := len(elements)
	lo := sort.Search(n, func(i int) bool { return keyAt(elements, i, axis) >= value })
	hi := sort.Search(n, func(i int) bool { return keyAt(elements, i, axis) > value })
	if lo < hi {
		return widenPastNil(elements, Range{Lo: lo, Hi: hi - 1})
	}
	return widenPastNil(elements, Range{Lo: max(lo-1, 0), Hi: min(lo, n-1)})
}

// rlookupByKey is lookupByKey for elements sorted descending along axis
// (reversed pixel mapping).
func rlookupByKey(elements []element.Element, axis model.Axis, value float64) Range {
	n := len(elements)
	lo := sort.Search(n, func(i int) bool { return keyAt(elements, i, axis) <= value })
	hi := sort.Search(n, func(i int) bool { return keyAt(elements, i, axis) < value })
	if lo < hi {
		return widenPastNil(elements, Range{Lo: lo, Hi: hi - 1})
	}
	return widenPastNil(elements, Range{Lo: max(lo-1, 0), Hi: min(lo, n-1)})
}

// searchRange computes the minimal contiguous index range of meta's elements
// that could match a query at value along axis.
//
// The binary-search restriction applies only when the dataset is sorted
// along its index scale and that scale is the query axis. For intersect
// queries it additionally needs uniform element proportions and a reported
// spread; failing that it degrades to the exact-value lookup, which can
// under-cover non-uniform element sizes. Anything else falls back to the
// full range.
func searchRange(meta *chart.Meta, axis model.Axis, value float64, intersect bool) Range {
	n := len(meta.Elements)
	iScale := meta.IndexScale
	if iScale == nil || axis != iScale.Axis || !meta.Sorted || n == 0 {
		return fullRange(n)
	}

	lookup := lookupFunc(lookupByKey)
	if iScale.ReversePixels {
		lookup = rlookupByKey
	}

	if !intersect {
		return lookup(meta.Elements, axis, value)
	}

	if meta.SharedOptions && meta.Elements[0] != nil {
		if spread, ok := meta.Elements[0].Range(axis); ok && spread > 0 {
			// Issue the two lookups in scale order: on a reversed scale the
			// high value sits at the low-index side, so the Lo/Hi union
			// below stays a superset of the true matches.
			first, second := value-spread, value+spread
			if iScale.ReversePixels {
				first, second = second, first
			}
			start := lookup(meta.Elements, axis, first)
			end := lookup(meta.Elements, axis, second)
			return Range{Lo: start.Lo, Hi: end.Hi}
		}
	}

	return lookup(meta.Elements, axis, value)
}
