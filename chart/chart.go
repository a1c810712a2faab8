package chart

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Ramsolanki/Chart.js/element"
	"github.com/Ramsolanki/Chart.js/model"
)

// Scale describes the index scale a dataset is ordered along.
type Scale struct {
	// Axis is the chart axis the scale maps data indices onto.
	Axis model.Axis

	// ReversePixels is set when the pixel mapping is inverted, so element
	// coordinates decrease with increasing data index.
	ReversePixels bool
}

// Meta is the per-dataset view consumed by the interaction engine.
type Meta struct {
	// Index is the dataset's position in the chart's dataset list.
	Index int

	// Order overrides drawing order; lower values are traversed first.
	Order int

	// Elements are the rendered data elements in data order. Entries may be
	// nil for data that produced no element.
	Elements []element.Element

	// Sorted is set when Elements are ordered by their index-scale
	// coordinate, enabling the binary-search optimization.
	Sorted bool

	// SharedOptions is set when every element has identical size and shape,
	// enabling range-based search restriction.
	SharedOptions bool

	// IndexScale describes the scale the dataset is indexed along.
	IndexScale *Scale

	// Hidden removes the whole dataset from traversal (legend toggle).
	Hidden bool

	hiddenData *roaring.Bitmap
}

// HideData hides the datum at index i (single-slice legend toggles).
func (m *Meta) HideData(i int) {
	if i < 0 {
		return
	}
	if m.hiddenData == nil {
		m.hiddenData = roaring.New()
	}
	m.hiddenData.Add(uint32(i))
}

// ShowData makes the datum at index i visible again.
func (m *Meta) ShowData(i int) {
	if m.hiddenData != nil && i >= 0 {
		m.hiddenData.Remove(uint32(i))
	}
}

// ToggleDataVisibility flips the visibility of the datum at index i.
func (m *Meta) ToggleDataVisibility(i int) {
	if m.DataHidden(i) {
		m.ShowData(i)
	} else {
		m.HideData(i)
	}
}

// DataHidden reports whether the datum at index i is hidden.
func (m *Meta) DataHidden(i int) bool {
	return m.hiddenData != nil && i >= 0 && m.hiddenData.Contains(uint32(i))
}

// ElementAt returns the element at index i if it exists and is neither
// skipped nor hidden.
func (m *Meta) ElementAt(i int) (element.Element, bool) {
	if i < 0 || i >= len(m.Elements) {
		return nil, false
	}
	el := m.Elements[i]
	if el == nil || el.Skip() || m.DataHidden(i) {
		return nil, false
	}
	return el, true
}

// Chart is a minimal chart-state holder satisfying the capability the
// interaction engine consumes.
type Chart struct {
	area  model.Rect
	metas []*Meta
}

// New creates a chart over the given plottable area.
func New(area model.Rect, metas ...*Meta) *Chart {
	return &Chart{area: area, metas: metas}
}

// ChartArea returns the plottable region in chart-local coordinates.
func (c *Chart) ChartArea() model.Rect { return c.area }

// DatasetMeta returns the meta for the given dataset index, or nil.
func (c *Chart) DatasetMeta(index int) *Meta {
	for _, m := range c.metas {
		if m.Index == index {
			return m
		}
	}
	return nil
}

// SortedVisibleDatasetMetas returns the visible datasets ordered by Order,
// then dataset index.
func (c *Chart) SortedVisibleDatasetMetas() []*Meta {
	out := make([]*Meta, 0, len(c.metas))
	for _, m := range c.metas {
		if !m.Hidden {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// SetDatasetVisibility shows or hides a whole dataset.
func (c *Chart) SetDatasetVisibility(index int, visible bool) {
	if m := c.DatasetMeta(index); m != nil {
		m.Hidden = !visible
	}
}
