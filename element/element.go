package element

import (
	"math"

	"github.com/Ramsolanki/Chart.js/model"
)

// Element is the geometry capability of a rendered data element.
//
// Range reports the half-extent of the element along an axis, or false when
// the shape has no meaningful spread on that axis. A Skip element represents
// a null/missing data point and is excluded from every result set.
type Element interface {
	// InRange is the full 2D hit test against chart-local coordinates.
	InRange(x, y float64) bool

	// InXRange reports whether x falls within the element's horizontal extent.
	InXRange(x float64) bool

	// InYRange reports whether y falls within the element's vertical extent.
	InYRange(y float64) bool

	// CenterPoint returns the element's center in chart-local coordinates.
	CenterPoint() model.Point

	// Range returns the half-extent along axis, or false if not applicable.
	Range(axis model.Axis) (float64, bool)

	// Skip reports whether the element stands in for missing data.
	Skip() bool
}

// Compile-time checks that the concrete shapes satisfy the capability.
var (
	_ Element = (*Point)(nil)
	_ Element = (*Bar)(nil)
)

// Point is a circular data point with an extra invisible hit radius.
type Point struct {
	X         float64
	Y         float64
	Radius    float64
	HitRadius float64
	Skipped   bool
}

func (p *Point) hitRange() float64 {
	return p.Radius + p.HitRadius
}

func (p *Point) InRange(x, y float64) bool {
	dx := p.X - x
	dy := p.Y - y
	r := p.hitRange()
	return dx*dx+dy*dy < r*r
}

func (p *Point) InXRange(x float64) bool {
	return math.Abs(p.X-x) < p.hitRange()
}

func (p *Point) InYRange(y float64) bool {
	return math.Abs(p.Y-y) < p.hitRange()
}

func (p *Point) CenterPoint() model.Point {
	return model.Point{X: p.X, Y: p.Y}
}

// Range reports the same spread on both axes; circles are symmetric.
func (p *Point) Range(model.Axis) (float64, bool) {
	return p.hitRange(), true
}

func (p *Point) Skip() bool { return p.Skipped }

// Bar is an axis-aligned rectangle anchored at (X, Y) and extending to Base
// along the value axis. Horizontal flips the roles of the two axes.
type Bar struct {
	X          float64
	Y          float64
	Base       float64
	Width      float64
	Horizontal bool
	Skipped    bool
}

func (b *Bar) bounds() model.Rect {
	half := b.Width / 2
	if b.Horizontal {
		return model.Rect{
			Left:   math.Min(b.X, b.Base),
			Top:    b.Y - half,
			Right:  math.Max(b.X, b.Base),
			Bottom: b.Y + half,
		}
	}
	return model.Rect{
		Left:   b.X - half,
		Top:    math.Min(b.Y, b.Base),
		Right:  b.X + half,
		Bottom: math.Max(b.Y, b.Base),
	}
}

func (b *Bar) InRange(x, y float64) bool {
	r := b.bounds()
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

func (b *Bar) InXRange(x float64) bool {
	r := b.bounds()
	return x >= r.Left && x <= r.Right
}

func (b *Bar) InYRange(y float64) bool {
	r := b.bounds()
	return y >= r.Top && y <= r.Bottom
}

func (b *Bar) CenterPoint() model.Point {
	if b.Horizontal {
		return model.Point{X: (b.X + b.Base) / 2, Y: b.Y}
	}
	return model.Point{X: b.X, Y: (b.Y + b.Base) / 2}
}

// Range reports half the bar width along the index axis and half the bar
// length along the value axis.
func (b *Bar) Range(axis model.Axis) (float64, bool) {
	switch axis {
	case model.AxisX:
		if b.Horizontal {
			return math.Abs(b.X-b.Base) / 2, true
		}
		return b.Width / 2, true
	case model.AxisY:
		if b.Horizontal {
			return b.Width / 2, true
		}
		return math.Abs(b.Y-b.Base) / 2, true
	default:
		return 0, false
	}
}

func (b *Bar) Skip() bool { return b.Skipped }
