package model

import "fmt"

// Axis restricts a query or distance metric to one or both chart axes.
type Axis int

const (
	// AxisDefault lets the selection mode substitute its own default axis.
	AxisDefault Axis = iota
	AxisX
	AxisY
	AxisXY
)

func (a Axis) String() string {
	switch a {
	case AxisDefault:
		return "default"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisXY:
		return "xy"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// Point is a position in chart-local pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle, typically the plottable chart area.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// epsilon absorbs sub-pixel rounding introduced by the renderer.
const epsilon = 0.5

// Contains reports whether p lies inside r, with a half-pixel tolerance
// on every edge.
func (r Rect) Contains(p Point) bool {
	return p.X > r.Left-epsilon && p.X < r.Right+epsilon &&
		p.Y > r.Top-epsilon && p.Y < r.Bottom+epsilon
}
