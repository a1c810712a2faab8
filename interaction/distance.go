package interaction

import (
	"math"

	"github.com/Ramsolanki/Chart.js/model"
)

// MetricFunc measures the distance between two chart-local points.
type MetricFunc func(a, b model.Point) float64

// MetricForAxis returns the distance function restricted to the given axis:
// pure horizontal distance for AxisX, pure vertical for AxisY, Euclidean
// otherwise.
func MetricForAxis(axis model.Axis) MetricFunc {
	switch axis {
	case model.AxisX:
		return func(a, b model.Point) float64 {
			return math.Abs(a.X - b.X)
		}
	case model.AxisY:
		return func(a, b model.Point) float64 {
			return math.Abs(a.Y - b.Y)
		}
	default:
		return func(a, b model.Point) float64 {
			dx := b.X - a.X
			dy := b.Y - a.Y
			return math.Sqrt(dx*dx + dy*dy)
		}
	}
}
