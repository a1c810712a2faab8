package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsolanki/Chart.js/model"
)

func TestPointInRange(t *testing.T) {
	p := &Point{X: 20, Y: 30, Radius: 3, HitRadius: 1}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Center", 20, 30, true},
		{"InsideDiagonal", 22, 32, true},
		{"JustInsideX", 23.9, 30, true},
		{"OnBoundary", 24, 30, false}, // containment is strict
		{"Outside", 25, 30, false},
		{"FarAway", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.InRange(tt.x, tt.y))
		})
	}
}

func TestPointAxisRanges(t *testing.T) {
	p := &Point{X: 20, Y: 30, Radius: 3, HitRadius: 1}

	assert.True(t, p.InXRange(17))
	assert.True(t, p.InXRange(23))
	assert.False(t, p.InXRange(24))
	assert.True(t, p.InYRange(33))
	assert.False(t, p.InYRange(34))

	assert.Equal(t, model.Point{X: 20, Y: 30}, p.CenterPoint())

	spread, ok := p.Range(model.AxisX)
	require.True(t, ok)
	assert.Equal(t, 4.0, spread)
	spread, ok = p.Range(model.AxisY)
	require.True(t, ok)
	assert.Equal(t, 4.0, spread)
}

func TestBarVertical(t *testing.T) {
	// Bar from y=80 (top) down to base y=100, centered at x=50, width 10.
	b := &Bar{X: 50, Y: 80, Base: 100, Width: 10}

	assert.True(t, b.InRange(50, 90))
	assert.True(t, b.InRange(45, 80))
	assert.False(t, b.InRange(44, 90))
	assert.False(t, b.InRange(50, 79))

	assert.True(t, b.InXRange(55))
	assert.False(t, b.InXRange(56))
	assert.True(t, b.InYRange(100))
	assert.False(t, b.InYRange(101))

	assert.Equal(t, model.Point{X: 50, Y: 90}, b.CenterPoint())

	spread, ok := b.Range(model.AxisX)
	require.True(t, ok)
	assert.Equal(t, 5.0, spread)
	spread, ok = b.Range(model.AxisY)
	require.True(t, ok)
	assert.Equal(t, 10.0, spread)

	_, ok = b.Range(model.AxisXY)
	assert.False(t, ok)
}

func TestBarHorizontal(t *testing.T) {
	// Bar from base x=10 to x=60, centered at y=40, width 8.
	b := &Bar{X: 60, Y: 40, Base: 10, Width: 8, Horizontal: true}

	assert.True(t, b.InRange(30, 40))
	assert.True(t, b.InRange(10, 44))
	assert.False(t, b.InRange(30, 45))
	assert.False(t, b.InRange(61, 40))

	assert.Equal(t, model.Point{X: 35, Y: 40}, b.CenterPoint())

	spread, ok := b.Range(model.AxisX)
	require.True(t, ok)
	assert.Equal(t, 25.0, spread)
	spread, ok = b.Range(model.AxisY)
	require.True(t, ok)
	assert.Equal(t, 4.0, spread)
}

func TestSkip(t *testing.T) {
	assert.False(t, (&Point{}).Skip())
	assert.True(t, (&Point{Skipped: true}).Skip())
	assert.True(t, (&Bar{Skipped: true}).Skip())
}
