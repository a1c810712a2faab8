package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsolanki/Chart.js/model"
)

func TestResolvePosition(t *testing.T) {
	c := testChart()

	t.Run("Normalized", func(t *testing.T) {
		pos := ResolvePosition(NormalizedEvent{Position: model.Point{X: 3, Y: 4}}, c, nil)
		assert.Equal(t, model.Point{X: 3, Y: 4}, pos)
	})

	t.Run("RawDefault", func(t *testing.T) {
		pos := ResolvePosition(RawEvent{Type: "mousemove", OffsetX: 7, OffsetY: 8}, c, nil)
		assert.Equal(t, model.Point{X: 7, Y: 8}, pos)
	})

	t.Run("RawCustomNormalizer", func(t *testing.T) {
		shift := func(ev RawEvent, _ Chart) model.Point {
			return model.Point{X: ev.OffsetX - 10, Y: ev.OffsetY - 10}
		}
		pos := ResolvePosition(RawEvent{OffsetX: 30, OffsetY: 40}, c, shift)
		assert.Equal(t, model.Point{X: 20, Y: 30}, pos)
	})
}
