package chartjs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsolanki/Chart.js/chart"
	"github.com/Ramsolanki/Chart.js/element"
	"github.com/Ramsolanki/Chart.js/interaction"
	"github.com/Ramsolanki/Chart.js/model"
)

func testChart() *chart.Chart {
	els := []element.Element{
		&element.Point{X: 10, Y: 40, Radius: 3, HitRadius: 1},
		&element.Point{X: 20, Y: 40, Radius: 3, HitRadius: 1},
		&element.Point{X: 30, Y: 40, Radius: 3, HitRadius: 1},
	}
	meta := &chart.Meta{
		Index:         0,
		Elements:      els,
		Sorted:        true,
		SharedOptions: true,
		IndexScale:    &chart.Scale{Axis: model.AxisX},
	}
	return chart.New(model.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}, meta)
}

func TestResolverResolve(t *testing.T) {
	ctx := context.Background()
	r := NewResolver()
	c := testChart()

	ev := interaction.NormalizedEvent{Position: model.Point{X: 21, Y: 40}}
	matches, err := r.Resolve(ctx, interaction.ModeNearest, c, ev, interaction.Options{Axis: model.AxisX})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Index)
}

func TestResolverUnknownMode(t *testing.T) {
	r := NewResolver()
	c := testChart()

	_, err := r.Resolve(context.Background(), "bogus", c, interaction.NormalizedEvent{}, interaction.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestResolverCustomNormalizer(t *testing.T) {
	// Platform coordinates are offset by (100, 100) from chart space.
	shift := func(ev interaction.RawEvent, _ interaction.Chart) model.Point {
		return model.Point{X: ev.OffsetX - 100, Y: ev.OffsetY - 100}
	}
	r := NewResolver(WithNormalizer(shift))
	c := testChart()

	ev := interaction.RawEvent{Type: "click", OffsetX: 121, OffsetY: 140}
	matches, err := r.Resolve(context.Background(), interaction.ModeNearest, c, ev, interaction.Options{Axis: model.AxisX})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Index)
}

func TestResolverRegisterMode(t *testing.T) {
	r := NewResolver()
	c := testChart()

	none := func(interaction.Chart, interaction.Event, interaction.Options) []interaction.Match {
		return nil
	}
	r.RegisterMode("none", none)

	matches, err := r.Resolve(context.Background(), "none", c, interaction.NormalizedEvent{}, interaction.Options{})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolverMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	r := NewResolver(WithMetricsCollector(mc))
	c := testChart()

	ev := interaction.NormalizedEvent{Position: model.Point{X: 21, Y: 40}}
	_, err := r.Resolve(context.Background(), interaction.ModeNearest, c, ev, interaction.Options{})
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), interaction.ModeNearest, c, ev, interaction.Options{})
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), interaction.ModePoint, c, ev, interaction.Options{})
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.ResolveCount)
	assert.Equal(t, int64(2), stats.ResolveByMode[string(interaction.ModeNearest)])
	assert.Equal(t, int64(1), stats.ResolveByMode[string(interaction.ModePoint)])
	assert.Equal(t, int64(3), stats.ResolveHits)
}

func TestResolveAll(t *testing.T) {
	r := NewResolver()
	c := testChart()

	events := []interaction.Event{
		interaction.NormalizedEvent{Position: model.Point{X: 11, Y: 40}},
		interaction.NormalizedEvent{Position: model.Point{X: 21, Y: 40}},
		interaction.NormalizedEvent{Position: model.Point{X: 200, Y: 0}}, // outside area
	}
	results, err := r.ResolveAll(context.Background(), interaction.ModeNearest, c, events, interaction.Options{Axis: model.AxisX})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Len(t, results[0], 1)
	assert.Equal(t, 0, results[0][0].Index)
	require.Len(t, results[1], 1)
	assert.Equal(t, 1, results[1][0].Index)
	assert.Empty(t, results[2])
}

func TestResolveAllUnknownMode(t *testing.T) {
	r := NewResolver()
	c := testChart()

	events := []interaction.Event{interaction.NormalizedEvent{}}
	_, err := r.ResolveAll(context.Background(), "bogus", c, events, interaction.Options{})
	assert.ErrorIs(t, err, ErrUnknownMode)
}
