package manager

import (
	"errors"
	"testing"
	"time"

	"alive-grid/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridManagerRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name  string
		cfg   GridConfig
		field string
	}{
		{"zero_width", GridConfig{Width: 0, Height: 4, CellSize: 1}, "width"},
		{"negative_height", GridConfig{Width: 4, Height: -1, CellSize: 1}, "height"},
		{"zero_cell_size", GridConfig{Width: 4, Height: 4}, "cell_size"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gm, err := NewGridManager(c.cfg, &scriptedRand{}, nil)
			assert.Nil(t, gm)
			var cfgErr *types.ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, c.field, cfgErr.Field)
		})
	}

	_, err := NewGridManager(GridConfig{Width: 1, Height: 1, CellSize: 1}, nil, nil)
	assert.Error(t, err)
}

func TestNewGridManagerFillsDead(t *testing.T) {
	q := &EventQueue{}
	gm := newTestGrid(t, 3, 2, nil, q)

	assert.Equal(t, 6, gm.Count(types.Dead))
	assert.Equal(t, 0, gm.Count(types.Empty))

	events := q.Drain()
	require.Len(t, events, 6)
	for _, ev := range events {
		assert.Equal(t, types.Empty, ev.From)
		assert.Equal(t, types.Dead, ev.To)
	}
	assert.Equal(t, types.Point{X: 0, Y: 0}, events[0].Pos)
	assert.Equal(t, types.Point{X: 0, Y: 1}, events[1].Pos, "fill runs x outer, y inner")
}

func TestPlaceInitialAgent(t *testing.T) {
	q := &EventQueue{}
	gm := newTestGrid(t, 4, 4, &scriptedRand{vals: []int{2, 1}}, q)
	q.Drain()

	p := gm.PlaceInitialAgent()
	assert.Equal(t, types.Pt(2, 1), p)

	s, ok := gm.GetTile(2, 1)
	require.True(t, ok)
	assert.Equal(t, types.Alive, s)
	assert.Equal(t, 1, gm.Count(types.Alive))
	assert.Equal(t, 15, gm.Count(types.Dead))
	assert.Equal(t, []types.TileEvent{{Pos: types.Pt(2, 1), From: types.Dead, To: types.Alive}}, q.Drain())
}

func TestGetTile(t *testing.T) {
	gm := newTestGrid(t, 2, 2, nil, nil)

	for _, p := range []types.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		s, ok := gm.GetTile(p.X, p.Y)
		assert.False(t, ok, "out of bounds %v", p)
		assert.Equal(t, types.Empty, s)
	}

	gm.SetTile(1, 1, types.Empty)
	_, ok := gm.GetTile(1, 1)
	assert.False(t, ok, "empty cell reports no tile")

	gm.SetTile(1, 1, types.Food)
	s, ok := gm.GetTile(1, 1)
	assert.True(t, ok)
	assert.Equal(t, types.Food, s)
}

func TestSetTile(t *testing.T) {
	t.Run("out_of_bounds_panics", func(t *testing.T) {
		gm := newTestGrid(t, 3, 3, nil, nil)
		assert.Panics(t, func() { gm.SetTile(3, 0, types.Food) }, "x == width must not alias the next column")
		assert.Panics(t, func() { gm.SetTile(0, -1, types.Food) })
		assert.Equal(t, 9, gm.Count(types.Dead))
	})

	t.Run("unknown_state_panics", func(t *testing.T) {
		gm := newTestGrid(t, 1, 1, nil, nil)
		assert.Panics(t, func() { gm.SetTile(0, 0, types.TileState(9)) })
	})

	t.Run("no_event_when_unchanged", func(t *testing.T) {
		q := &EventQueue{}
		gm := newTestGrid(t, 1, 1, nil, q)
		q.Drain()
		gm.SetTile(0, 0, types.Dead)
		assert.Zero(t, q.Len())
	})
}

func TestFindIsRowMajor(t *testing.T) {
	gm := newTestGrid(t, 3, 3, nil, nil)
	gm.SetTile(2, 0, types.Food)
	gm.SetTile(0, 2, types.Food)
	gm.SetTile(0, 1, types.Food)

	assert.Equal(t, []types.Point{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 2, Y: 0}}, gm.Find(types.Food))
}

func TestTickFiresOncePerCall(t *testing.T) {
	gm := newTestGrid(t, 4, 4, &scriptedRand{vals: []int{0, 0, 1, 1, 2, 2, 3, 3}}, nil)
	cycle := 10 * time.Second
	gm.ScheduleSpawn(cycle)

	fired, placed := gm.Tick(9*time.Second, cycle, 1)
	assert.False(t, fired)
	assert.Zero(t, placed)
	assert.Equal(t, 0, gm.Count(types.Food))

	fired, placed = gm.Tick(10*time.Second, cycle, 1)
	assert.True(t, fired)
	assert.Equal(t, 1, placed)
	assert.Equal(t, 20*time.Second, gm.NextSpawnTime())

	// A long stall fires a single batch and restarts the cycle from now.
	fired, placed = gm.Tick(95*time.Second, cycle, 1)
	assert.True(t, fired)
	assert.Equal(t, 1, placed)
	assert.Equal(t, 105*time.Second, gm.NextSpawnTime())
	assert.Equal(t, 2, gm.Count(types.Food))
}

func TestTickDoesNotCatchUpAfterStall(t *testing.T) {
	gm := newTestGrid(t, 4, 4, &scriptedRand{vals: []int{0, 0, 1, 1, 2, 2, 3, 3}}, nil)
	cycle := 10 * time.Second
	gm.ScheduleSpawn(cycle)

	batches := 0
	now := 95 * time.Second
	for i := 0; i < 10; i++ {
		if fired, _ := gm.Tick(now, cycle, 1); fired {
			batches++
		}
		now += 100 * time.Millisecond
	}
	assert.Equal(t, 1, batches)
	assert.Equal(t, 1, gm.Count(types.Food))
	assert.Equal(t, 105*time.Second, gm.NextSpawnTime())
}

func TestCoordinateMapping(t *testing.T) {
	gm, err := NewGridManager(GridConfig{Width: 4, Height: 4, CellSize: 2, Origin: types.Vec2{X: 1, Y: 2}}, &scriptedRand{}, nil)
	require.NoError(t, err)

	assert.Equal(t, types.Vec2{X: 2, Y: 3}, gm.ToWorld(types.Pt(0, 0)))
	assert.Equal(t, types.Vec2{X: 8, Y: 5}, gm.ToWorld(types.Pt(3, 1)))

	for _, p := range []types.Point{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: -2, Y: 5}} {
		assert.Equal(t, p, gm.ToGrid(gm.CellOrigin(p)))
	}

	// Cell centers sit on a half and round away from zero.
	assert.Equal(t, types.Pt(1, 1), gm.ToGrid(gm.ToWorld(types.Pt(0, 0))))
	assert.Equal(t, types.Pt(3, 3), gm.ToGrid(gm.ToWorld(types.Pt(2, 2))))
	assert.Equal(t, types.Pt(-1, 0), gm.ToGrid(types.Vec2{X: 0, Y: 2.9}))

	assert.Equal(t, types.Vec2{X: 3, Y: 2}, gm.SnapToGrid(types.Vec2{X: 3.9, Y: 2.2}))

	lo, hi := gm.Bounds()
	assert.Equal(t, types.Vec2{X: 1, Y: 2}, lo)
	assert.Equal(t, types.Vec2{X: 9, Y: 10}, hi)
}
