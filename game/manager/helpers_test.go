package manager

import (
	"testing"

	"alive-grid/game/types"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays vals in order, wrapping around, each reduced mod n.
type scriptedRand struct {
	vals  []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		r.calls++
		return 0
	}
	v := r.vals[r.calls%len(r.vals)] % n
	r.calls++
	return v
}

func newTestGrid(t *testing.T, w, h int, rng types.RandomSource, sink TileSink) *GridManager {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{}
	}
	gm, err := NewGridManager(GridConfig{Width: w, Height: h, CellSize: 1}, rng, sink)
	require.NoError(t, err)
	return gm
}
