package manager

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateManagerCounters(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	sm := NewStateManager("run-1", start)

	sm.RecordTick()
	sm.RecordTick()
	sm.RecordSpawnCycle(3, 2)
	sm.RecordSpawnCycle(2, 0)
	sm.RecordMove(false)
	sm.RecordMove(true)
	sm.RecordBlocked()
	sm.RecordIdle()
	sm.RecordContact()
	sm.Finish(start.Add(time.Minute), 90*time.Second)

	got := sm.Stats()
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 2, got.Ticks)
	assert.Equal(t, 2, got.SpawnCycles)
	assert.Equal(t, 2, got.FoodSpawned)
	assert.Equal(t, 3, got.FoodSkipped)
	assert.Equal(t, 2, got.Moves)
	assert.Equal(t, 1, got.FoodEatenMoving)
	assert.Equal(t, 1, got.FoodEatenTouch)
	assert.Equal(t, 1, got.BlockedMoves)
	assert.Equal(t, 1, got.IdleDecisions)
	assert.Equal(t, "1m30s", got.SimulatedTime)
}

func TestStateManagerSaveLoad(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	sm := NewStateManager("run-2", start)
	sm.RecordMove(true)
	sm.Finish(start.Add(time.Second), time.Second)

	path := filepath.Join(t.TempDir(), "nested", "stats.json")
	require.NoError(t, sm.SaveStats(path))

	loaded := NewStateManager("", time.Time{})
	require.NoError(t, loaded.LoadStats(path))
	assert.Equal(t, sm.Stats(), loaded.Stats())
}
