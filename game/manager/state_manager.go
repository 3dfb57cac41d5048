package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// GameStats is the end-of-run report.
type GameStats struct {
	RunID           string    `json:"runId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	SimulatedTime   string    `json:"simulatedTime"`
	Ticks           int       `json:"ticks"`
	SpawnCycles     int       `json:"spawnCycles"`
	FoodSpawned     int       `json:"foodSpawned"`
	FoodSkipped     int       `json:"foodSkipped"`
	FoodEatenMoving int       `json:"foodEatenMoving"`
	FoodEatenTouch  int       `json:"foodEatenTouch"`
	Moves           int       `json:"moves"`
	BlockedMoves    int       `json:"blockedMoves"`
	IdleDecisions   int       `json:"idleDecisions"`
}

// StateManager accumulates run counters.
type StateManager struct {
	stats GameStats
}

func NewStateManager(runID string, start time.Time) *StateManager {
	return &StateManager{
		stats: GameStats{RunID: runID, StartTime: start},
	}
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

func (sm *StateManager) RecordSpawnCycle(requested, placed int) {
	sm.stats.SpawnCycles++
	sm.stats.FoodSpawned += placed
	sm.stats.FoodSkipped += requested - placed
}

func (sm *StateManager) RecordMove(ate bool) {
	sm.stats.Moves++
	if ate {
		sm.stats.FoodEatenMoving++
	}
}

func (sm *StateManager) RecordBlocked() {
	sm.stats.BlockedMoves++
}

func (sm *StateManager) RecordIdle() {
	sm.stats.IdleDecisions++
}

func (sm *StateManager) RecordContact() {
	sm.stats.FoodEatenTouch++
}

// Finish stamps the end of the run.
func (sm *StateManager) Finish(end time.Time, simulated time.Duration) {
	sm.stats.EndTime = end
	sm.stats.SimulatedTime = simulated.String()
}

func (sm *StateManager) Stats() GameStats {
	return sm.stats
}

func (sm *StateManager) SaveStats(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	sm.stats = stats
	return nil
}
