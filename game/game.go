package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"alive-grid/game/clock"
	"alive-grid/game/config"
	"alive-grid/game/entity"
	"alive-grid/game/manager"
	"alive-grid/game/types"

	"github.com/google/uuid"
)

// ErrNeedsManualClock is returned by Run when the game is driven by a wall clock.
var ErrNeedsManualClock = errors.New("game: Run requires a manual clock")

type Option func(*Game)

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

func WithClock(c clock.Clock) Option {
	return func(g *Game) { g.clock = c }
}

func WithRandom(r types.RandomSource) Option {
	return func(g *Game) { g.rng = r }
}

// WithSink registers a presentation sink. It sees every mutation, the
// initial fill included.
func WithSink(s manager.TileSink) Option {
	return func(g *Game) { g.sinks = append(g.sinks, s) }
}

// Report summarizes one Update pass.
type Report struct {
	Now      time.Duration
	Contacts []types.Point
	Spawned  bool
	Placed   int
	Decision entity.Decision
}

type Game struct {
	ID     string
	Config config.Config
	Seed   uint64
	Grid   *manager.GridManager
	Agent  *entity.Agent

	collisions *manager.CollisionManager
	state      *manager.StateManager
	clock      clock.Clock
	rng        types.RandomSource
	sinks      manager.MultiSink
	log        *slog.Logger
}

// NewGame builds the grid, places the agent and arms both timers.
func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		ID:     uuid.New().String(),
		Config: cfg,
		Seed:   cfg.Seed,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if g.clock == nil {
		g.clock = clock.NewReal()
	}
	if g.rng == nil {
		g.rng, g.Seed = NewRandom(cfg.Seed)
	}

	grid, err := manager.NewGridManager(manager.GridConfig{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		CellSize: cfg.Grid.CellSize,
		Origin:   cfg.OriginVec(),
	}, g.rng, g.sinks)
	if err != nil {
		return nil, err
	}
	g.Grid = grid

	spawn := grid.PlaceInitialAgent()
	g.Agent = entity.NewAgent(grid, grid.CellOrigin(spawn), cfg.Agent.MoveInterval)
	g.collisions = manager.NewCollisionManager(grid)
	g.state = manager.NewStateManager(g.ID, time.Now())

	now := g.clock.Now()
	grid.ScheduleSpawn(now + cfg.Spawn.Cycle)
	g.Agent.Schedule(now + cfg.Agent.MoveInterval)

	g.log.Info("simulation started",
		"run", g.ID,
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"seed", g.Seed,
		"agent", spawn)
	return g, nil
}

// Update runs one scheduling pass: contacts, then the spawn cycle, then the
// agent decision.
func (g *Game) Update() Report {
	now := g.clock.Now()
	rep := Report{Now: now}
	g.state.RecordTick()

	extent := g.Config.Agent.ContactExtent * g.Grid.CellSize()
	for _, p := range g.collisions.Contacts(g.Grid.ToWorld(g.Agent.Position()), extent) {
		if g.Agent.OnFoodContact(p) {
			rep.Contacts = append(rep.Contacts, p)
			g.state.RecordContact()
			g.log.Debug("food eaten on contact", "at", p)
		}
	}

	rep.Spawned, rep.Placed = g.Grid.Tick(now, g.Config.Spawn.Cycle, g.Config.Spawn.PerCycle)
	if rep.Spawned {
		g.state.RecordSpawnCycle(g.Config.Spawn.PerCycle, rep.Placed)
		g.log.Info("spawn cycle",
			"requested", g.Config.Spawn.PerCycle,
			"placed", rep.Placed,
			"food", g.Grid.Count(types.Food))
	}

	rep.Decision = g.Agent.Tick(now)
	switch rep.Decision {
	case entity.Moved:
		ate := g.Agent.AteOnLastMove()
		g.state.RecordMove(ate)
		g.log.Debug("agent moved", "to", g.Agent.Position(), "ate", ate)
	case entity.Blocked:
		g.state.RecordBlocked()
		g.log.Debug("agent move blocked", "at", g.Agent.Position())
	case entity.NoTarget:
		g.state.RecordIdle()
	}
	return rep
}

// Run drives ticks fixed steps on a manual clock.
func (g *Game) Run(ctx context.Context, ticks int, step time.Duration) error {
	mc, ok := g.clock.(*clock.Manual)
	if !ok {
		return ErrNeedsManualClock
	}
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		mc.Advance(step)
		g.Update()
	}
	return nil
}

// CheckInvariants verifies that exactly one cell is Alive and that it is
// the agent's cell.
func (g *Game) CheckInvariants() error {
	alive := g.Grid.Find(types.Alive)
	if len(alive) != 1 {
		return fmt.Errorf("expected exactly one alive cell, found %d", len(alive))
	}
	if pos := g.Agent.Position(); alive[0] != pos {
		return fmt.Errorf("alive cell %v does not match agent position %v", alive[0], pos)
	}
	var bad error
	g.Grid.Each(func(p types.Point, s types.TileState) {
		if bad == nil && !s.Valid() {
			bad = fmt.Errorf("cell %v holds unknown state %d", p, uint8(s))
		}
	})
	return bad
}

func (g *Game) Now() time.Duration {
	return g.clock.Now()
}

// Counters returns the running counters without stamping an end time.
func (g *Game) Counters() manager.GameStats {
	return g.state.Stats()
}

// Stats stamps the end of the run and returns the report.
func (g *Game) Stats() manager.GameStats {
	g.state.Finish(time.Now(), g.clock.Now())
	return g.state.Stats()
}

func (g *Game) SaveStats(path string) error {
	g.state.Finish(time.Now(), g.clock.Now())
	return g.state.SaveStats(path)
}
