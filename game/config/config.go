// Package config loads and validates the simulation settings.
//
// Settings come from a YAML file (optional) layered over Default. They are
// read once at startup and never change while the simulation runs.
package config

import (
	"fmt"
	"os"
	"time"

	"alive-grid/game/types"

	"gopkg.in/yaml.v3"
)

type Origin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Grid struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	Origin   Origin  `yaml:"origin"`
	ShowGrid bool    `yaml:"show_grid"`
}

type Agent struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	// ContactExtent is the half-size of the agent footprint in cell units.
	ContactExtent float64 `yaml:"contact_extent"`
}

type Spawn struct {
	Cycle    time.Duration `yaml:"cycle"`
	PerCycle int           `yaml:"per_cycle"`
}

type Config struct {
	Grid  Grid   `yaml:"grid"`
	Agent Agent  `yaml:"agent"`
	Spawn Spawn  `yaml:"spawn"`
	Seed  uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Grid: Grid{
			Width:    types.DefaultGridWidth,
			Height:   types.DefaultGridHeight,
			CellSize: types.DefaultCellSize,
			ShowGrid: true,
		},
		Agent: Agent{
			MoveInterval:  1500 * time.Millisecond,
			ContactExtent: 0.5,
		},
		Spawn: Spawn{
			Cycle:    24 * time.Second,
			PerCycle: types.DefaultSpawnPerTick,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate returns a *types.ConfigError for the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0:
		return &types.ConfigError{Field: "grid.width", Value: c.Grid.Width, Reason: "must be positive"}
	case c.Grid.Height <= 0:
		return &types.ConfigError{Field: "grid.height", Value: c.Grid.Height, Reason: "must be positive"}
	case c.Grid.CellSize <= 0:
		return &types.ConfigError{Field: "grid.cell_size", Value: c.Grid.CellSize, Reason: "must be positive"}
	case c.Agent.MoveInterval <= 0:
		return &types.ConfigError{Field: "agent.move_interval", Value: c.Agent.MoveInterval, Reason: "must be positive"}
	case c.Agent.ContactExtent < 0:
		return &types.ConfigError{Field: "agent.contact_extent", Value: c.Agent.ContactExtent, Reason: "must not be negative"}
	case c.Spawn.Cycle <= 0:
		return &types.ConfigError{Field: "spawn.cycle", Value: c.Spawn.Cycle, Reason: "must be positive"}
	case c.Spawn.PerCycle < 0:
		return &types.ConfigError{Field: "spawn.per_cycle", Value: c.Spawn.PerCycle, Reason: "must not be negative"}
	}
	return nil
}

// OriginVec returns the grid origin as a world position.
func (c Config) OriginVec() types.Vec2 {
	return types.Vec2{X: c.Grid.Origin.X, Y: c.Grid.Origin.Y}
}
