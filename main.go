package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"alive-grid/game"
	"alive-grid/game/clock"
	"alive-grid/game/config"
	"alive-grid/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (built-in defaults when empty)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based, overrides the config file)")
	headless := flag.Bool("headless", false, "Run without a window on a simulated clock")
	ticks := flag.Int("ticks", 1000, "Headless: number of scheduling passes")
	step := flag.Duration("step", 100*time.Millisecond, "Headless: simulated time per pass")
	statsPath := flag.String("stats", "", "Write the run report as JSON to this file")
	fps := flag.Int("fps", 60, "Window: target frames per second")
	verbose := flag.Bool("v", false, "Log every agent decision")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	var g *game.Game
	var err error
	if *headless {
		g, err = runHeadless(cfg, logger, *ticks, *step)
	} else {
		g, err = runWindow(cfg, logger, int32(*fps))
	}
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	stats := g.Stats()
	logger.Info("simulation finished",
		"run", stats.RunID,
		"ticks", stats.Ticks,
		"simulated", stats.SimulatedTime,
		"moves", stats.Moves,
		"food_spawned", stats.FoodSpawned,
		"food_eaten", stats.FoodEatenMoving+stats.FoodEatenTouch)

	if *statsPath != "" {
		if err := g.SaveStats(*statsPath); err != nil {
			logger.Error("save stats", "path", *statsPath, "err", err)
			os.Exit(1)
		}
	}
}

func runHeadless(cfg config.Config, logger *slog.Logger, ticks int, step time.Duration) (*game.Game, error) {
	g, err := game.NewGame(cfg, game.WithLogger(logger), game.WithClock(clock.NewManual(0)))
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := g.Run(ctx, ticks, step); err != nil && ctx.Err() == nil {
		return g, err
	}
	return g, g.CheckInvariants()
}

func runWindow(cfg config.Config, logger *slog.Logger, fps int32) (*game.Game, error) {
	rl.InitWindow(1280, 800, "Alive Grid")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(fps)

	renderer := ui.NewRenderer(cfg.Grid.ShowGrid)
	engineTime := clock.Func(func() time.Duration {
		return time.Duration(rl.GetTime() * float64(time.Second))
	})
	g, err := game.NewGame(cfg,
		game.WithLogger(logger),
		game.WithClock(engineTime),
		game.WithSink(renderer))
	if err != nil {
		return nil, err
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		g.Update()
		renderer.Draw(g)
	}
	return g, nil
}
