package ui

import (
	"fmt"
	"time"

	"alive-grid/game"
	"alive-grid/game/types"
	"alive-grid/ui/framing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around the text overlay
	gridLineAlpha = 90
)

var tileColors = map[types.TileState]rl.Color{
	types.Dead:  rl.DarkGray,
	types.Alive: rl.Lime,
	types.Food:  rl.Red,
}

// Renderer mirrors the grid from tile events and draws it. It holds no
// simulation state of its own beyond that mirror.
type Renderer struct {
	tiles        map[types.Point]types.TileState
	showGrid     bool
	screenWidth  int32
	screenHeight int32
	camera       rl.Camera2D
}

func NewRenderer(showGrid bool) *Renderer {
	return &Renderer{
		tiles:    make(map[types.Point]types.TileState),
		showGrid: showGrid,
	}
}

// TileChanged updates the visual mirror; it is registered as a game sink.
func (r *Renderer) TileChanged(ev types.TileEvent) {
	if ev.To == types.Empty {
		delete(r.tiles, ev.Pos)
		return
	}
	r.tiles[ev.Pos] = ev.To
}

// Tiles returns the number of visible tiles.
func (r *Renderer) Tiles() int {
	return len(r.tiles)
}

func (r *Renderer) UpdateDimensions(g *game.Game) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	size := g.Grid.Size()
	cell := g.Grid.CellSize()
	origin := g.Grid.Origin()
	view := framing.Fit(origin.X, origin.Y,
		float64(size.Width)*cell, float64(size.Height)*cell,
		float64(r.screenWidth), float64(r.screenHeight))

	// World y grows upward, screen y downward.
	r.camera = rl.Camera2D{
		Offset: rl.NewVector2(float32(r.screenWidth)/2, float32(r.screenHeight)/2),
		Target: rl.NewVector2(float32(view.CenterX), float32(-view.CenterY)),
		Zoom:   float32(view.Zoom(float64(r.screenHeight))),
	}
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions(g)
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode2D(r.camera)
	cell := float32(g.Grid.CellSize())
	origin := g.Grid.Origin()
	for p, s := range r.tiles {
		color, ok := tileColors[s]
		if !ok {
			continue
		}
		x := float32(origin.X) + float32(p.X)*cell
		y := float32(origin.Y) + float32(p.Y)*cell
		rl.DrawRectangleRec(rl.NewRectangle(x, -(y+cell), cell, cell), color)
	}
	if r.showGrid {
		r.drawGridLines(g)
	}
	rl.EndMode2D()

	r.drawStatsPanel(g)
	rl.EndDrawing()
}

func (r *Renderer) drawGridLines(g *game.Game) {
	size := g.Grid.Size()
	lo, hi := g.Grid.Bounds()
	cell := g.Grid.CellSize()
	color := rl.Color{R: 255, G: 255, B: 255, A: gridLineAlpha}

	for x := 0; x <= size.Width; x++ {
		wx := float32(lo.X + float64(x)*cell)
		rl.DrawLineV(rl.NewVector2(wx, float32(-lo.Y)), rl.NewVector2(wx, float32(-hi.Y)), color)
	}
	for y := 0; y <= size.Height; y++ {
		wy := float32(-(lo.Y + float64(y)*cell))
		rl.DrawLineV(rl.NewVector2(float32(lo.X), wy), rl.NewVector2(float32(hi.X), wy), color)
	}
}

func (r *Renderer) drawStatsPanel(g *game.Game) {
	fontSize := r.screenHeight / 45
	if fontSize < 10 {
		fontSize = 10
	}
	lineHeight := fontSize + 4
	x, y := int32(borderPadding), int32(borderPadding)

	stats := g.Counters()
	untilSpawn := g.Grid.NextSpawnTime() - g.Now()
	if untilSpawn < 0 {
		untilSpawn = 0
	}
	lines := []string{
		fmt.Sprintf("Run %.8s  seed %d", g.ID, g.Seed),
		fmt.Sprintf("Agent: (%d, %d)", g.Agent.Position().X, g.Agent.Position().Y),
		fmt.Sprintf("Food: %d  next spawn in %s", g.Grid.Count(types.Food), untilSpawn.Truncate(100*time.Millisecond)),
		fmt.Sprintf("Moves: %d  blocked: %d", stats.Moves, stats.BlockedMoves),
		fmt.Sprintf("Eaten: %d moving, %d on contact", stats.FoodEatenMoving, stats.FoodEatenTouch),
	}
	for _, line := range lines {
		rl.DrawText(line, x, y, fontSize, rl.White)
		y += lineHeight
	}
}
