package types

import "math"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether p lies inside [0,Width)x[0,Height).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance is the Euclidean distance between two grid coordinates.
func (p Point) Distance(other Point) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Vec2 is a world-space position.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// Game constants
const (
	SpawnAttempts = 10 // Random probes per food placement before it is skipped

	DefaultGridWidth    = 16
	DefaultGridHeight   = 16
	DefaultCellSize     = 1.0
	DefaultSpawnPerTick = 2
)
