package types

import "fmt"

// TileState is the kind of tile occupying a cell. The zero value is an empty cell.
type TileState uint8

const (
	Empty TileState = iota
	Dead
	Alive
	Food
)

func (s TileState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Food:
		return "food"
	default:
		return fmt.Sprintf("TileState(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known kinds, Empty included.
func (s TileState) Valid() bool {
	return s <= Food
}

// TileEvent describes one cell mutation for the presentation layer.
// To == Empty means the tile was destroyed.
type TileEvent struct {
	Pos  Point
	From TileState
	To   TileState
}

func (e TileEvent) String() string {
	return fmt.Sprintf("(%d,%d) %s->%s", e.Pos.X, e.Pos.Y, e.From, e.To)
}
