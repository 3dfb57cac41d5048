package game

import (
	"time"

	"alive-grid/game/types"

	"golang.org/x/exp/rand"
)

// NewRandom returns a PCG-backed source. A zero seed is replaced by the
// current time; the seed actually used is returned so runs can be replayed.
func NewRandom(seed uint64) (types.RandomSource, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed)), seed
}
