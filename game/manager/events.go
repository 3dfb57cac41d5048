package manager

import "alive-grid/game/types"

// TileSink receives every cell mutation made by the GridManager.
type TileSink interface {
	TileChanged(ev types.TileEvent)
}

// SinkFunc adapts a function to TileSink.
type SinkFunc func(ev types.TileEvent)

func (f SinkFunc) TileChanged(ev types.TileEvent) {
	f(ev)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []TileSink

func (m MultiSink) TileChanged(ev types.TileEvent) {
	for _, s := range m {
		if s != nil {
			s.TileChanged(ev)
		}
	}
}

// EventQueue is a FIFO TileSink drained by its consumer.
type EventQueue struct {
	items []types.TileEvent
}

func (q *EventQueue) TileChanged(ev types.TileEvent) {
	q.Push(ev)
}

// Push adds an event.
func (q *EventQueue) Push(ev types.TileEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, ev)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []types.TileEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
