package learner

import (
	"pong/game"

	"github.com/rs/zerolog/log"
)

// Table maps discretized states to action values. States receive dense
// indices in the order they are first seen; indices are never reused.
type Table struct {
	values   [][game.NumActions]float64
	keys     []game.DiscreteState
	index    map[game.DiscreteState]int
	capacity int
}

func NewTable(capacity int) *Table {
	if capacity <= 0 {
		panic("table capacity must be positive")
	}
	return &Table{
		values:   make([][game.NumActions]float64, 0, capacity),
		keys:     make([]game.DiscreteState, 0, capacity),
		index:    make(map[game.DiscreteState]int, capacity),
		capacity: capacity,
	}
}

// Index returns the row of d, assigning the next free row on first sight.
func (t *Table) Index(d game.DiscreteState) int {
	if i, ok := t.index[d]; ok {
		return i
	}
	i := len(t.values)
	if i == t.capacity {
		log.Warn().Msgf("value table grew past its capacity of %d rows with state %s", t.capacity, d)
	}
	t.index[d] = i
	t.keys = append(t.keys, d)
	t.values = append(t.values, [game.NumActions]float64{})
	return i
}

// Lookup is Index without assignment.
func (t *Table) Lookup(d game.DiscreteState) (int, bool) {
	i, ok := t.index[d]
	return i, ok
}

func (t *Table) Get(i int, a game.Action) float64 {
	return t.values[i][a]
}

func (t *Table) Set(i int, a game.Action, value float64) {
	t.values[i][a] = value
}

func (t *Table) Row(i int) [game.NumActions]float64 {
	return t.values[i]
}

func (t *Table) Key(i int) game.DiscreteState {
	return t.keys[i]
}

// Len is the number of states indexed so far.
func (t *Table) Len() int {
	return len(t.values)
}

func (t *Table) Cap() int {
	return t.capacity
}
