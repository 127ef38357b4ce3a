package learner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pong/game"
	"pong/meta"
)

type snapshot struct {
	Capacity int        `json:"capacity"`
	States   []stateRow `json:"states"` // In index order
}

type stateRow struct {
	Key    game.DiscreteState        `json:"key"`
	Values [game.NumActions]float64 `json:"values"`
}

// Save writes the table as JSON, preserving state indices.
func (t *Table) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create table directory: %w", err)
	}

	s := snapshot{Capacity: t.capacity, States: make([]stateRow, t.Len())}
	for i := range s.States {
		s.States[i] = stateRow{Key: t.keys[i], Values: t.values[i]}
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// LoadTable reads a table written by Save.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", path, err)
	}

	capacity := max(s.Capacity, len(s.States), meta.TableCapacity)
	t := NewTable(capacity)
	for i, row := range s.States {
		if _, ok := t.Lookup(row.Key); ok {
			return nil, fmt.Errorf("table %s: state %s appears twice", path, row.Key)
		}
		t.Index(row.Key)
		t.values[i] = row.Values
	}
	return t, nil
}
