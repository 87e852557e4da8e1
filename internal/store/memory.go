// internal/store/memory.go
//
// In-memory store of finished session records.
// Used by the bench command to collect one record per goal before summarizing.
//
// Characteristics:
//   - Records are keyed by ID and listed in insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("store: record not found")

// Store defines the interface for keeping session records.
type Store interface {
	// Save adds a record or replaces the one with the same ID.
	Save(ctx context.Context, r game.Record) error

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (game.Record, error)

	// List returns every record in the order it was first saved.
	List(ctx context.Context) ([]game.Record, error)
}

type memory struct {
	mu      sync.RWMutex
	records map[string]game.Record
	order   []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]game.Record)}
}

func (m *memory) Save(ctx context.Context, r game.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.records[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return game.Record{}, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]game.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]game.Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id])
	}
	return out, nil
}
