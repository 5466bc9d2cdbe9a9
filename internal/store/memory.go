// internal/store/memory.go
//
// Session ledger: the record of matches finished during this process.
// Nothing here outlives the process; both backends keep data in memory.
//
// Characteristics of the map-backed implementation:
//   - Records are kept in insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Duplicate match IDs are rejected.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/rpsls/internal/game"
)

// ErrDuplicate is returned when a match ID has already been saved.
var ErrDuplicate = errors.New("match already recorded")

// MatchRecord is a finished match.
type MatchRecord struct {
	ID              string
	Player          string
	StartedAt       time.Time
	FinishedAt      time.Time
	Rounds          int
	HumanScore      int
	ComputerScore   int
	Winner          game.Outcome
	HumanHistory    []game.Move
	ComputerHistory []game.Move
}

// Summary aggregates all records of the session.
type Summary struct {
	Matches      int
	HumanWins    int
	ComputerWins int
	Rounds       int
}

// Store defines the ledger interface.
type Store interface {
	// SaveMatch appends a finished match.
	SaveMatch(ctx context.Context, r MatchRecord) error

	// Matches returns all records, oldest first.
	Matches(ctx context.Context) ([]MatchRecord, error)

	// Summary aggregates the records.
	Summary(ctx context.Context) (Summary, error)

	Close() error
}

// RecordFromMatch snapshots a finished match.
func RecordFromMatch(m *game.Match, finished time.Time) MatchRecord {
	return MatchRecord{
		ID:              m.ID,
		Player:          m.Human.Name,
		StartedAt:       m.StartedAt,
		FinishedAt:      finished.UTC(),
		Rounds:          m.Rounds,
		HumanScore:      m.Human.Score,
		ComputerScore:   m.Computer.Score,
		Winner:          m.Winner(),
		HumanHistory:    append([]game.Move(nil), m.Human.History...),
		ComputerHistory: append([]game.Move(nil), m.Computer.History...),
	}
}

// memory is an in-memory slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex    // guards records and ids
	records []MatchRecord   // insertion order
	ids     map[string]bool // recorded match IDs
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{ids: make(map[string]bool)}
}

func (m *memory) SaveMatch(ctx context.Context, r MatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids[r.ID] {
		return ErrDuplicate
	}
	m.ids[r.ID] = true
	m.records = append(m.records, r)
	return nil
}

func (m *memory) Matches(ctx context.Context) ([]MatchRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MatchRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Summary
	for _, r := range m.records {
		s.add(r)
	}
	return s, nil
}

func (m *memory) Close() error { return nil }

func (s *Summary) add(r MatchRecord) {
	s.Matches++
	s.Rounds += r.Rounds
	switch r.Winner {
	case game.HumanWins:
		s.HumanWins++
	case game.ComputerWins:
		s.ComputerWins++
	}
}
