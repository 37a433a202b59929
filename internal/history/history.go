// Package history keeps a bounded record of recent predictions. It is owned
// entirely by the serving layer; the classification core never touches it.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the log when no capacity is configured.
const DefaultCapacity = 100

// An Entry is one recorded prediction.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Text       string    `json:"original_text"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Emoji      string    `json:"emoji"`
}

// Store is an append-only prediction log, newest first.
type Store interface {
	Add(entry Entry) Entry
	Recent(limit int) []Entry
	Len() int
	Clear()
}

// MemoryStore is a capped in-memory Store, safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// NewMemoryStore creates a MemoryStore holding at most capacity entries;
// non-positive capacities fall back to DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{capacity: capacity}
}

// Add records an entry at the front of the log, evicting the oldest entry
// once the store is full. Missing ids and timestamps are filled in.
func (s *MemoryStore) Add(entry Entry) Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
	return entry
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns everything retained.
func (s *MemoryStore) Recent(limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	out := make([]Entry, limit)
	copy(out, s.entries[:limit])
	return out
}

// Len returns the number of retained entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear drops every retained entry.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
