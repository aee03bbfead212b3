package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

type memoryStore struct {
	mu  sync.Mutex
	ttl time.Duration

	entries map[string]memoryEntry
}

// NewMemoryStore creates an in-process session store. It backs local
// development without Redis and the handler tests; expired entries are
// reaped lazily on read.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Create(_ context.Context, identity Identity) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{
		identity:  identity,
		expiresAt: time.Now().Add(s.ttl),
	}

	return id, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return Identity{}, ErrNotFound
	}

	if time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return Identity{}, ErrNotFound
	}

	if !entry.identity.complete() {
		return Identity{}, ErrNotFound
	}

	return entry.identity, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)

	return nil
}
