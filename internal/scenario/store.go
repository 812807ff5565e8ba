package scenario

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"cooling-expander/internal/expand"
)

// storeEntry holds one expansion result until it expires.
type storeEntry struct {
	Result    *expand.Result
	ExpiresAt time.Time
}

// Store keeps recent expansion results in memory so API clients can fetch the
// full record set separately from the run call. Entries expire after a TTL;
// nothing is persisted.
type Store struct {
	mu    sync.RWMutex
	store map[string]*storeEntry
	ttl   time.Duration
}

// NewStore creates a result store. TTL defaults to 1 hour and can be
// overridden via EXPANSION_STORE_TTL (a Go duration string).
func NewStore() *Store {
	ttl := 1 * time.Hour
	if ttlStr := os.Getenv("EXPANSION_STORE_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		}
	}

	s := &Store{
		store: make(map[string]*storeEntry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a result and returns its generated id.
func (s *Store) Put(res *expand.Result) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[id] = &storeEntry{
		Result:    res,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result if present and not expired.
func (s *Store) Get(id string) (*expand.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = make(map[string]*storeEntry)
}

// cleanup periodically removes expired entries.
func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.ExpiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
