package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/google/uuid"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is the ephemeral session backend. Sessions are stored as JSON
// blobs so Get always hands back an independent copy — callers can never
// mutate shared state behind each other's backs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore whose sessions expire after ttl.
// A janitor goroutine sweeps expired entries once a minute.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	st := &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}

	go func() {
		for range time.Tick(time.Minute) {
			st.sweep()
		}
	}()

	return st
}

func (st *MemoryStore) Create(_ context.Context, s *model.SessionState) error {
	s.Token = uuid.NewString()
	return st.put(s)
}

func (st *MemoryStore) Get(_ context.Context, token string) (*model.SessionState, error) {
	st.mu.RLock()
	entry, ok := st.sessions[token]
	st.mu.RUnlock()

	if !ok || st.now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}

	s := &model.SessionState{}
	if err := json.Unmarshal(entry.data, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (st *MemoryStore) Save(_ context.Context, s *model.SessionState) error {
	if s.Token == "" {
		return ErrNotFound
	}
	return st.put(s)
}

func (st *MemoryStore) Delete(_ context.Context, token string) error {
	st.mu.Lock()
	delete(st.sessions, token)
	st.mu.Unlock()
	return nil
}

func (st *MemoryStore) put(s *model.SessionState) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	st.mu.Lock()
	st.sessions[s.Token] = memoryEntry{data: data, expiresAt: st.now().Add(st.ttl)}
	st.mu.Unlock()
	return nil
}

func (st *MemoryStore) sweep() {
	now := st.now()
	st.mu.Lock()
	defer st.mu.Unlock()
	for token, entry := range st.sessions {
		if now.After(entry.expiresAt) {
			delete(st.sessions, token)
		}
	}
}
