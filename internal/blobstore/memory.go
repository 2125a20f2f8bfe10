package blobstore

import (
	"context"
	"sync"
)

// MemoryStore implements Store backed by process memory. Intended for tests
// and for running the kiosk without durable storage.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotExist
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	doc := make([]byte, len(data))
	copy(doc, data)
	s.mu.Lock()
	s.docs[key] = doc
	s.mu.Unlock()
	return nil
}
