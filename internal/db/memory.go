package db

import (
	"context"
	"sync"

	"hotpot-server/internal/entities"
)

// MemoryStore holds snapshots in process memory. It backs tests and the
// "memory" storage driver; contents are lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, tableID string) (*entities.GameState, error) {
	s.mu.Lock()
	data, ok := s.blobs[tableID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return decodeSnapshot(data)
}

func (s *MemoryStore) Save(_ context.Context, tableID string, state *entities.GameState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.blobs[tableID] = data
	s.mu.Unlock()
	return nil
}
