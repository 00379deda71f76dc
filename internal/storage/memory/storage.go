package memory

import (
	"context"
	"sync"

	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/storage"
)

// Storage is an in-memory implementation of the persistence gateway
type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	saves int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		blobs: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Gateway = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context, namespace string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[namespace]
	if !ok {
		return nil, model.ErrSnapshotNotFound
	}
	result := make([]byte, len(blob))
	copy(result, blob)
	return result, nil
}

func (s *Storage) Save(ctx context.Context, namespace string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[namespace] = stored
	s.saves++
	return nil
}

func (s *Storage) Delete(ctx context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, namespace)
	return nil
}

func (s *Storage) Close() error {
	return nil
}

// Saves returns how many Save calls have succeeded
func (s *Storage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
