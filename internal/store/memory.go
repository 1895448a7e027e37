package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

// memoryStore keeps snapshots in a map. Values are stored as JSON so the
// caller never shares memory with the store, matching the behavior of the
// durable drivers.
type memoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: make(map[string][]byte)}
}

func (s *memoryStore) Save(ctx context.Context, key string, snap *models.Snapshot) error {
	val, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = val
	return nil
}

func (s *memoryStore) Load(ctx context.Context, key string) (*models.Snapshot, error) {
	s.mu.RLock()
	val, ok := s.snapshots[key]
	s.mu.RUnlock()
	if !ok {
		return emptySnapshot(), nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return emptySnapshot(), nil
	}
	if snap.Messages == nil {
		snap.Messages = []models.Message{}
	}
	if snap.Durations == nil {
		snap.Durations = map[string]int64{}
	}
	return &snap, nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = nil
	return nil
}
