package kvstore

import (
	"context"
	"sync"
)

type inmemStore struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ Store = (*inmemStore)(nil)

// OpenInMem returns a volatile Store for tests and throwaway runs.
func OpenInMem() *inmemStore {
	return &inmemStore{table: make(map[string][]byte)}
}

func (s *inmemStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if val, ok := s.table[key]; ok {
		cp := make([]byte, len(val))
		copy(cp, val)
		return cp, nil
	}
	return nil, ErrNotFound
}

func (s *inmemStore) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.table[key] = cp
	return nil
}
