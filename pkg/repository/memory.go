package repository

import (
	"context"
	"sync"
)

// MemoryRepository keeps preferences in process memory. It backs the "memory" store and tests.
type MemoryRepository struct {
	mutex  sync.RWMutex
	values map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: map[string]string{}}
}

func (m *MemoryRepository) GetPreference(_ context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, found := m.values[key]
	if !found {
		return "", ErrPreferenceNotFound
	}

	return value, nil
}

func (m *MemoryRepository) SetPreference(_ context.Context, key string, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = value

	return nil
}
