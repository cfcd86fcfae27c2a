package store

import "sync"

// TokenKey is the durable key holding the access token.
const TokenKey = "token"

// Store is a pluggable durable key/value storage.
type Store interface {
	Lookup(key string) (string, bool)
	Put(key, value string) error
	Remove(key string) error
}

type MemoryStoreOption func(*memoryStore)

// WithValue seeds the store with a key/value pair.
func WithValue(key, value string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.values[key] = value
	}
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *memoryStore) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryStore) snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ret := make(map[string]string, len(m.values))
	for k, v := range m.values {
		ret[k] = v
	}
	return ret
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
