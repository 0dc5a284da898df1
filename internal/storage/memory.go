package storage

import (
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in process memory. Entries never expire; they
// live until removed or until the process exits.
type MemoryStore struct {
	c *cache.Cache
}

// NewMemoryStore returns an empty store without a cleanup janitor.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.c.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.c.Delete(key)
	return nil
}

// Len reports how many keys are held
func (m *MemoryStore) Len() int {
	return m.c.ItemCount()
}
