// Package memory is a ttl byte cache.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
}

// NewStorage ...
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
	}
}

// Get returns cached content or nil if the key is missing or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(it.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil
	}

	return it.content
}

// Set stores content under key for duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	s.items[key] = item{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
	s.mu.Unlock()
}
