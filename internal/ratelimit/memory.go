package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps windows in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*Window
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*Window),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration, now time.Time) (Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, exists := s.windows[key]
	if !exists || !now.Before(w.ResetAt) {
		w = &Window{ResetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.Count++

	return *w, nil
}

func (s *MemoryStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, w := range s.windows {
		if !now.Before(w.ResetAt) {
			delete(s.windows, key)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
