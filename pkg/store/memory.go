package store

import (
	"sync"

	"krishi/entities"
)

// Memory is the test double and the fallback when no DB is wired.
type Memory struct {
	mu sync.RWMutex
	m  map[string]entities.EventAnnotation
}

func NewMemory() *Memory {
	return &Memory{m: map[string]entities.EventAnnotation{}}
}

func (s *Memory) Get(key string) (entities.EventAnnotation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.m[key]
	return a, ok, nil
}

func (s *Memory) Set(a entities.EventAnnotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[a.Key] = a
	return nil
}

func (s *Memory) All() (map[string]entities.EventAnnotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entities.EventAnnotation, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out, nil
}
