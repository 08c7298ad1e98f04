package store

import (
	"sync"
)

// subscribers is a registry of snapshot callbacks. Stores notify it after
// every committed mutation, outside their own lock so a callback may call
// back into the store.
type subscribers[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)
}

// add registers fn and returns a handle for remove.
func (s *subscribers[T]) add(fn func(T)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	s.next++
	s.fns[s.next] = fn
	return s.next
}

func (s *subscribers[T]) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fns, id)
}

func (s *subscribers[T]) notify(snapshot T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
