// Package counter implements the shared counter store for the counterdemo
// service. The store is the only piece of mutable state shared across
// concurrent tool calls.
package counter

import "sync"

// Store holds a single signed integer behind an exclusive lock. The zero
// value is ready to use with a counter value of 0.
//
// All three operations serialize against each other; the lock is held only
// for the arithmetic itself and never across a blocking call. Overflow
// follows native int64 two's-complement wraparound.
type Store struct {
	mu    sync.Mutex
	value int64
}

// New returns a Store starting at 0.
func New() *Store {
	return &Store{}
}

// Increment adds 1 to the counter and returns the new value.
func (s *Store) Increment() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value++
	return s.value
}

// Decrement subtracts 1 from the counter and returns the new value.
func (s *Store) Decrement() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value--
	return s.value
}

// Value returns the current counter value without mutating it.
func (s *Store) Value() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
