package eop

import (
	"sync"
	"sync/atomic"
)

// Store provides thread-safe access to the current Dataset for long-lived
// processes that refresh Earth-orientation data periodically. Transform
// calls in flight keep using the Dataset they were handed; swapping the
// store never mutates a published Dataset.
type Store struct {
	dataset atomic.Pointer[Dataset]
	mu      sync.Mutex // serializes refresh operations
}

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the current dataset, or nil if none has been loaded.
func (s *Store) Get() *Dataset {
	return s.dataset.Load()
}

// Set atomically replaces the current dataset.
func (s *Store) Set(ds *Dataset) {
	s.dataset.Store(ds)
}

// Refresh runs load under the refresh mutex and publishes its result.
// Concurrent Refresh calls run one at a time; a load error leaves the
// current dataset in place. Get is never blocked by an in-flight refresh.
func (s *Store) Refresh(load func() (*Dataset, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := load()
	if err != nil {
		return err
	}
	s.dataset.Store(ds)
	return nil
}
