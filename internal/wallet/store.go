package wallet

import "sync"

// Listener observes state transitions
type Listener func(prev, next State)

// Store holds the wallet state and applies actions through Reduce
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store in the disconnected state
func NewStore() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// State returns the current snapshot
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies an action and notifies listeners outside the lock
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(prev, next)
	}
	return next
}

// Subscribe registers a listener and returns its unsubscribe func
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
