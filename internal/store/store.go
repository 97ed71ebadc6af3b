// Package store holds the editor state machine: the GanttState value,
// the closed action vocabulary, and the reducer that applies tree
// operations immutably. The Store is the sole mutation boundary — view
// collaborators read snapshots and dispatch actions, nothing else.
package store

// Store owns the current state. It is constructed once and passed down
// explicitly; Dispatch is the single writer entry point. The editor is
// single-threaded and event-driven, so the store carries no locking.
type Store struct {
	state GanttState
}

// New creates a store seeded with the given initial state.
func New(initial GanttState) *Store {
	return &Store{state: initial}
}

// Dispatch applies one action and installs the resulting state. Unknown
// or nil actions leave the state unchanged.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.state = reduce(s.state, a)
}

// State returns the current state snapshot. The snapshot is a value whose
// forest shares structure with past snapshots; callers must not mutate
// task nodes reached through it.
func (s *Store) State() GanttState {
	return s.state
}
