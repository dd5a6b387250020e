// Package screen holds the load state of one mounted page.
package screen

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of a screen's data.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Reason is the failure text shown to the user, empty unless Failed.
func (s State[T]) Reason() string {
	if s.Status != Failed || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Screen owns the state for a single mount. Results delivered after
// Unmount are dropped.
type Screen[T any] struct {
	mounted atomic.Bool
	mu      sync.Mutex
	state   State[T]
}

func New[T any]() *Screen[T] {
	return &Screen[T]{}
}

func (s *Screen[T]) Mount() { s.mounted.Store(true) }

func (s *Screen[T]) Unmount() { s.mounted.Store(false) }

func (s *Screen[T]) Mounted() bool { return s.mounted.Load() }

func (s *Screen[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fail moves the screen to Failed without running a load.
func (s *Screen[T]) Fail(err error) {
	s.set(State[T]{Status: Failed, Err: err})
}

// Load runs fn and records its outcome. It returns the resulting state.
func (s *Screen[T]) Load(ctx context.Context, fn func(context.Context) (T, error)) State[T] {
	s.set(State[T]{Status: Loading})

	data, err := fn(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.set(State[T]{Status: Failed, Err: err})
	} else {
		s.set(State[T]{Status: Loaded, Data: data})
	}
	return s.State()
}

func (s *Screen[T]) set(st State[T]) {
	if !s.mounted.Load() {
		return
	}
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
