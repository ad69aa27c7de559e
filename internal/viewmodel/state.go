// Package viewmodel holds the presentation state behind the operator views:
// the employee directory, the attendance ledger and the dashboard. Each view
// model owns its own state, talks to the API through a narrow interface and
// is safe for concurrent use.
package viewmodel

import (
	"context"
	"sync"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// State is a snapshot of one fetched resource. Data keeps the last
// successful load even when ErrorMessage is set.
type State[T any] struct {
	Data         T
	IsLoading    bool
	ErrorMessage string
	Loaded       bool
}

// Status collapses the flags into the single state a view renders.
func (s State[T]) Status() Status {
	switch {
	case s.IsLoading:
		return StatusLoading
	case s.ErrorMessage != "":
		return StatusError
	case s.Loaded:
		return StatusLoaded
	default:
		return StatusIdle
	}
}

// store guards a State. Only the most recently started load may apply its
// result, and nothing applies once the owning view model is closed.
type store[T any] struct {
	mu    sync.RWMutex
	state State[T]
	gen   uint64
}

func (s *store[T]) snapshot() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *store[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state.IsLoading = true
	s.state.ErrorMessage = ""
	return s.gen
}

// finish applies a load result. A failed load keeps the previous Data.
func (s *store[T]) finish(gen uint64, life *lifetime, data T, errMessage string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || life.closed() {
		return false
	}
	s.state.IsLoading = false
	if errMessage != "" {
		s.state.ErrorMessage = errMessage
		return true
	}
	s.state.Data = data
	s.state.Loaded = true
	return true
}

// lifetime ties in-flight work to the view model that started it.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newLifetime() *lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return &lifetime{ctx: ctx, cancel: cancel}
}

// bind derives a context that is cancelled by the caller or by close.
func (l *lifetime) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (l *lifetime) closed() bool {
	return l.ctx.Err() != nil
}

func (l *lifetime) close() {
	l.cancel()
}
