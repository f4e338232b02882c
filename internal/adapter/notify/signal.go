// Package notify carries the "task list should refresh" signal from the
// creation form to the board.
package notify

import (
	"context"
	"sync"

	"taskboard/internal/core/ports"
)

// Listener reacts to a refresh signal.
type Listener func(ctx context.Context)

// LocalSignal delivers signals in-process, synchronously, to every listener.
type LocalSignal struct {
	mu        sync.RWMutex
	listeners []Listener
}

var _ ports.RefreshSignal = (*LocalSignal)(nil)

func NewLocalSignal() *LocalSignal {
	return &LocalSignal{}
}

func (s *LocalSignal) Listen(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *LocalSignal) Signal(ctx context.Context) error {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx)
	}
	return nil
}
