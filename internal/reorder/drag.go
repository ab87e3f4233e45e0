// Package reorder implements the in-memory portfolio reorder engine: a
// drag state machine with debounced splicing, an up/down mover for
// pointerless surfaces, and the viewport-edge auto-scroll speed model.
//
// The engine mutates a local ordering optimistically and persists the full
// ordering as one batch write. On persist failure the caller re-fetches
// server state; the engine never rolls back the local order itself.
package reorder

import (
	"context"
	"errors"
	"sync"
	"time"
)

// PersistFunc writes a full ordering for a client, position = slice index.
type PersistFunc func(ctx context.Context, clientID string, orderedPropertyIDs []string) error

// Direction reports which way the dragged element is moving relative to
// its current position.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

var (
	// ErrNotDragging is returned for drag events outside an active drag.
	ErrNotDragging = errors.New("no drag in progress")

	// ErrIndexOutOfRange is returned for indexes outside the ordering.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DragSession is the single-pointer drag state machine. A session holds the
// client's current ordering; Start opens a drag from one index, DragOver
// splices the dragged element toward the hovered index after a debounce,
// and End flushes any pending splice and persists the resulting order.
//
// The debounce coalesces rapid pointer movement: only the latest hovered
// index within the window is applied. After each applied splice the source
// index rebases to the hover index, so the drag is a live, continuously
// updating reorder rather than a single before/after diff.
//
// Safe for concurrent use.
type DragSession struct {
	clientID string
	debounce time.Duration
	persist  PersistFunc

	mu          sync.Mutex
	order       []string
	dragging    bool
	sourceIndex int
	hoverIndex  int
	direction   Direction
	pending     *time.Timer
}

// NewDragSession creates a session over the client's current ordering.
// The slice is copied; the caller's copy is never mutated. A non-positive
// debounce defaults to 50ms.
func NewDragSession(clientID string, orderedPropertyIDs []string, debounce time.Duration, persist PersistFunc) *DragSession {
	if debounce <= 0 {
		debounce = 50 * time.Millisecond
	}

	order := make([]string, len(orderedPropertyIDs))
	copy(order, orderedPropertyIDs)

	return &DragSession{
		clientID: clientID,
		debounce: debounce,
		persist:  persist,
		order:    order,
	}
}

// Start opens a drag from sourceIndex. Starting while a drag is already
// active restarts from the new index without persisting.
func (s *DragSession) Start(sourceIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sourceIndex < 0 || sourceIndex >= len(s.order) {
		return ErrIndexOutOfRange
	}

	s.stopPendingLocked()
	s.dragging = true
	s.sourceIndex = sourceIndex
	s.hoverIndex = sourceIndex
	s.direction = DirectionNone

	return nil
}

// DragOver records the pointer entering the element at hoverIndex. The
// splice is applied after the debounce window; a newer DragOver within the
// window replaces the pending one.
func (s *DragSession) DragOver(hoverIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dragging {
		return ErrNotDragging
	}
	if hoverIndex < 0 || hoverIndex >= len(s.order) {
		return ErrIndexOutOfRange
	}
	if hoverIndex == s.sourceIndex {
		return nil
	}

	s.hoverIndex = hoverIndex
	if hoverIndex > s.sourceIndex {
		s.direction = DirectionDown
	} else {
		s.direction = DirectionUp
	}

	s.stopPendingLocked()
	s.pending = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.dragging {
			return
		}
		s.spliceLocked()
	})

	return nil
}

// End closes the drag: any pending splice is applied immediately and the
// full resulting ordering is persisted in one call. The local order stays
// authoritative even when persistence fails; the caller is expected to
// re-fetch server state on error.
func (s *DragSession) End(ctx context.Context) error {
	s.mu.Lock()

	if !s.dragging {
		s.mu.Unlock()
		return ErrNotDragging
	}

	if s.stopPendingLocked() {
		s.spliceLocked()
	}
	s.dragging = false
	s.direction = DirectionNone

	order := make([]string, len(s.order))
	copy(order, s.order)
	s.mu.Unlock()

	return s.persist(ctx, s.clientID, order)
}

// Direction reports the current drag direction.
func (s *DragSession) Direction() Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// Order returns a snapshot of the current local ordering.
func (s *DragSession) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := make([]string, len(s.order))
	copy(order, s.order)
	return order
}

// spliceLocked removes the dragged element from sourceIndex, reinserts it
// at hoverIndex and rebases the source so further moves are relative to
// the new position. Caller holds the mutex.
func (s *DragSession) spliceLocked() {
	from, to := s.sourceIndex, s.hoverIndex
	if from == to {
		return
	}

	moved := s.order[from]
	s.order = append(s.order[:from], s.order[from+1:]...)
	s.order = append(s.order[:to], append([]string{moved}, s.order[to:]...)...)
	s.sourceIndex = to
}

// stopPendingLocked cancels a scheduled splice and reports whether one was
// still pending. Caller holds the mutex.
func (s *DragSession) stopPendingLocked() bool {
	if s.pending == nil {
		return false
	}

	stopped := s.pending.Stop()
	s.pending = nil
	return stopped
}
