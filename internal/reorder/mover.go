package reorder

import (
	"context"
	"sync"
	"time"
)

// Mover is the pointerless reorder fallback: explicit up/down controls
// swap an item with its neighbor immediately in the local ordering, then
// persist the full ordering after a fixed delay.
//
// Unlike the drag debounce, a new move does NOT cancel a pending persist;
// every move schedules its own independent delayed persist with a snapshot
// of the ordering as it stood at scheduling time. Rapid taps therefore
// coalesce naturally (later persists carry the later state and win) without
// any timer bookkeeping.
//
// Safe for concurrent use.
type Mover struct {
	clientID string
	delay    time.Duration
	persist  PersistFunc

	// Haptic, when non-nil, is invoked on every successful swap.
	Haptic func()

	// OnPersistError, when non-nil, receives the error of every failed
	// delayed persist so the caller can reconcile the displayed order.
	OnPersistError func(error)

	mu    sync.Mutex
	order []string

	wg sync.WaitGroup
}

// NewMover creates a mover over the client's current ordering. The slice
// is copied. A non-positive delay defaults to 300ms.
func NewMover(clientID string, orderedPropertyIDs []string, delay time.Duration, persist PersistFunc) *Mover {
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}

	order := make([]string, len(orderedPropertyIDs))
	copy(order, orderedPropertyIDs)

	return &Mover{
		clientID: clientID,
		delay:    delay,
		persist:  persist,
		order:    order,
	}
}

// MoveUp swaps the item at index with its predecessor. Moving the first
// item is a no-op that schedules nothing.
func (m *Mover) MoveUp(ctx context.Context, index int) error {
	return m.move(ctx, index, index-1)
}

// MoveDown swaps the item at index with its successor. Moving the last
// item is a no-op that schedules nothing.
func (m *Mover) MoveDown(ctx context.Context, index int) error {
	return m.move(ctx, index, index+1)
}

// Order returns a snapshot of the current local ordering.
func (m *Mover) Order() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := make([]string, len(m.order))
	copy(order, m.order)
	return order
}

// Wait blocks until every scheduled persist has run. Intended for shutdown
// and tests.
func (m *Mover) Wait() {
	m.wg.Wait()
}

func (m *Mover) move(ctx context.Context, index, neighbor int) error {
	m.mu.Lock()

	if index < 0 || index >= len(m.order) {
		m.mu.Unlock()
		return ErrIndexOutOfRange
	}
	if neighbor < 0 || neighbor >= len(m.order) {
		m.mu.Unlock()
		return nil
	}

	m.order[index], m.order[neighbor] = m.order[neighbor], m.order[index]

	snapshot := make([]string, len(m.order))
	copy(snapshot, m.order)
	m.mu.Unlock()

	if m.Haptic != nil {
		m.Haptic()
	}

	// The persist outlives the triggering request, so it must not die with
	// the request's context.
	persistCtx := context.WithoutCancel(ctx)

	m.wg.Add(1)
	time.AfterFunc(m.delay, func() {
		defer m.wg.Done()
		if err := m.persist(persistCtx, m.clientID, snapshot); err != nil && m.OnPersistError != nil {
			m.OnPersistError(err)
		}
	})

	return nil
}
