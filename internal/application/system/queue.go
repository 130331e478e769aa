package system

import (
	"sync"

	"github.com/younwookim/doodle/internal/domain/entity"
)

// DefaultQueueCapacity bounds the number of input events held between ticks
const DefaultQueueCapacity = 64

// InputQueue buffers input events between ticks.
// Thread-Safety:
//   - Push: any goroutine (terminal event reader, ebiten update)
//   - Drain: single consumer, once at the start of each tick
//
// Overflow: oldest events are dropped when full
type InputQueue struct {
	mu       sync.Mutex
	pending  []entity.Direction
	capacity int
	dropped  uint64
}

// NewInputQueue creates a queue holding at most capacity events
func NewInputQueue(capacity int) *InputQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &InputQueue{
		pending:  make([]entity.Direction, 0, capacity),
		capacity: capacity,
	}
}

// Push appends an event
func (q *InputQueue) Push(dir entity.Direction) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == q.capacity {
		copy(q.pending, q.pending[1:])
		q.pending = q.pending[:len(q.pending)-1]
		q.dropped++
	}
	q.pending = append(q.pending, dir)
}

// Drain returns all pending events in FIFO order and empties the queue.
// Returns nil when nothing is pending.
func (q *InputQueue) Drain() []entity.Direction {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	out := make([]entity.Direction, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of pending events
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Dropped returns how many events were discarded on overflow
func (q *InputQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
