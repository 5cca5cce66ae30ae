package events

import (
	"log/slog"
	"sync"
)

// Queue is a FIFO queue of reward events. Enqueue appends and DrainNext
// pops the oldest pending event, so concurrent reward triggers are
// surfaced one at a time without loss.
type Queue struct {
	mu      sync.Mutex
	pending []*RewardEvent
	logger  *slog.Logger
}

// NewQueue creates an empty reward queue.
func NewQueue(logger *slog.Logger) *Queue {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Queue")
	}

	return &Queue{
		pending: make([]*RewardEvent, 0),
		logger:  logger.With("component", "reward_queue"),
	}
}

// Enqueue appends an event to the queue.
func (q *Queue) Enqueue(event *RewardEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, event)

	q.logger.Debug("reward event enqueued",
		"event_id", event.ID,
		"event_type", event.Type,
		"pending", len(q.pending))
}

// DrainNext pops and returns the oldest pending event, or nil when the
// queue is empty.
func (q *Queue) DrainNext() *RewardEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	event := q.pending[0]
	q.pending = q.pending[1:]

	return event
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}
