package queue

import (
	"context"
	"sync"
)

const (
	// QueueBufferSize is the default capacity of an in-memory queue
	QueueBufferSize = 16
)

// InMemoryQueue implements Queue over a buffered channel.
type InMemoryQueue[T any] struct {
	ch chan T
	// lock serializes ClearQueue calls
	lock sync.Mutex
}

// NewInMemoryQueue creates a new queue holding at most size items.
// A non-positive size uses QueueBufferSize.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size <= 0 {
		size = QueueBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) Dequeue(ctx context.Context) (T, error) {
	select {
	case item := <-q.ch:
		return item, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.ch)
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
