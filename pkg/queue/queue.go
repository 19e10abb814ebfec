// queue package

package queue

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue is a bounded FIFO shared between one or more producers and a consumer.
type Queue[T any] interface {
	// Enqueue adds an item without blocking.
	Enqueue(item T) error
	// Dequeue blocks until an item is available or the context is done.
	Dequeue(ctx context.Context) (T, error)
	// Size returns the number of pending items.
	Size() int
	// ClearQueue drops every pending item.
	ClearQueue()
}
