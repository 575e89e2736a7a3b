package mocktails

import "sync"

// FIFO is a first-in-first-out queue. It can optionally be limited in size. If it is limited, then when the queue is
// full, the oldest items are dropped to make room for new items. A limit of zero means unbounded.
type FIFO[T any] struct {
	values []T
	limit  int
	mu     sync.Mutex
}

func (fifo *FIFO[T]) Push(value ...T) {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	if fifo.limit > 0 && len(fifo.values)+len(value) > fifo.limit {
		over := len(fifo.values) + len(value) - fifo.limit
		if over > len(fifo.values) {
			value = value[over-len(fifo.values):]
			over = len(fifo.values)
		}
		fifo.values = fifo.values[over:]
	}
	fifo.values = append(fifo.values, value...)
}

func (fifo *FIFO[T]) Pop(n int) []T {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	if n > len(fifo.values) {
		n = len(fifo.values)
	}
	values := make([]T, n)
	copy(values, fifo.values[:n])
	fifo.values = fifo.values[n:]
	return values
}

// Next removes and returns the oldest value. ok is false when the queue is empty.
func (fifo *FIFO[T]) Next() (value T, ok bool) {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	if len(fifo.values) == 0 {
		return value, false
	}
	value = fifo.values[0]
	var zero T
	fifo.values[0] = zero
	fifo.values = fifo.values[1:]
	return value, true
}

func (fifo *FIFO[T]) Len() int {
	fifo.mu.Lock()
	defer fifo.mu.Unlock()
	return len(fifo.values)
}

func NewFIFO[T any](limit int) *FIFO[T] {
	return &FIFO[T]{
		limit:  limit,
		values: make([]T, 0, limit),
	}
}
