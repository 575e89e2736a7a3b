package mocktails

// CommandQueue is the unbounded, strictly ordered channel between pour tasks and the serial writer.
// Enqueue never blocks.
type CommandQueue struct {
	fifo    *FIFO[Command]
	updated chan struct{}
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{
		fifo:    NewFIFO[Command](0),
		updated: make(chan struct{}, 1),
	}
}

func (q *CommandQueue) Enqueue(cc ...Command) {
	q.fifo.Push(cc...)
	select {
	case q.updated <- struct{}{}:
	default:
	}
}

func (q *CommandQueue) Dequeue() (Command, bool) {
	return q.fifo.Next()
}

// Updated receives a value after commands have been enqueued.
func (q *CommandQueue) Updated() <-chan struct{} {
	return q.updated
}

func (q *CommandQueue) Len() int {
	return q.fifo.Len()
}

// Drain removes and returns everything currently queued.
func (q *CommandQueue) Drain() []Command {
	return q.fifo.Pop(q.fifo.Len())
}
