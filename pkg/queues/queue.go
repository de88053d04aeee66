package queues

// Queue is an unbounded FIFO. It is not safe for concurrent use.
type Queue[T any] []T

func NewQueue[T any]() *Queue[T] {
	q := Queue[T]{}
	return &q
}

func (q *Queue[T]) Push(x T) {
	*q = append(*q, x)
}

// Pop removes the oldest element. ok is false when the queue is empty.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if q.IsEmpty() {
		return x, false
	}
	var zero T
	x = (*q)[0]
	(*q)[0] = zero
	*q = (*q)[1:]
	return x, true
}

func (q *Queue[T]) Len() int {
	return len(*q)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(*q) == 0
}
