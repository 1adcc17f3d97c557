// Package queue implements a FIFO queue built on top of a growable ring
// buffer.
package queue

// Queue is a FIFO queue built on top of the builtin slice type. Note that
// Push isn't always O(1) since the underlying slice has to grow, but the
// queue does no allocation at all while it stays roughly constant in
// length. A Queue is not safe for concurrent use.
type Queue[T any] struct {
	rep    []T
	first  int
	last   int // -1 when empty
	length int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{rep: make([]T, 2), last: -1}
}

// From returns a queue holding vs in order.
func From[T any](vs []T) *Queue[T] {
	q := New[T]()
	for _, v := range vs {
		q.Push(v)
	}
	return q
}

func (q *Queue[T]) Push(v T) {
	q.lazyGrow()
	q.last = q.inc(q.last)
	q.rep[q.last] = v
	q.length++
}

// Pop removes and returns the front element. ok is false if the queue
// is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.length == 0 {
		return v, false
	}
	v = q.rep[q.first]
	var zero T
	q.rep[q.first] = zero // drop the reference
	q.first = q.inc(q.first)
	q.length--
	if q.length == 0 {
		q.first, q.last = 0, -1
	}
	return v, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.length == 0 {
		return v, false
	}
	return q.rep[q.first], true
}

func (q *Queue[T]) Len() int {
	return q.length
}

func (q *Queue[T]) Empty() bool {
	return q.length == 0
}

func (q *Queue[T]) inc(index int) int {
	return (index + 1) % len(q.rep)
}

func (q *Queue[T]) lazyGrow() {
	// Only grow when the slice is full
	if q.length == len(q.rep) {
		rep := make([]T, 2*q.length)
		if q.first < q.last {
			// no wrap-around
			q.last = copy(rep, q.rep[q.first:q.last+1]) - 1
		} else {
			n := copy(rep, q.rep[q.first:])
			q.last = copy(rep[n:], q.rep[:q.last+1]) + n - 1
		}
		q.first = 0
		q.rep = rep
	}
}
