// Package pqueue implements a generic priority queue on top of a 4-ary
// min-heap.
//
// A 4-ary heap is half as deep as a binary heap holding the same number of
// elements, at the price of comparing up to four children on each level of
// a sink.  Inserts, which only ever compare against a single parent, get
// cheaper; deletes stay O(log n).
//
package pqueue

import (
	"bytes"
	"cmp"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Arity is the number of children of each node in the heap.
const Arity = 4

// DefaultCapacity is the size of the backing array of a new Queue.
const DefaultCapacity = 10

// CompareFunc returns a negative number when a orders before b, a positive
// number when b orders before a, and zero when neither does.
type CompareFunc[T any] func(a, b T) int

// Queue is a min-priority queue.  The element that compares least is always
// available in O(1) via PeekMin.
//
// The zero Queue is not usable; construct one with New, NewOrdered or From.
// A Queue must not be used by more than one goroutine at a time.
//
type Queue[T comparable] struct {
	heap    []T
	size    int
	compare CompareFunc[T]
}

// New returns an empty Queue ordered by compare.
func New[T comparable](compare CompareFunc[T]) *Queue[T] {
	assert.Assertf(compare != nil, "pqueue.New: CompareFunc is nil")
	return &Queue[T]{
		heap:    make([]T, DefaultCapacity),
		compare: compare,
	}
}

// NewOrdered returns an empty Queue ordered by cmp.Compare.
func NewOrdered[T cmp.Ordered]() *Queue[T] {
	return New[T](cmp.Compare[T])
}

// From returns a Queue ordered by compare and holding elems.  The elements
// are inserted one at a time, in order.
func From[T comparable](compare CompareFunc[T], elems ...T) *Queue[T] {
	assert.Assertf(compare != nil, "pqueue.From: CompareFunc is nil")
	q := &Queue[T]{
		heap:    make([]T, max(len(elems), DefaultCapacity)),
		compare: compare,
	}
	for _, x := range elems {
		q.Insert(x)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Cap returns the number of elements the queue can hold before its backing
// array has to grow.
func (q *Queue[T]) Cap() int {
	return len(q.heap)
}

// Insert adds x to the queue.  The complexity is amortized O(log n).
func (q *Queue[T]) Insert(x T) {
	if q.size == len(q.heap) {
		q.grow()
	}
	q.heap[q.size] = x
	q.size++
	q.swim(q.size - 1)
}

// PeekMin returns the least element without removing it.  The boolean is
// false if the queue is empty.
func (q *Queue[T]) PeekMin() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.heap[0], true
}

// DeleteMin removes and returns the least element.  The boolean is false if
// the queue is empty.  When several elements compare equal to the minimum,
// which of them comes out first is unspecified.
//
func (q *Queue[T]) DeleteMin() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	least := q.heap[0]
	q.size--
	q.heap[0] = q.heap[q.size]
	q.heap[q.size] = zero
	q.sink(0)
	return least, true
}

// Clear removes every element.  The backing array is kept for reuse.
func (q *Queue[T]) Clear() {
	clear(q.heap[:q.size])
	q.size = 0
}

// Contains reports whether x is currently in the queue, comparing with ==.
// For pointer elements that is an identity test: a distinct pointer to an
// equal value is not contained.
//
func (q *Queue[T]) Contains(x T) bool {
	for _, y := range q.heap[:q.size] {
		if y == x {
			return true
		}
	}
	return false
}

// Dump writes a programmer-readable debugging dump of the Queue's current
// state to the given writer.  Elements are listed in heap order.
func (q *Queue[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Queue{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", q.size)
	fmt.Fprintf(&buf, "\tCap() = %d\n", len(q.heap))
	for i, x := range q.heap[:q.size] {
		fmt.Fprintf(&buf, "\t[%d] = %v\n", i, x)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (q *Queue[T]) grow() {
	n := 2 * len(q.heap)
	if n == 0 {
		n = DefaultCapacity
	}
	heap := make([]T, n)
	copy(heap, q.heap[:q.size])
	q.heap = heap
}

func (q *Queue[T]) less(i, j int) bool {
	return q.compare(q.heap[i], q.heap[j]) < 0
}

func (q *Queue[T]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}

func (q *Queue[T]) swim(i int) {
	for i > 0 {
		p := parent(i)
		if !q.less(i, p) {
			return
		}
		q.swap(i, p)
		i = p
	}
}

func (q *Queue[T]) sink(i int) {
	for {
		first := firstChild(i)
		if first >= q.size {
			return
		}
		least := first
		end := min(first+Arity, q.size)
		for c := first + 1; c < end; c++ {
			if q.less(c, least) {
				least = c
			}
		}
		if !q.less(least, i) {
			return
		}
		q.swap(i, least)
		i = least
	}
}

func parent(c int) int {
	return (c - 1) / Arity
}

func firstChild(p int) int {
	return Arity*p + 1
}
