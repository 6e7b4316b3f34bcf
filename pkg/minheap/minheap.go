// Package minheap provides a generic binary min-heap ordered by a
// caller-supplied comparison function.
package minheap

import "errors"

// ErrEmpty is returned when extracting from an exhausted heap.
var ErrEmpty = errors.New("heap is empty")

// Heap is a binary min-heap over items of type T. The ordering is defined
// entirely by the less function given to New; duplicates are allowed and
// ties are broken arbitrarily.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New creates a heap with the given ordering and initial capacity.
func New[T any](less func(a, b T) bool, capacity int) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[T]{
		items: make([]T, 0, capacity),
		less:  less,
	}
}

// Len returns the number of items currently in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push adds an item to the heap. O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum item per the heap's ordering.
// Returns ErrEmpty if the heap is exhausted. O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmpty
	}

	min := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return min, nil
}

// Peek returns the minimum item without removing it.
// Returns ErrEmpty if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.less(h.items[right], h.items[left]) {
			smallest = right
		}
		if !h.less(h.items[smallest], h.items[i]) {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
