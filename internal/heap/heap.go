// Package heap provides a comparator-driven binary min-heap.
package heap

import "errors"

// ErrEmpty is returned by PeekMin and RemoveMin when the heap holds nothing.
var ErrEmpty = errors.New("heap: the heap is empty, there is no minimum")

// Comparator returns a negative value if a < b, a positive value if a > b,
// and 0 if they are equal.
type Comparator[E any] func(a, b E) int

// Heap keeps a list of values and retrieves (and removes) the smallest one in
// O(log n) time. Elements must not be mutated in a way that changes how they
// compare while they are in the heap.
//
// The zero value is not usable; create heaps with New.
type Heap[E any] struct {
	elems []E
	cmp   Comparator[E]
}

// New creates an empty heap ordered by cmp.
func New[E any](cmp Comparator[E]) *Heap[E] {
	return &Heap[E]{cmp: cmp}
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[E]) IsEmpty() bool {
	return len(h.elems) == 0
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int {
	return len(h.elems)
}

// PeekMin returns the minimum element without removing it.
func (h *Heap[E]) PeekMin() (E, error) {
	if h.IsEmpty() {
		var zero E
		return zero, ErrEmpty
	}
	return h.elems[0], nil
}

// Insert adds e to the heap.
func (h *Heap[E]) Insert(e E) {
	h.elems = append(h.elems, e)
	h.up(len(h.elems) - 1)
}

// RemoveMin removes and returns the minimum element.
func (h *Heap[E]) RemoveMin() (E, error) {
	if h.IsEmpty() {
		var zero E
		return zero, ErrEmpty
	}

	last := len(h.elems) - 1
	m := h.elems[0]
	h.elems[0] = h.elems[last]
	var zero E
	h.elems[last] = zero // release the reference
	h.elems = h.elems[:last]
	if len(h.elems) > 0 {
		h.down(0)
	}
	return m, nil
}

// up moves the element at i towards the root until its parent is no larger.
func (h *Heap[E]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.elems[i], h.elems[parent]) >= 0 {
			return
		}
		h.elems[i], h.elems[parent] = h.elems[parent], h.elems[i]
		i = parent
	}
}

// down moves the element at i towards the leaves until it is no larger than
// both of its children.
func (h *Heap[E]) down(i int) {
	n := len(h.elems)
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1
		if left < n && h.cmp(h.elems[left], h.elems[smallest]) < 0 {
			smallest = left
		}
		if right < n && h.cmp(h.elems[right], h.elems[smallest]) < 0 {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.elems[i], h.elems[smallest] = h.elems[smallest], h.elems[i]
		i = smallest
	}
}
