package handoffq

// node holds one item and links to the next-younger node.
type node[T any] struct {
	item T
	next *node[T]
}

// Store is an unbounded FIFO of items not yet claimed by any consumer.
//
// Invariant: size == 0 iff head == nil && tail == nil, and tail.next is
// always nil. The Store owns the chain reachable from head; dropping head
// releases every node. Store is not safe for concurrent use; callers must
// serialize access. The zero value is an empty store ready for use.
type Store[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Push appends v to the tail. Complexity: O(1).
func (s *Store[T]) Push(v T) {
	n := &node[T]{item: v}
	if s.tail == nil {
		s.head = n
	} else {
		s.tail.next = n
	}
	s.tail = n
	s.size++
}

// PushMany appends items in order and returns how many were added.
func (s *Store[T]) PushMany(items ...T) int {
	for _, v := range items {
		s.Push(v)
	}
	return len(items)
}

// Pop removes and returns the head value.
//
// The second result is false when the store is empty. Complexity: O(1).
func (s *Store[T]) Pop() (T, bool) {
	var zero T
	n := s.head
	if n == nil {
		return zero, false
	}
	s.head = n.next
	if s.head == nil {
		s.tail = nil
	}
	s.size--
	v := n.item
	// Let the GC reclaim the item even if the node is still referenced.
	n.item = zero
	n.next = nil
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the store is empty. Complexity: O(1).
func (s *Store[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.item, true
}

// Len returns the number of items held.
func (s *Store[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the store is empty. Equivalent to Len() == 0.
func (s *Store[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear drops every item and returns how many were dropped.
// The chain is released as a whole; no per-node traversal is done.
func (s *Store[T]) Clear() int {
	n := s.size
	s.head, s.tail, s.size = nil, nil, 0
	return n
}

// ToSlice returns a copy of the store's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the store.
func (s *Store[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.item)
	}
	return out
}
