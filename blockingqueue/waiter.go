package blockingqueue

import "sync"

// waiter represents one consumer goroutine blocked in Consume.
//
// A waiter lives on the Consume call that created it. The registry only
// borrows it while the call is blocked. All fields are guarded by the
// owning queue's mutex, which cond shares.
type waiter[T any] struct {
	cond      *sync.Cond
	item      T
	delivered bool
	linked    bool
	next      *waiter[T]
}

func newWaiter[T any](mu *sync.Mutex) *waiter[T] {
	return &waiter[T]{cond: sync.NewCond(mu)}
}

// deliver hands v to w and wakes its goroutine. w must already be unlinked.
func (w *waiter[T]) deliver(v T) {
	w.item = v
	w.delivered = true
	w.cond.Signal()
}

// waiters is a FIFO of registered waiters.
//
// REQUIRES: the owning queue's mutex is held for every method.
type waiters[T any] struct {
	head *waiter[T]
	tail *waiter[T]
	n    int
}

func (r *waiters[T]) push(w *waiter[T]) {
	w.next = nil
	w.linked = true
	if r.tail == nil {
		r.head = w
	} else {
		r.tail.next = w
	}
	r.tail = w
	r.n++
}

// pop unlinks and returns the oldest waiter, or nil when none is registered.
func (r *waiters[T]) pop() *waiter[T] {
	w := r.head
	if w == nil {
		return nil
	}
	r.head = w.next
	if r.head == nil {
		r.tail = nil
	}
	w.next = nil
	w.linked = false
	r.n--
	return w
}

// remove unlinks w if it is still registered and reports whether it was.
// Removing a waiter that was already popped is a no-op, which lets Consume
// defer it unconditionally.
func (r *waiters[T]) remove(w *waiter[T]) bool {
	if !w.linked {
		return false
	}
	var prev *waiter[T]
	for cur := r.head; cur != nil; prev, cur = cur, cur.next {
		if cur != w {
			continue
		}
		if prev == nil {
			r.head = cur.next
		} else {
			prev.next = cur.next
		}
		if r.tail == cur {
			r.tail = prev
		}
		w.next = nil
		w.linked = false
		r.n--
		return true
	}
	return false
}

func (r *waiters[T]) len() int {
	return r.n
}
