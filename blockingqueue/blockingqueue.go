package blockingqueue

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	base "github.com/xyhelper/handoffq"
)

type state uint8

const (
	stateUninitialized state = iota
	stateOpen
	stateClosed
)

// Queue is an unbounded, blocking, concurrency-safe FIFO. Produce never
// blocks; Consume blocks until an item is available.
//
// When consumers are blocked, Produce hands the item directly to the one that
// has waited longest and wakes only that goroutine; the item is never stored.
// Otherwise the item is appended to the backing store. The store and the set
// of blocked consumers are never both non-empty.
//
// All methods are safe for concurrent use by multiple goroutines. The zero
// value is not ready for use; construct via New. A Queue must not be copied
// after first use.
type Queue[T any] struct {
	mu       sync.Mutex
	store    *base.Store[T]
	waiters  waiters[T]
	state    state
	consumed atomic.Uint64
}

// New creates a new blocking queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		store: base.NewStore[T](),
		state: stateOpen,
	}
}

// Produce appends item to the tail, or hands it to the longest-blocked
// consumer if there is one. It never blocks and wakes at most one goroutine.
//
// Produce fails with ErrNilItem when T is an interface type and item is nil,
// and with ErrNotInitialized or ErrClosed on a queue that is not open.
func (b *Queue[T]) Produce(item T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkLocked("produce"); err != nil {
		return err
	}
	if isNil(item) {
		return errors.Wrap(ErrNilItem, "produce")
	}
	b.produceLocked(item)
	return nil
}

// ProduceMany produces items in order under a single lock acquisition.
// Blocked consumers are served first, oldest first; the remaining items are
// appended to the tail. If any item is rejected nothing is produced.
func (b *Queue[T]) ProduceMany(items ...T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkLocked("produce many"); err != nil {
		return err
	}
	for i, v := range items {
		if isNil(v) {
			return errors.Wrapf(ErrNilItem, "produce many: item %d", i)
		}
	}
	for _, v := range items {
		b.produceLocked(v)
	}
	return nil
}

// REQUIRES: b.mu is held
func (b *Queue[T]) produceLocked(item T) {
	if w := b.waiters.pop(); w != nil {
		w.deliver(item)
		return
	}
	b.store.Push(item)
}

// Consume removes and returns the head item, blocking until one is produced
// if the queue is empty. There is no timeout: a blocked Consume returns only
// once a Produce hands it an item.
//
// Consume fails with ErrNotInitialized or ErrClosed on a queue that is not
// open; it never fails once it has started waiting.
func (b *Queue[T]) Consume() (T, error) {
	var zero T
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkLocked("consume"); err != nil {
		return zero, err
	}
	// Fast path
	if v, ok := b.store.Pop(); ok {
		b.consumed.Add(1)
		return v, nil
	}

	w := newWaiter[T](&b.mu)
	b.waiters.push(w)
	defer b.waiters.remove(w)
	for !w.delivered {
		w.cond.Wait() // releases and re-acquires b.mu
	}
	v := w.item
	w.item = zero
	b.consumed.Add(1)
	return v, nil
}

// TryConsume removes and returns the head item without blocking.
// ok is false if the queue is empty or not open.
func (b *Queue[T]) TryConsume() (v T, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != stateOpen {
		return
	}
	v, ok = b.store.Pop()
	if ok {
		b.consumed.Add(1)
	}
	return
}

// ConsumedCount returns the number of items returned by Consume and
// TryConsume so far. It does not take the lock, so it may trail a Consume
// that is completing concurrently, but every returned item is counted
// exactly once.
func (b *Queue[T]) ConsumedCount() uint64 {
	return b.consumed.Load()
}

// Len returns the number of items held in the store.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.store == nil {
		return 0
	}
	return b.store.Len()
}

// Waiting returns the number of consumers blocked in Consume.
func (b *Queue[T]) Waiting() int {
	b.mu.Lock()
	n := b.waiters.len()
	b.mu.Unlock()
	return n
}

// Teardown closes the queue and drops any items still stored.
//
// Tearing down while consumers are blocked in Consume is a usage error:
// Teardown returns ErrConsumersBlocked and leaves the queue open, so a later
// Produce can still release them. After a successful Teardown every
// operation except ConsumedCount, Len and Waiting fails with ErrClosed.
func (b *Queue[T]) Teardown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkLocked("teardown"); err != nil {
		return err
	}
	if n := b.waiters.len(); n > 0 {
		logg("teardown refused: %d consumers blocked", n)
		return errors.Wrapf(ErrConsumersBlocked, "teardown: %d waiting", n)
	}
	if dropped := b.store.Clear(); dropped > 0 {
		logg("teardown dropped %d items", dropped)
	}
	b.state = stateClosed
	return nil
}

// REQUIRES: b.mu is held
func (b *Queue[T]) checkLocked(op string) error {
	switch b.state {
	case stateOpen:
		return nil
	case stateClosed:
		logg("%s on closed queue", op)
		return errors.Wrap(ErrClosed, op)
	default:
		logg("%s on uninitialized queue", op)
		return errors.Wrap(ErrNotInitialized, op)
	}
}

// isNil reports whether v is a nil interface value. Typed nil pointers are
// opaque references and are not rejected.
func isNil[T any](v T) bool {
	return any(v) == nil
}
