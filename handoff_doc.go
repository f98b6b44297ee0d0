package handoffq

// Advanced: Hand-off Protocol
//
// Store is the non-blocking half of blockingqueue.Queue. The blocking half
// is a registry of waiters, one per consumer goroutine parked in Consume.
// A single mutex guards both, and at every point where the mutex is free
// at most one of them is non-empty:
//
//   - Produce checks the registry first. If a consumer is waiting, the item
//     is written into that waiter's slot and only that waiter's condition
//     variable is signaled; the item never touches the Store. Otherwise the
//     item is pushed onto the Store.
//   - Consume checks the Store first. If it is empty, the caller registers a
//     waiter and waits on its private condition variable in a loop until the
//     delivered flag is set.
//
// Because a wake-up targets exactly one waiter, producing an item never wakes
// more than one consumer, and because the registry is FIFO the oldest waiter
// is always served first.
//
// Minimal outline of the consume side:
//
//  q.mu.Lock()
//  defer q.mu.Unlock()
//  if v, ok := q.store.Pop(); ok {
//      return v
//  }
//  w := newWaiter(&q.mu)
//  q.waiters.push(w)
//  defer q.waiters.remove(w)
//  for !w.delivered {
//      w.cond.Wait()
//  }
//  return w.item
