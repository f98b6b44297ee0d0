// Package handoffq provides the item store behind an unbounded FIFO queue
// with direct producer-to-consumer hand-off.
//
// Store is a generic singly linked FIFO. It does no locking of its own: the
// owner serializes every call, as blockingqueue.Queue does with its single
// mutex. Use package blockingqueue for a goroutine-safe queue whose Consume
// blocks until an item is produced.
package handoffq
