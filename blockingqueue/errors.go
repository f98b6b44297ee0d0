package blockingqueue

import (
	"github.com/pkg/errors"
)

// ErrNotInitialized is returned by operations on a Queue that was not
// created with New.
var ErrNotInitialized = errors.New("handoffq: queue not initialized")

// ErrClosed is returned by operations on a Queue after Teardown.
var ErrClosed = errors.New("handoffq: queue closed")

// ErrConsumersBlocked is returned by Teardown when consumers are still
// blocked in Consume. The queue is left open.
var ErrConsumersBlocked = errors.New("handoffq: consumers blocked in Consume")

// ErrNilItem is returned by Produce when T is an interface type and the item
// is nil.
var ErrNilItem = errors.New("handoffq: nil item")

// IsUsageError reports whether err is a usage-precondition violation:
// calling an operation before New or after Teardown, tearing down with
// consumers blocked, or producing a nil item.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrNotInitialized) ||
		errors.Is(err, ErrClosed) ||
		errors.Is(err, ErrConsumersBlocked) ||
		errors.Is(err, ErrNilItem)
}
