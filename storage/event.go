package storage

import "time"

// EventType identifies the kind of event emitted by an Adapter.
type EventType string

const (
	// EventGet fires after a read completes, hit or miss.
	EventGet EventType = "get"

	// EventSave fires after a write completes successfully.
	EventSave EventType = "save"

	// EventError fires when a read or write fails. The failure is also logged.
	EventError EventType = "error"
)

// Event represents an observable storage operation.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Op is the adapter operation that produced the event.
	Op Op

	// Namespace is the adapter's prefix.
	Namespace string

	// Key is the namespaced key that was read or written.
	Key string

	// Hit reports whether a Get found a value.
	Hit bool

	// Error contains the original failure for EventError.
	Error error

	// Duration is the elapsed time of the operation, retries included.
	Duration time.Duration

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
