// Package storage implements the flag client's storage provider on top of an
// asynchronous key-value primitive.
//
// The package offers two layers:
//   - [Primitive]: the raw string store, with [MemoryPrimitive] in process and
//     database, NATS and S3 backends in subpackages
//   - [Adapter]: a namespaced, JSON-encoding, fail-soft get/save provider
//
// # Basic Usage
//
//	a := storage.NewAdapter("my-app", nil) // shared in-memory primitive
//	_ = a.Save(ctx, "repo", toggles)       // writes "my-app:repo"
//	v, _ := a.Get(ctx, "repo")             // nil on a cold cache
//
// # Failure Handling
//
// Storage faults never reach the flag client by default. They are logged
// through the configured [slog.Logger] and emitted as [EventError]:
//
//	events := make(chan storage.Event, 16)
//	a := storage.NewAdapter("my-app", prim,
//	    storage.WithLogger(logger),
//	    storage.WithEvents(events),
//	)
//
// Operators that need to see failures can opt into [PolicyPropagate], which
// returns an [*OpError] wrapping the original error, and transient backend
// errors can be retried with [WithRetry].
//
// # Custom Primitives
//
// Implement Primitive for any other store:
//
//	type RedisPrimitive struct { ... }
//
//	func (r *RedisPrimitive) GetItem(ctx context.Context, key string) (string, bool, error) { ... }
//	func (r *RedisPrimitive) SetItem(ctx context.Context, key, value string) error { ... }
package storage
