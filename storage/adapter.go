package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spetersoncode/flagshim/retry"
)

// Adapter exposes the get/save contract the flag client expects on top of an
// asynchronous Primitive. Every key is scoped to the adapter's prefix as
// "<prefix>:<key>" and values are stored as JSON text.
//
// Under the default PolicySwallow an Adapter never returns an error: a failed
// or corrupt read returns nil and a failed write returns nil, both after
// being logged and emitted as EventError.
//
// Adapter is safe for concurrent use if its Primitive is.
type Adapter struct {
	prefix    string
	primitive Primitive
	logger    *slog.Logger
	events    chan<- Event
	policy    ErrorPolicy
	retry     retry.Config
}

// NewAdapter creates an adapter namespaced by prefix. If primitive is nil the
// process-wide Default primitive is used.
func NewAdapter(prefix string, primitive Primitive, opts ...Option) *Adapter {
	if primitive == nil {
		primitive = Default()
	}
	a := &Adapter{
		prefix:    prefix,
		primitive: primitive,
		logger:    slog.Default(),
		policy:    PolicySwallow,
		retry:     retry.Disabled(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Prefix returns the namespace prefix fixed at construction.
func (a *Adapter) Prefix() string {
	return a.prefix
}

// Get reads and decodes the value stored under key. A nil value means the
// key is absent, empty, unreadable, or corrupt.
func (a *Adapter) Get(ctx context.Context, key string) (any, error) {
	nsKey := NamespacedKey(a.prefix, key)
	start := time.Now()

	raw, err := retry.Do(ctx, a.retry, func() (string, error) {
		v, ok, err := a.primitive.GetItem(ctx, nsKey)
		if err != nil || !ok {
			return "", err
		}
		return v, nil
	})
	if err != nil {
		return nil, a.fail(OpGet, nsKey, err, start)
	}
	if raw == "" {
		emit(a.events, Event{Type: EventGet, Op: OpGet, Namespace: a.prefix, Key: nsKey, Duration: time.Since(start)})
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, a.fail(OpGet, nsKey, &SerializationError{Key: nsKey, Err: err}, start)
	}

	emit(a.events, Event{Type: EventGet, Op: OpGet, Namespace: a.prefix, Key: nsKey, Hit: true, Duration: time.Since(start)})
	return v, nil
}

// Save encodes value as JSON and writes it under key.
func (a *Adapter) Save(ctx context.Context, key string, value any) error {
	nsKey := NamespacedKey(a.prefix, key)
	start := time.Now()

	data, err := json.Marshal(value)
	if err != nil {
		return a.fail(OpSave, nsKey, &SerializationError{Key: nsKey, Err: err}, start)
	}

	err = retry.DoErr(ctx, a.retry, func() error {
		return a.primitive.SetItem(ctx, nsKey, string(data))
	})
	if err != nil {
		return a.fail(OpSave, nsKey, err, start)
	}

	emit(a.events, Event{Type: EventSave, Op: OpSave, Namespace: a.prefix, Key: nsKey, Duration: time.Since(start)})
	return nil
}

// fail reports err and returns what the caller should see under the policy.
func (a *Adapter) fail(op Op, key string, err error, start time.Time) error {
	a.logger.Error("storage operation failed",
		"op", string(op),
		"key", key,
		"namespace", a.prefix,
		"error", err,
	)
	emit(a.events, Event{
		Type:      EventError,
		Op:        op,
		Namespace: a.prefix,
		Key:       key,
		Error:     err,
		Duration:  time.Since(start),
	})
	if a.policy == PolicyPropagate {
		return &OpError{Op: op, Key: key, Err: err}
	}
	return nil
}
