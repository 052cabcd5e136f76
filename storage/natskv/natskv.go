// Package natskv provides a storage primitive backed by a NATS JetStream
// key-value bucket.
package natskv

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/spetersoncode/flagshim/retry"
	"github.com/spetersoncode/flagshim/storage"
)

// DefaultBucket is the bucket used when none is configured.
const DefaultBucket = "flag_cache"

// Primitive stores cache records in a JetStream key-value bucket.
// Keys are base64url-encoded because ':' is not a legal KV key character.
type Primitive struct {
	kv   jetstream.KeyValue
	conn *nats.Conn
}

var _ storage.Primitive = (*Primitive)(nil)

// Connect dials url and binds to bucket, creating it if needed. The returned
// primitive owns the connection.
func Connect(ctx context.Context, url, bucket string, opts ...nats.Option) (*Primitive, error) {
	defaults := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	p, err := New(ctx, nc, bucket)
	if err != nil {
		nc.Close()
		return nil, err
	}
	p.conn = nc
	return p, nil
}

// New binds to bucket on an existing connection, creating it if needed.
// The caller keeps ownership of nc.
func New(ctx context.Context, nc *nats.Conn, bucket string) (*Primitive, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("jetstream context: %w", err)
	}
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "feature flag client cache",
		History:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("binding key-value bucket %s: %w", bucket, err)
	}
	return &Primitive{kv: kv}, nil
}

// EncodeKey maps a namespaced key to a legal KV key.
func EncodeKey(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}

// GetItem reads the value stored under key.
func (p *Primitive) GetItem(ctx context.Context, key string) (string, bool, error) {
	entry, err := p.kv.Get(ctx, EncodeKey(key))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, classify(fmt.Errorf("nats get %q: %w", key, err))
	}
	return string(entry.Value()), true, nil
}

// SetItem writes the value stored under key.
func (p *Primitive) SetItem(ctx context.Context, key, value string) error {
	if _, err := p.kv.Put(ctx, EncodeKey(key), []byte(value)); err != nil {
		return classify(fmt.Errorf("nats put %q: %w", key, err))
	}
	return nil
}

// Close closes the connection if the primitive owns it.
func (p *Primitive) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// classify marks NATS failures that clear up on their own as transient.
func classify(err error) error {
	switch {
	case errors.Is(err, nats.ErrTimeout),
		errors.Is(err, nats.ErrNoResponders),
		errors.Is(err, nats.ErrConnectionReconnecting),
		errors.Is(err, jetstream.ErrNoHeartbeat):
		return retry.MarkTransient(err)
	}
	return err
}
