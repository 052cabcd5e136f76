package main

import (
	"context"
	"fmt"

	"github.com/spetersoncode/flagshim/storage"
	"github.com/spetersoncode/flagshim/storage/natskv"
	"github.com/spetersoncode/flagshim/storage/postgres"
	s3store "github.com/spetersoncode/flagshim/storage/s3"
	"github.com/spetersoncode/flagshim/storage/sqlite"
)

// openPrimitive opens the backend selected by cfg. The returned close
// function is never nil.
func openPrimitive(ctx context.Context, cfg *Config) (storage.Primitive, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "memory":
		return storage.Default(), noop, nil
	case "sqlite":
		p, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	case "postgres":
		p, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	case "nats":
		p, err := natskv.Connect(ctx, cfg.NATSURL, cfg.NATSBucket)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	case "s3":
		p, err := s3store.NewFromConfig(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			return nil, noop, err
		}
		return p, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown backend: %s", cfg.Backend)
}
