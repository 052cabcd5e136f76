// Command flagcache reads and writes the feature flag client's cached
// records in any supported storage backend.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/flagshim"
	"github.com/spetersoncode/flagshim/retry"
	"github.com/spetersoncode/flagshim/storage"
)

// app carries the state shared by subcommands for one invocation.
type app struct {
	appName string
	backend string

	adapter *storage.Adapter
	closeFn func() error
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "flagcache",
		Short:         "Inspect and edit cached feature flag records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context(), stderr)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeFn != nil {
				return a.closeFn()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.appName, "app", "", "application name used as the key namespace (overrides FLAGCACHE_APP_NAME)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend: memory, sqlite, postgres, nats, s3 (overrides FLAGCACHE_BACKEND)")

	root.AddCommand(
		newGetCmd(a, stdout),
		newPutCmd(a),
		newSessionCmd(a, stdout),
	)
	return root
}

func (a *app) open(ctx context.Context, stderr io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if a.appName != "" {
		cfg.AppName = a.appName
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	logger.Debug("opening backend", "backend", cfg.Backend, "app", cfg.AppName)

	prim, closeFn, err := openPrimitive(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	a.closeFn = closeFn

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = cfg.RetryAttempts
	a.adapter = storage.NewAdapter(cfg.AppName, prim,
		storage.WithLogger(logger),
		storage.WithErrorPolicy(storage.PolicyPropagate),
		storage.WithRetry(retryCfg),
	)
	return nil
}

func newGetCmd(a *app, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a cached record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.adapter.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if v == nil {
				return nil
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, string(out))
			return nil
		},
	}
}

func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put <key> <json>",
		Short: "Store a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v any
			if err := json.Unmarshal([]byte(args[1]), &v); err != nil {
				return fmt.Errorf("value is not valid JSON: %w", err)
			}
			return a.adapter.Save(cmd.Context(), args[0], v)
		},
	}
}

func newSessionCmd(a *app, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the persisted session id, creating one if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := flagshim.EnsureSessionID(cmd.Context(), a.adapter)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, id)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "flagcache:", err)
		os.Exit(1)
	}
}
