// Package flagshim lets a feature-flag client built for synchronous browser
// storage run on an asynchronous key-value store.
//
// The package injects a [storage.Adapter] into the client configuration
// whenever the caller has not supplied a [StorageProvider] of their own, at
// the two places a client comes to life:
//
//   - [NewFlagProvider]: wraps a provider component
//   - [NewClientConstructor]: wraps a client constructor
//
// # Client Construction
//
//	newClient := flagshim.NewClientConstructor(unleash.New)
//
//	c, err := newClient(&flagshim.Config{
//	    AppName:   "my-app",
//	    ClientKey: os.Getenv("UNLEASH_CLIENT_KEY"),
//	    URL:       "https://unleash.example.com/api/frontend",
//	})
//
// The client receives a config whose StorageProvider persists under keys
// prefixed with "my-app:". A config that already sets StorageProvider is
// forwarded untouched.
//
// # Provider Components
//
//	provider := flagshim.NewFlagProvider(baseProvider)
//	out := provider(flagshim.ProviderProps[View]{
//	    Config:   cfg,
//	    Children: app,
//	})
//
// StartTransition defaults to [RunSync] for renderers without a concurrent
// scheduler.
//
// # Choosing a Store
//
// By default adapters share the in-process [storage.Default] primitive.
// Point them at a persistent backend with [WithPrimitive]:
//
//	prim, err := sqlite.Open(ctx, "flags.db")
//	newClient := flagshim.NewClientConstructor(unleash.New,
//	    flagshim.WithPrimitive(prim),
//	    flagshim.WithAdapterOptions(storage.WithLogger(logger)),
//	)
//
// Storage failures never reach the flag client; see package storage.
package flagshim
