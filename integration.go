package flagshim

import "github.com/spetersoncode/flagshim/storage"

// integration holds the settings shared by NewFlagProvider and
// NewClientConstructor.
type integration struct {
	factory     AdapterFactory
	primitive   storage.Primitive
	adapterOpts []storage.Option
}

// IntegrationOption configures how the integrations build their default
// storage provider.
type IntegrationOption func(*integration)

// WithAdapterFactory replaces the default storage.Adapter factory.
// WithPrimitive and WithAdapterOptions are ignored when it is set.
func WithAdapterFactory(f AdapterFactory) IntegrationOption {
	return func(i *integration) {
		i.factory = f
	}
}

// WithPrimitive sets the primitive behind the default adapter.
// Defaults to storage.Default().
func WithPrimitive(p storage.Primitive) IntegrationOption {
	return func(i *integration) {
		i.primitive = p
	}
}

// WithAdapterOptions appends options passed to every default adapter.
func WithAdapterOptions(opts ...storage.Option) IntegrationOption {
	return func(i *integration) {
		i.adapterOpts = append(i.adapterOpts, opts...)
	}
}

func newIntegration(opts []IntegrationOption) *integration {
	i := &integration{}
	for _, opt := range opts {
		opt(i)
	}
	if i.factory == nil {
		i.factory = i.defaultFactory
	}
	return i
}

func (i *integration) defaultFactory(appName string) StorageProvider {
	return storage.NewAdapter(appName, i.primitive, i.adapterOpts...)
}

func (i *integration) augment(cfg *Config) *Config {
	return Augment(cfg, i.factory)
}
