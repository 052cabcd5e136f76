package flagshim

// Constructor builds an underlying flag client from a config.
type Constructor[C any] func(cfg *Config) (C, error)

// NewClientConstructor wraps base so that the config it receives always
// carries a storage provider. The client and error returned by base are
// passed back untouched.
func NewClientConstructor[C any](base Constructor[C], opts ...IntegrationOption) Constructor[C] {
	in := newIntegration(opts)
	return DecorateE[*Config, C](base, in.augment)
}
