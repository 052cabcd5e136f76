package flagshim

// AdapterFactory builds the storage provider injected for an application.
type AdapterFactory func(appName string) StorageProvider

// Augment returns a configuration guaranteed to carry a storage provider.
//
// A nil cfg is returned as nil. A cfg that already has a StorageProvider is
// returned unchanged and makeAdapter is not called. Otherwise makeAdapter is
// called exactly once with cfg.AppName and a copy of cfg carrying the result
// is returned. cfg itself is never modified.
func Augment(cfg *Config, makeAdapter AdapterFactory) *Config {
	if cfg == nil || cfg.StorageProvider != nil {
		return cfg
	}
	out := cfg.Clone()
	out.StorageProvider = makeAdapter(cfg.AppName)
	return out
}
