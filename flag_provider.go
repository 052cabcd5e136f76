package flagshim

// ProviderProps are the inputs of a flag provider component.
type ProviderProps[N any] struct {
	// Config configures the client the provider creates. It may be nil when
	// Client is supplied.
	Config *Config

	// StartTransition wraps state updates. Defaults to RunSync.
	StartTransition TransitionFunc

	// StartClient controls whether the provider starts the client. Nil
	// leaves the decision to the provider.
	StartClient *bool

	// StopClient stops the client when the provider is torn down.
	StopClient bool

	// Client is a pre-built client used instead of constructing one.
	Client any

	// Extra carries props this package does not recognize.
	Extra map[string]any

	// Children is the content rendered inside the provider.
	Children N
}

// Component renders a provider from its props.
type Component[N any] func(props ProviderProps[N]) N

// NewFlagProvider wraps base so that every render receives a config carrying
// a storage provider and a non-nil StartTransition. All other props and
// Children reach base unchanged, and base's output is returned as-is.
func NewFlagProvider[N any](base Component[N], opts ...IntegrationOption) Component[N] {
	in := newIntegration(opts)
	return Decorate[ProviderProps[N], N](base, func(props ProviderProps[N]) ProviderProps[N] {
		props.Config = in.augment(props.Config)
		props.StartTransition = ResolveTransition(props.StartTransition)
		return props
	})
}
