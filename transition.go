package flagshim

// TransitionFunc schedules a state update. Renderers with a concurrent
// scheduler may defer fn; RunSync does not.
type TransitionFunc func(fn func())

// RunSync invokes fn once, immediately, on the calling goroutine.
func RunSync(fn func()) {
	fn()
}

// ResolveTransition returns f, or RunSync when f is nil.
func ResolveTransition(f TransitionFunc) TransitionFunc {
	if f != nil {
		return f
	}
	return RunSync
}
