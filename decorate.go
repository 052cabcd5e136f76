package flagshim

// Decorate returns a function with the signature of delegate that passes its
// input through augment before delegating.
func Decorate[In, Out any](delegate func(In) Out, augment func(In) In) func(In) Out {
	return func(in In) Out {
		return delegate(augment(in))
	}
}

// DecorateE is Decorate for delegates that can fail. Errors from delegate
// are returned unchanged.
func DecorateE[In, Out any](delegate func(In) (Out, error), augment func(In) In) func(In) (Out, error) {
	return func(in In) (Out, error) {
		return delegate(augment(in))
	}
}
