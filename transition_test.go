package flagshim

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSync_InvokesOnceBeforeReturning(t *testing.T) {
	calls := 0

	RunSync(func() { calls++ })

	assert.Equal(t, 1, calls)
}

func TestResolveTransition_Default(t *testing.T) {
	f := ResolveTransition(nil)

	assert.NotNil(t, f)
	calls := 0
	f(func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestResolveTransition_KeepsCallerFunc(t *testing.T) {
	customCalls := 0
	custom := TransitionFunc(func(fn func()) {
		customCalls++
		fn()
	})

	f := ResolveTransition(custom)

	assert.Equal(t, reflect.ValueOf(custom).Pointer(), reflect.ValueOf(f).Pointer())
	inner := 0
	f(func() { inner++ })
	assert.Equal(t, 1, customCalls)
	assert.Equal(t, 1, inner)
}
