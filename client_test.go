package flagshim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseClient stands in for the underlying flag client.
type baseClient struct {
	cfg *Config
}

// recordingConstructor captures the configs it is given.
type recordingConstructor struct {
	configs []*Config
	err     error
}

func (r *recordingConstructor) build(cfg *Config) (*baseClient, error) {
	r.configs = append(r.configs, cfg)
	if r.err != nil {
		return nil, r.err
	}
	return &baseClient{cfg: cfg}, nil
}

func TestClientConstructor_AddsAdapterWhenMissing(t *testing.T) {
	base := &recordingConstructor{}
	f := &countingFactory{}
	newClient := NewClientConstructor(base.build, WithAdapterFactory(f.make))

	c, err := newClient(givenConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"my-app"}, f.appNames)
	require.Len(t, base.configs, 1)
	assert.Same(t, base.configs[0], c.cfg)

	want := givenConfig()
	want.StorageProvider = f.built[0]
	assert.Equal(t, want, c.cfg)
}

func TestClientConstructor_PreservesProvidedStorageProvider(t *testing.T) {
	base := &recordingConstructor{}
	f := &countingFactory{}
	newClient := NewClientConstructor(base.build, WithAdapterFactory(f.make))

	custom := &fakeProvider{name: "custom"}
	cfg := givenConfig()
	cfg.StorageProvider = custom

	c, err := newClient(cfg)
	require.NoError(t, err)

	assert.Empty(t, f.appNames)
	assert.Same(t, custom, c.cfg.StorageProvider)
	assert.Equal(t, cfg, c.cfg)
}

func TestClientConstructor_PassesErrorsThrough(t *testing.T) {
	boom := errors.New("invalid url")
	base := &recordingConstructor{err: boom}
	newClient := NewClientConstructor(base.build)

	c, err := newClient(givenConfig())

	assert.Nil(t, c)
	assert.Same(t, boom, err)
}

func TestClientConstructor_NilConfig(t *testing.T) {
	base := &recordingConstructor{}
	f := &countingFactory{}
	newClient := NewClientConstructor(base.build, WithAdapterFactory(f.make))

	_, err := newClient(nil)
	require.NoError(t, err)

	assert.Nil(t, base.configs[0])
	assert.Empty(t, f.appNames)
}
