package flagshim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/flagshim/storage"
)

// fakeProvider is a caller-supplied storage provider.
type fakeProvider struct {
	name string
}

func (f *fakeProvider) Get(context.Context, string) (any, error) { return nil, nil }
func (f *fakeProvider) Save(context.Context, string, any) error { return nil }

// countingFactory records every adapter it builds.
type countingFactory struct {
	appNames []string
	built    []*storage.Adapter
}

func (c *countingFactory) make(appName string) StorageProvider {
	c.appNames = append(c.appNames, appName)
	a := storage.NewAdapter(appName, storage.NewMemoryPrimitive())
	c.built = append(c.built, a)
	return a
}

func givenConfig() *Config {
	return &Config{
		AppName:   "my-app",
		ClientKey: "my-secret",
		URL:       "https://my-unleash-proxy",
	}
}

func TestAugment_NilConfig(t *testing.T) {
	f := &countingFactory{}

	assert.Nil(t, Augment(nil, f.make))
	assert.Empty(t, f.appNames)
}

func TestAugment_InjectsAdapter(t *testing.T) {
	f := &countingFactory{}
	cfg := givenConfig()

	out := Augment(cfg, f.make)

	require.NotNil(t, out)
	assert.Equal(t, []string{"my-app"}, f.appNames)
	require.Len(t, f.built, 1)
	assert.Same(t, f.built[0], out.StorageProvider)
	assert.Equal(t, "my-app", f.built[0].Prefix())

	want := givenConfig()
	want.StorageProvider = f.built[0]
	assert.Equal(t, want, out)
}

func TestAugment_DoesNotMutateInput(t *testing.T) {
	f := &countingFactory{}
	cfg := givenConfig()
	cfg.Extra = map[string]any{"custom": "x"}

	out := Augment(cfg, f.make)

	assert.Nil(t, cfg.StorageProvider)
	assert.NotSame(t, cfg, out)

	out.Extra["custom"] = "changed"
	assert.Equal(t, "x", cfg.Extra["custom"])
}

func TestAugment_KeepsCallerProvider(t *testing.T) {
	f := &countingFactory{}
	custom := &fakeProvider{name: "custom"}
	cfg := givenConfig()
	cfg.StorageProvider = custom

	out := Augment(cfg, f.make)

	assert.Empty(t, f.appNames)
	assert.Same(t, custom, out.StorageProvider)
	assert.Equal(t, cfg, out)
}

func TestAugment_PreservesOtherFields(t *testing.T) {
	f := &countingFactory{}
	cfg := &Config{
		AppName:         "my-app",
		ClientKey:       "my-secret",
		URL:             "https://my-unleash-proxy",
		Environment:     "production",
		RefreshInterval: 5 * time.Second,
		MetricsInterval: 30 * time.Second,
		DisableRefresh:  false,
		DisableMetrics:  true,
		Context: Context{
			UserID:     "u-1",
			Properties: map[string]string{"tier": "gold"},
		},
		Bootstrap: []Toggle{{Name: "new-ui", Enabled: true}},
		Extra:     map[string]any{"headerName": "Authorization", "customHeaders": map[string]string{"x": "y"}},
	}

	out := Augment(cfg, f.make)

	assert.NotNil(t, out.StorageProvider)
	withoutProvider := *out
	withoutProvider.StorageProvider = nil
	assert.Equal(t, *cfg, withoutProvider)
}

func TestAugment_EmptyAppName(t *testing.T) {
	f := &countingFactory{}

	out := Augment(&Config{}, f.make)

	assert.Equal(t, []string{""}, f.appNames)
	assert.NotNil(t, out.StorageProvider)
}

func TestAugment_EachCallBuildsOneAdapter(t *testing.T) {
	f := &countingFactory{}
	cfg := givenConfig()

	first := Augment(cfg, f.make)
	second := Augment(cfg, f.make)

	assert.Len(t, f.built, 2)
	assert.NotSame(t, first.StorageProvider, second.StorageProvider)
}

func TestConfigClone(t *testing.T) {
	var nilCfg *Config
	assert.Nil(t, nilCfg.Clone())

	cfg := givenConfig()
	cfg.Context.Properties = map[string]string{"a": "b"}
	cfg.Bootstrap = []Toggle{{Name: "t"}}

	clone := cfg.Clone()
	assert.Equal(t, cfg, clone)

	clone.Context.Properties["a"] = "c"
	clone.Bootstrap[0].Name = "u"
	assert.Equal(t, "b", cfg.Context.Properties["a"])
	assert.Equal(t, "t", cfg.Bootstrap[0].Name)
}
