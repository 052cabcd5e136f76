package flagshim

import (
	"maps"
	"slices"
	"time"
)

// Config holds the options passed through to the underlying flag client.
// Only StorageProvider and AppName are interpreted by this package; every
// other field, including Extra, is forwarded as-is.
type Config struct {
	// AppName identifies the application. It is also the namespace prefix of
	// the default storage provider.
	AppName string

	// ClientKey authenticates against the frontend API.
	ClientKey string

	// URL is the frontend API endpoint.
	URL string

	// Environment names the flag environment.
	Environment string

	// RefreshInterval is the toggle polling interval.
	RefreshInterval time.Duration

	// MetricsInterval is the metrics reporting interval.
	MetricsInterval time.Duration

	DisableRefresh bool
	DisableMetrics bool

	// Context is the initial evaluation context.
	Context Context

	// Bootstrap seeds the toggle repository before the first fetch.
	Bootstrap []Toggle

	// StorageProvider persists the toggle repository and session id.
	// If nil, the integrations inject a storage.Adapter namespaced by AppName.
	StorageProvider StorageProvider

	// Extra carries options this package does not recognize.
	Extra map[string]any
}

// Context is the evaluation context sent with toggle requests.
type Context struct {
	UserID        string            `json:"userId,omitempty"`
	SessionID     string            `json:"sessionId,omitempty"`
	RemoteAddress string            `json:"remoteAddress,omitempty"`
	Properties    map[string]string `json:"properties,omitempty"`
}

// Toggle is one entry of the cached toggle repository.
type Toggle struct {
	Name           string  `json:"name"`
	Enabled        bool    `json:"enabled"`
	Variant        Variant `json:"variant"`
	ImpressionData bool    `json:"impressionData"`
}

// Variant is the variant resolved for a toggle.
type Variant struct {
	Name    string   `json:"name"`
	Enabled bool     `json:"enabled"`
	Payload *Payload `json:"payload,omitempty"`
}

// Payload is a variant payload.
type Payload struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Clone returns a copy of c whose maps and slices are not shared with c.
// Values stored inside Extra are copied shallowly.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Context.Properties = maps.Clone(c.Context.Properties)
	out.Bootstrap = slices.Clone(c.Bootstrap)
	out.Extra = maps.Clone(c.Extra)
	return &out
}
