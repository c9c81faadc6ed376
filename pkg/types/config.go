// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ThresholdUnset is the sentinel a caller passes to select the stage's
// configured default confidence threshold. Any other value outside
// [0,1] is rejected.
const ThresholdUnset float64 = -1

// HTTPConfig holds shared HTTP settings for stages that call external
// source adapters.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "interactome-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourcesConfig holds the adapter endpoints and organism settings for
// the external database proxies.
type SourcesConfig struct {
	HTTPConfig `yaml:",inline"`

	// StringURL, BioGRIDURL and PrideURL are the base URLs of the
	// per-source proxy adapters.
	StringURL  string `json:"string_url" yaml:"string_url"`
	BioGRIDURL string `json:"biogrid_url" yaml:"biogrid_url"`
	PrideURL   string `json:"pride_url" yaml:"pride_url"`

	// Species is the NCBI taxon for the primary interaction source
	// (default 9606, human).
	Species int `json:"species" yaml:"species"`

	// Organism is the taxon string for the curated interaction source
	// (default "9606").
	Organism string `json:"organism" yaml:"organism"`

	// APIKeys maps a source name to the access key forwarded to its
	// adapter, loaded from .secrets/ at startup. Sources without a key
	// send none.
	APIKeys map[string]string `json:"-" yaml:"-"`
}

// ResolveConfig holds settings for entity resolution.
type ResolveConfig struct {
	// Timeout is the wall-clock deadline for one resolution's fan-out
	// (default 30s). Source calls still in flight when it elapses are
	// abandoned and their late results discarded.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// CacheTTL is how long a resolved identity stays cached (default 24h).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// Concurrency bounds simultaneous in-flight resolutions in a batch
	// (default 5).
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// ValidateConfig holds settings for interaction cross-validation.
type ValidateConfig struct {
	// Timeout is the wall-clock deadline for one validation's fan-out
	// (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// DefaultThreshold is used when the caller passes no threshold
	// (default 0.4).
	DefaultThreshold float64 `json:"default_threshold" yaml:"default_threshold"`

	// SampleEdges bounds the per-source edge sample kept in the report
	// (default 10).
	SampleEdges int `json:"sample_edges" yaml:"sample_edges"`
}

// NetworkConfig holds settings for network discovery.
type NetworkConfig struct {
	// Timeout is the wall-clock deadline for one network build (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxWhiteNodes bounds newly suggested proteins requested from the
	// primary source (default 20).
	MaxWhiteNodes int `json:"max_white_nodes" yaml:"max_white_nodes"`

	// SecondaryBound caps the discovered proteins forwarded to the
	// secondary source query (default 10).
	SecondaryBound int `json:"secondary_bound" yaml:"secondary_bound"`

	// DefaultThreshold is used when the caller passes no threshold
	// (default 0.7).
	DefaultThreshold float64 `json:"default_threshold" yaml:"default_threshold"`
}

// ArchiveConfig holds settings for the snapshot archive.
type ArchiveConfig struct {
	// Dir is the directory holding the archive database (default "archive").
	Dir string `json:"dir" yaml:"dir"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Sources  SourcesConfig  `json:"sources" yaml:"sources"`
	Resolve  ResolveConfig  `json:"resolve" yaml:"resolve"`
	Validate ValidateConfig `json:"validate" yaml:"validate"`
	Network  NetworkConfig  `json:"network" yaml:"network"`
	Archive  ArchiveConfig  `json:"archive" yaml:"archive"`
}
