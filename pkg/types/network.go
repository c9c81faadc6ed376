// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// DiscoveryMode selects how broadly the seed protein set is drawn from
// the functional taxonomy before network expansion.
type DiscoveryMode string

const (
	// ModeMinimal seeds four fixed proteins: two synthesis, one
	// transport, one receptor.
	ModeMinimal DiscoveryMode = "minimal"
	// ModeStandard seeds synthesis + transport + the first two receptors
	// + the first metabolism protein.
	ModeStandard DiscoveryMode = "standard"
	// ModeComprehensive seeds the full taxonomy, plus the pathology set
	// when indirect proteins are requested.
	ModeComprehensive DiscoveryMode = "comprehensive"
	// ModeHypothesisFree seeds a deliberately small set and lets network
	// expansion do the discovery.
	ModeHypothesisFree DiscoveryMode = "hypothesis_free"
)

// ParseDiscoveryMode validates a mode string from user input.
func ParseDiscoveryMode(s string) (DiscoveryMode, error) {
	switch DiscoveryMode(s) {
	case ModeMinimal, ModeStandard, ModeComprehensive, ModeHypothesisFree:
		return DiscoveryMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown discovery mode %q (use minimal, standard, comprehensive, or hypothesis_free)", ErrInvalidArgument, s)
}

// ConfidenceDistribution summarizes edge scores in the primary source's
// native 0-1000 scale.
type ConfidenceDistribution struct {
	Total  int     `json:"total" yaml:"total"`
	Min    float64 `json:"min" yaml:"min"`
	Median float64 `json:"median" yaml:"median"`
	Max    float64 `json:"max" yaml:"max"`

	// Bucketed counts: high > 800, medium 400-800, low < 400.
	HighCount   int `json:"high_count" yaml:"high_count"`
	MediumCount int `json:"medium_count" yaml:"medium_count"`
	LowCount    int `json:"low_count" yaml:"low_count"`
}

// HubProtein is a node in the top connectivity percentile of a network.
type HubProtein struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Degree int    `json:"degree" yaml:"degree"`
}

// BridgingEdge is a high-confidence edge whose endpoints belong to two
// distinct functional categories.
type BridgingEdge struct {
	Edge      InteractionEdge `json:"edge" yaml:"edge"`
	CategoryA string          `json:"category_a" yaml:"category_a"`
	CategoryB string          `json:"category_b" yaml:"category_b"`
	Note      string          `json:"note" yaml:"note"`
}

// ExpectedEdge is one literature-curated pathway connection.
type ExpectedEdge struct {
	ProteinA string `json:"protein_a" yaml:"protein_a"`
	ProteinB string `json:"protein_b" yaml:"protein_b"`
	Pathway  string `json:"pathway" yaml:"pathway"`
}

// PathwayCompleteness reports how much of the literature-expected
// pathway was observed in the built network.
type PathwayCompleteness struct {
	CoveragePercent float64        `json:"coverage_percent" yaml:"coverage_percent"`
	Present         []ExpectedEdge `json:"present,omitempty" yaml:"present,omitempty"`
	Missing         []ExpectedEdge `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// FocalAssessment is the heuristic evaluation of one protein's position
// in the network.
type FocalAssessment struct {
	Protein               string         `json:"protein" yaml:"protein"`
	ConnectionsByCategory map[string]int `json:"connections_by_category,omitempty" yaml:"connections_by_category,omitempty"`
	BridgingConnections   int            `json:"bridging_connections" yaml:"bridging_connections"`
	CrossValidatedRatio   float64        `json:"cross_validated_ratio" yaml:"cross_validated_ratio"`
	Strength              string         `json:"strength" yaml:"strength"`
}

// Recommendation is one ranked follow-up target with its rationale.
type Recommendation struct {
	Rank      int    `json:"rank" yaml:"rank"`
	Target    string `json:"target" yaml:"target"`
	Rationale string `json:"rationale" yaml:"rationale"`
}

// InsightReport holds the heuristic findings over an analyzed network.
type InsightReport struct {
	Focal           FocalAssessment  `json:"focal" yaml:"focal"`
	Recommendations []Recommendation `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// NetworkSnapshot is the full result of one network discovery run. Per
// the partial-failure policy, a failed source is recorded in SourceStatus
// and Errors while the rest of the snapshot is built from what arrived.
type NetworkSnapshot struct {
	Mode                DiscoveryMode `json:"mode" yaml:"mode"`
	ConfidenceThreshold float64       `json:"confidence_threshold" yaml:"confidence_threshold"`

	SeedProteins       []string `json:"seed_proteins" yaml:"seed_proteins"`
	DiscoveredProteins []string `json:"discovered_proteins,omitempty" yaml:"discovered_proteins,omitempty"`

	Edges          []InteractionEdge `json:"edges,omitempty" yaml:"edges,omitempty"`
	CrossValidated []InteractionEdge `json:"cross_validated,omitempty" yaml:"cross_validated,omitempty"`

	Distribution       ConfidenceDistribution       `json:"distribution" yaml:"distribution"`
	HubProteins        []HubProtein                 `json:"hub_proteins,omitempty" yaml:"hub_proteins,omitempty"`
	FunctionalClusters map[string][]InteractionEdge `json:"functional_clusters,omitempty" yaml:"functional_clusters,omitempty"`
	BridgingEdges      []BridgingEdge               `json:"bridging_edges,omitempty" yaml:"bridging_edges,omitempty"`
	NovelEdges         []InteractionEdge            `json:"novel_edges,omitempty" yaml:"novel_edges,omitempty"`
	Completeness       PathwayCompleteness          `json:"completeness" yaml:"completeness"`
	Insights           InsightReport                `json:"insights" yaml:"insights"`

	// SourceStatus maps each queried source to "ok" or "unavailable".
	SourceStatus map[string]string `json:"source_status" yaml:"source_status"`
	Errors       []string          `json:"errors,omitempty" yaml:"errors,omitempty"`
}
