// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// InteractionEdge is an undirected protein interaction. ProteinA and
// ProteinB are canonical symbols stored in lexicographic order, so the
// same biological edge always produces the same value regardless of the
// order a source reported it in.
type InteractionEdge struct {
	ProteinA string `json:"protein_a" yaml:"protein_a"`
	ProteinB string `json:"protein_b" yaml:"protein_b"`

	// Sources lists the databases that reported this edge, sorted.
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`

	// Score is in the native scale of the reporting source (for the
	// primary interaction source that is 0-1000). Scores from different
	// sources are never mixed or rescaled into one another.
	Score float64 `json:"score,omitempty" yaml:"score,omitempty"`

	// CrossValidated is true when two or more sources reported the edge.
	CrossValidated bool `json:"cross_validated" yaml:"cross_validated"`
}

// NewEdge builds an edge from two canonical symbols, ordering the pair.
func NewEdge(a, b string) InteractionEdge {
	if b < a {
		a, b = b, a
	}
	return InteractionEdge{ProteinA: a, ProteinB: b}
}

// Pair returns the canonical "A|B" key used for set comparisons.
func (e InteractionEdge) Pair() string {
	return e.ProteinA + "|" + e.ProteinB
}

// Touches reports whether symbol is one of the edge endpoints.
func (e InteractionEdge) Touches(symbol string) bool {
	return e.ProteinA == symbol || e.ProteinB == symbol
}

// Other returns the endpoint opposite to symbol, or "" when symbol is
// not an endpoint.
func (e InteractionEdge) Other(symbol string) string {
	switch symbol {
	case e.ProteinA:
		return e.ProteinB
	case e.ProteinB:
		return e.ProteinA
	}
	return ""
}

// AddSource records a reporting database and updates CrossValidated.
func (e *InteractionEdge) AddSource(name string) {
	for _, s := range e.Sources {
		if s == name {
			return
		}
	}
	e.Sources = append(e.Sources, name)
	sort.Strings(e.Sources)
	e.CrossValidated = len(e.Sources) >= 2
}

// SourceEdges holds one database's contribution to a validation report.
// EdgeCount is the full count; Edges is a bounded sample.
type SourceEdges struct {
	EdgeCount int               `json:"edge_count" yaml:"edge_count"`
	Edges     []InteractionEdge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// ValidationTier is the coarse confidence tier of a validation report.
type ValidationTier string

const (
	// TierHigh means at least one edge was corroborated by two or more
	// sources.
	TierHigh ValidationTier = "high"
	// TierModerate means no convergent evidence was found.
	TierModerate ValidationTier = "moderate"
)

// ValidationReport is the outcome of cross-validating a protein set
// across interaction databases. A source that failed is omitted from
// DatabaseSpecific; its failure description lands in Errors instead.
type ValidationReport struct {
	Proteins            []string               `json:"proteins" yaml:"proteins"`
	SourcesChecked      []string               `json:"sources_checked" yaml:"sources_checked"`
	ConfidenceThreshold float64                `json:"confidence_threshold" yaml:"confidence_threshold"`
	DatabaseSpecific    map[string]SourceEdges `json:"database_specific" yaml:"database_specific"`

	// Convergent holds edges reported by two or more sources.
	Convergent []InteractionEdge `json:"convergent,omitempty" yaml:"convergent,omitempty"`

	// TotalEdges is the sum of per-source counts, not deduplicated.
	TotalEdges      int            `json:"total_edges" yaml:"total_edges"`
	ConvergentCount int            `json:"convergent_count" yaml:"convergent_count"`
	Tier            ValidationTier `json:"tier" yaml:"tier"`

	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}
