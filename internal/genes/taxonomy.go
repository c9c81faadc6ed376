// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genes

import "github.com/pdiddy/interactome-engine/pkg/types"

// Functional categories of the dopaminergic taxonomy. CategoryUnknown is
// an explicit variant for proteins outside the curated tables.
const (
	CategorySynthesis  = "synthesis"
	CategoryTransport  = "transport"
	CategoryReceptor   = "receptor"
	CategoryMetabolism = "metabolism"
	CategoryPathology  = "pathology"
	CategoryUnknown    = "unknown"
)

// Taxonomy protein sets, in curated order. Seed selection slices these,
// so the order is load-bearing.
var (
	SynthesisProteins  = []string{"TH", "DDC"}
	TransportProteins  = []string{"SLC6A3", "SLC18A2"}
	ReceptorProteins   = []string{"DRD1", "DRD2", "DRD3", "DRD4", "DRD5"}
	MetabolismProteins = []string{"COMT", "MAOA", "MAOB"}
	PathologyProteins  = []string{"SNCA", "PRKN", "LRRK2", "PINK1"}
)

// Categories lists the taxonomy categories in a stable order.
var Categories = []string{
	CategorySynthesis,
	CategoryTransport,
	CategoryReceptor,
	CategoryMetabolism,
	CategoryPathology,
}

var categoryOf = buildCategoryIndex()

func buildCategoryIndex() map[string]string {
	index := make(map[string]string)
	for category, set := range map[string][]string{
		CategorySynthesis:  SynthesisProteins,
		CategoryTransport:  TransportProteins,
		CategoryReceptor:   ReceptorProteins,
		CategoryMetabolism: MetabolismProteins,
		CategoryPathology:  PathologyProteins,
	} {
		for _, symbol := range set {
			index[symbol] = category
		}
	}
	return index
}

// CategoryOf returns the functional category of a symbol, canonicalizing
// first. Proteins outside the taxonomy report CategoryUnknown.
func CategoryOf(identifier string) string {
	if category, ok := categoryOf[Canonical(identifier)]; ok {
		return category
	}
	return CategoryUnknown
}

// ExpectedPathwayEdges is the literature-curated edge list used for
// pathway completeness scoring.
var ExpectedPathwayEdges = []types.ExpectedEdge{
	{ProteinA: "DDC", ProteinB: "TH", Pathway: "synthesis_pathway"},
	{ProteinA: "SLC6A3", ProteinB: "TH", Pathway: "synthesis_transport"},
	{ProteinA: "DRD2", ProteinB: "SLC6A3", Pathway: "transport_receptor"},
	{ProteinA: "COMT", ProteinB: "DRD2", Pathway: "receptor_metabolism"},
	{ProteinA: "SNCA", ProteinB: "TH", Pathway: "pathology_synthesis"},
}
