// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topology computes graph structure over a discovered
// interaction network: degree-based hubs, functional clusters,
// cross-category bridging edges, and literature pathway coverage.
// Implements: prd005-topology (R1-R4).
package topology

import (
	"fmt"
	"sort"

	"github.com/pdiddy/interactome-engine/internal/genes"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

// hubFraction selects the top fifth of nodes by degree as hubs.
const hubFraction = 5

// Graph is an undirected adjacency view over an edge list. Node order
// is first-seen insertion order, which breaks degree ties.
type Graph struct {
	order []string
	adj   map[string]map[string]struct{}
}

// NewGraph builds the adjacency map from canonicalized edges.
func NewGraph(edges []types.InteractionEdge) *Graph {
	g := &Graph{adj: make(map[string]map[string]struct{})}
	for _, e := range edges {
		g.addNode(e.ProteinA)
		g.addNode(e.ProteinB)
		g.adj[e.ProteinA][e.ProteinB] = struct{}{}
		g.adj[e.ProteinB][e.ProteinA] = struct{}{}
	}
	return g
}

func (g *Graph) addNode(symbol string) {
	if _, ok := g.adj[symbol]; ok {
		return
	}
	g.adj[symbol] = make(map[string]struct{})
	g.order = append(g.order, symbol)
}

// Nodes returns the node symbols in insertion order.
func (g *Graph) Nodes() []string { return g.order }

// Degree returns the number of distinct neighbors of a node.
func (g *Graph) Degree(symbol string) int { return len(g.adj[symbol]) }

// Hubs returns the top ceil(n/5) nodes by degree, minimum one, with
// ties broken by insertion order.
func (g *Graph) Hubs() []types.HubProtein {
	n := len(g.order)
	if n == 0 {
		return nil
	}
	count := (n + hubFraction - 1) / hubFraction
	if count < 1 {
		count = 1
	}

	ranked := make([]types.HubProtein, 0, n)
	for _, symbol := range g.order {
		ranked = append(ranked, types.HubProtein{Symbol: symbol, Degree: g.Degree(symbol)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Degree > ranked[j].Degree })
	return ranked[:count]
}

// Analysis is the complete topology report over one network.
type Analysis struct {
	TotalProteins int
	TotalEdges    int
	Hubs          []types.HubProtein
	Clusters      map[string][]types.InteractionEdge
	Bridging      []types.BridgingEdge
	Novel         []types.InteractionEdge
	Completeness  types.PathwayCompleteness
}

// Analyze runs the full structural analysis. threshold is in [0,1] and
// is rescaled to the primary source's native units for the bridging
// cut; discovered marks white-node proteins whose edges are novel
// regardless of category.
func Analyze(edges []types.InteractionEdge, discovered []string, threshold float64) Analysis {
	g := NewGraph(edges)

	discoveredSet := make(map[string]struct{}, len(discovered))
	for _, d := range discovered {
		discoveredSet[d] = struct{}{}
	}

	a := Analysis{
		TotalProteins: len(g.Nodes()),
		TotalEdges:    len(edges),
		Hubs:          g.Hubs(),
		Clusters:      clusters(edges),
		Bridging:      bridging(edges, threshold),
		Completeness:  completeness(edges),
	}

	for _, e := range edges {
		_, novelA := discoveredSet[e.ProteinA]
		_, novelB := discoveredSet[e.ProteinB]
		if novelA || novelB {
			a.Novel = append(a.Novel, e)
		}
	}
	return a
}

// clusters groups edges whose endpoints share a functional category.
func clusters(edges []types.InteractionEdge) map[string][]types.InteractionEdge {
	out := make(map[string][]types.InteractionEdge, len(genes.Categories))
	for _, category := range genes.Categories {
		out[category] = nil
	}
	for _, e := range edges {
		catA := genes.CategoryOf(e.ProteinA)
		catB := genes.CategoryOf(e.ProteinB)
		if catA == catB && catA != genes.CategoryUnknown {
			out[catA] = append(out[catA], e)
		}
	}
	return out
}

// bridging flags edges spanning two distinct known categories at or
// above the threshold in the source's native scale. Pathology-synthesis
// bridges get a dedicated note: they are the paradigm-relevant pattern
// the discovery workflow looks for.
func bridging(edges []types.InteractionEdge, threshold float64) []types.BridgingEdge {
	cut := threshold * 1000
	var out []types.BridgingEdge
	for _, e := range edges {
		catA := genes.CategoryOf(e.ProteinA)
		catB := genes.CategoryOf(e.ProteinB)
		if catA == catB || catA == genes.CategoryUnknown || catB == genes.CategoryUnknown {
			continue
		}
		if e.Score < cut {
			continue
		}
		note := fmt.Sprintf("high-confidence %s-%s bridge", catA, catB)
		if isPathologySynthesis(catA, catB) {
			note = "direct pathology-synthesis connection"
		}
		out = append(out, types.BridgingEdge{Edge: e, CategoryA: catA, CategoryB: catB, Note: note})
	}
	return out
}

func isPathologySynthesis(catA, catB string) bool {
	return (catA == genes.CategoryPathology && catB == genes.CategorySynthesis) ||
		(catA == genes.CategorySynthesis && catB == genes.CategoryPathology)
}

// completeness checks the literature-expected edges against the
// observed pair set.
func completeness(edges []types.InteractionEdge) types.PathwayCompleteness {
	observed := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		observed[e.Pair()] = struct{}{}
	}

	var c types.PathwayCompleteness
	for _, expected := range genes.ExpectedPathwayEdges {
		pair := types.NewEdge(expected.ProteinA, expected.ProteinB).Pair()
		if _, ok := observed[pair]; ok {
			c.Present = append(c.Present, expected)
		} else {
			c.Missing = append(c.Missing, expected)
		}
	}
	if total := len(genes.ExpectedPathwayEdges); total > 0 {
		c.CoveragePercent = float64(len(c.Present)) / float64(total) * 100
	}
	return c
}
