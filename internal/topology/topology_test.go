// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topology

import (
	"testing"

	"github.com/pdiddy/interactome-engine/internal/genes"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

func edge(a, b string, score float64) types.InteractionEdge {
	e := types.NewEdge(a, b)
	e.Score = score
	return e
}

// star returns edges connecting center to n generated neighbors.
func star(center string, neighbors ...string) []types.InteractionEdge {
	var edges []types.InteractionEdge
	for _, n := range neighbors {
		edges = append(edges, edge(center, n, 500))
	}
	return edges
}

// --- Graph and hubs ---

func TestGraphDegree(t *testing.T) {
	g := NewGraph([]types.InteractionEdge{
		edge("TH", "DDC", 900),
		edge("TH", "SLC6A3", 800),
		edge("DDC", "SLC6A3", 700),
		edge("TH", "SNCA", 600),
	})
	if got := g.Degree("TH"); got != 3 {
		t.Errorf("Degree(TH) = %d, want 3", got)
	}
	if got := g.Degree("SNCA"); got != 1 {
		t.Errorf("Degree(SNCA) = %d, want 1", got)
	}
	if got := g.Degree("ABSENT"); got != 0 {
		t.Errorf("Degree(ABSENT) = %d, want 0", got)
	}
}

func TestHubsTopFifth(t *testing.T) {
	// Ten nodes across these edges; ceil(10/5) = 2 hubs.
	var edges []types.InteractionEdge
	edges = append(edges, star("A", "C", "D", "E", "F", "G")...) // degree 5
	edges = append(edges, star("B", "D", "E", "F", "H")...)      // degree 4
	edges = append(edges, edge("I", "J", 500))

	g := NewGraph(edges)
	if n := len(g.Nodes()); n != 10 {
		t.Fatalf("nodes = %d, want 10", n)
	}
	hubs := g.Hubs()
	if len(hubs) != 2 {
		t.Fatalf("len(hubs) = %d, want 2", len(hubs))
	}
	if hubs[0].Symbol != "A" || hubs[0].Degree != 5 {
		t.Errorf("hubs[0] = %+v, want A degree 5", hubs[0])
	}
	if hubs[1].Symbol != "B" {
		t.Errorf("hubs[1] = %+v, want B", hubs[1])
	}
}

func TestHubsMinimumOne(t *testing.T) {
	g := NewGraph([]types.InteractionEdge{edge("TH", "DDC", 900)})
	if hubs := g.Hubs(); len(hubs) != 1 {
		t.Errorf("len(hubs) = %d, want at least 1 for a tiny network", len(hubs))
	}
}

func TestHubsEmptyGraph(t *testing.T) {
	if hubs := NewGraph(nil).Hubs(); hubs != nil {
		t.Errorf("hubs of empty graph = %v, want nil", hubs)
	}
}

func TestHubsTieBrokenByInsertion(t *testing.T) {
	// X and Y both have degree 2; X appears first in the edge list.
	g := NewGraph([]types.InteractionEdge{
		edge("X", "P", 500),
		edge("X", "Q", 500),
		edge("Y", "P", 500),
		edge("Y", "Q", 500),
	})
	hubs := g.Hubs()
	if hubs[0].Symbol != "X" {
		t.Errorf("hubs[0] = %+v, want insertion-order winner X", hubs[0])
	}
}

// --- Clusters ---

func TestClusters(t *testing.T) {
	edges := []types.InteractionEdge{
		edge("TH", "DDC", 900),      // synthesis-synthesis
		edge("DRD1", "DRD2", 800),   // receptor-receptor
		edge("TH", "SLC6A3", 700),   // cross-category, excluded
		edge("TH", "NOVELX", 600),   // unknown, excluded
		edge("SNCA", "NOVELX", 500), // unknown, excluded
	}
	got := clusters(edges)

	if len(got[genes.CategorySynthesis]) != 1 {
		t.Errorf("synthesis cluster = %v", got[genes.CategorySynthesis])
	}
	if len(got[genes.CategoryReceptor]) != 1 {
		t.Errorf("receptor cluster = %v", got[genes.CategoryReceptor])
	}
	if len(got[genes.CategoryTransport]) != 0 {
		t.Errorf("transport cluster = %v, want empty", got[genes.CategoryTransport])
	}
	// Every category key exists even when empty.
	for _, category := range genes.Categories {
		if _, ok := got[category]; !ok {
			t.Errorf("category %q missing from cluster map", category)
		}
	}
}

// --- Bridging ---

func TestBridgingThresholdBoundary(t *testing.T) {
	edges := []types.InteractionEdge{
		edge("SNCA", "TH", 700),     // pathology-synthesis, exactly at the cut
		edge("PRKN", "DDC", 699),    // just below, excluded
		edge("SLC6A3", "DRD2", 850), // transport-receptor
		edge("TH", "DDC", 999),      // same category, excluded
		edge("TH", "NOVELX", 999),   // unknown category, excluded
	}
	got := bridging(edges, 0.7)

	if len(got) != 2 {
		t.Fatalf("len(bridging) = %d, want 2: %+v", len(got), got)
	}
	if got[0].Note != "direct pathology-synthesis connection" {
		t.Errorf("pathology-synthesis note = %q", got[0].Note)
	}
	// Pair sorts to DRD2|SLC6A3, so the receptor side is A.
	if got[1].CategoryA != genes.CategoryReceptor || got[1].CategoryB != genes.CategoryTransport {
		t.Errorf("bridge categories = %s/%s", got[1].CategoryA, got[1].CategoryB)
	}
}

// --- Completeness ---

func TestCompleteness(t *testing.T) {
	edges := []types.InteractionEdge{
		edge("TH", "DDC", 900),    // expected: DDC|TH
		edge("SLC6A3", "TH", 850), // expected: SLC6A3|TH
		edge("TH", "NOVELX", 500), // not expected
	}
	c := completeness(edges)

	if len(c.Present) != 2 {
		t.Errorf("present = %v, want 2 expected edges found", c.Present)
	}
	if len(c.Missing) != 3 {
		t.Errorf("missing = %v, want 3", c.Missing)
	}
	if c.CoveragePercent != 40 {
		t.Errorf("coverage = %f, want 40", c.CoveragePercent)
	}
}

func TestCompletenessEmpty(t *testing.T) {
	c := completeness(nil)
	if c.CoveragePercent != 0 || len(c.Missing) != len(genes.ExpectedPathwayEdges) {
		t.Errorf("empty completeness = %+v", c)
	}
}

// --- Analyze ---

func TestAnalyze(t *testing.T) {
	edges := []types.InteractionEdge{
		edge("TH", "DDC", 900),
		edge("TH", "NOVELX", 750),
		edge("SNCA", "TH", 800),
	}
	a := Analyze(edges, []string{"NOVELX"}, 0.7)

	if a.TotalProteins != 4 || a.TotalEdges != 3 {
		t.Errorf("totals = %d proteins, %d edges", a.TotalProteins, a.TotalEdges)
	}
	if len(a.Novel) != 1 || a.Novel[0].Pair() != "NOVELX|TH" {
		t.Errorf("novel = %+v, want the white-node edge only", a.Novel)
	}
	if len(a.Bridging) != 1 || a.Bridging[0].Note != "direct pathology-synthesis connection" {
		t.Errorf("bridging = %+v", a.Bridging)
	}
	if len(a.Hubs) == 0 || a.Hubs[0].Symbol != "TH" {
		t.Errorf("hubs = %+v, want TH first", a.Hubs)
	}
}
