// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genes

import (
	"strings"
	"testing"
)

// --- Canonicalization ---

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical passthrough", "TH", "TH"},
		{"lowercase canonical", "th", "TH"},
		{"alias DAT", "DAT", "SLC6A3"},
		{"alias lowercase", "dat1", "SLC6A3"},
		{"alias PARK2", "PARK2", "PRKN"},
		{"alias parkin", "Parkin", "PRKN"},
		{"alias VMAT2", "VMAT2", "SLC18A2"},
		{"alias alpha-synuclein", "alpha-synuclein", "SNCA"},
		{"unknown uppercased", "abc1", "ABC1"},
		{"whitespace trimmed", "  th ", "TH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.in); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	for _, in := range []string{"TH", "dat", "PARK2", "novelx", "SNCA"} {
		once := Canonical(in)
		if twice := Canonical(once); twice != once {
			t.Errorf("Canonical not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

// --- Aliases ---

func TestAliases(t *testing.T) {
	got := Aliases("DAT")
	if got[0] != "DAT" {
		t.Errorf("first alias = %q, want the query itself", got[0])
	}
	if !contains(got, "SLC6A3") {
		t.Errorf("Aliases(DAT) = %v, missing canonical SLC6A3", got)
	}

	got = Aliases("TH")
	if !contains(got, "TYROSINE HYDROXYLASE") {
		t.Errorf("Aliases(TH) = %v, missing known alias", got)
	}

	got = Aliases("NOVELX")
	if len(got) != 1 || got[0] != "NOVELX" {
		t.Errorf("Aliases for unknown = %v, want just the query", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

// --- Taxonomy ---

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TH", CategorySynthesis},
		{"SLC6A3", CategoryTransport},
		{"DAT", CategoryTransport}, // alias resolves before lookup
		{"DRD2", CategoryReceptor},
		{"COMT", CategoryMetabolism},
		{"SNCA", CategoryPathology},
		{"NOVELX", CategoryUnknown},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.in); got != tt.want {
			t.Errorf("CategoryOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpectedPathwayEdgesSorted(t *testing.T) {
	if len(ExpectedPathwayEdges) != 5 {
		t.Fatalf("len(ExpectedPathwayEdges) = %d, want 5", len(ExpectedPathwayEdges))
	}
	for _, e := range ExpectedPathwayEdges {
		if e.ProteinA >= e.ProteinB {
			t.Errorf("expected edge %s-%s not in lexicographic order", e.ProteinA, e.ProteinB)
		}
	}
}

// --- Evidence ---

func TestRelevanceOf(t *testing.T) {
	if r := RelevanceOf("SNCA"); r.Tier != 1 || r.Score != 0.95 {
		t.Errorf("RelevanceOf(SNCA) = %+v, want tier 1 score 0.95", r)
	}
	if r := RelevanceOf("dat"); r.Tier != 2 {
		t.Errorf("RelevanceOf(dat) tier = %d, want 2 via alias SLC6A3", r.Tier)
	}
	if r := RelevanceOf("NOVELX"); r.Tier != 5 || r.Score != 0 || r.Evidence == "" {
		t.Errorf("RelevanceOf(NOVELX) = %+v, want explicit tier-5 record", r)
	}
}

func TestBiomarkerCandidates(t *testing.T) {
	if got := BiomarkerCandidates("high"); len(got) != 3 || got[0].Protein != "SNCA" {
		t.Errorf("high candidates = %v", got)
	}
	if got := BiomarkerCandidates("moderate"); len(got) != 4 {
		t.Errorf("moderate candidates = %v", got)
	}
	if got := BiomarkerCandidates("extreme"); got != nil {
		t.Errorf("unknown level = %v, want nil", got)
	}
}
