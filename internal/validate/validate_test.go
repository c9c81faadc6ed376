// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

func testRegistry(t *testing.T, stringBody, biogridBody string, stringStatus int) *sources.Registry {
	t.Helper()
	stringSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(stringStatus)
		fmt.Fprint(w, stringBody)
	}))
	biogridSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, biogridBody)
	}))
	t.Cleanup(stringSrv.Close)
	t.Cleanup(biogridSrv.Close)

	return sources.NewRegistry(types.SourcesConfig{
		StringURL:  stringSrv.URL,
		BioGRIDURL: biogridSrv.URL,
	}, io.Discard)
}

// --- Input validation ---

func TestCrossValidateNoProteins(t *testing.T) {
	v := New(nil, types.ValidateConfig{}, io.Discard)
	_, err := v.CrossValidate(context.Background(), nil, nil, 0.4)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestCrossValidateBadThreshold(t *testing.T) {
	v := New(nil, types.ValidateConfig{}, io.Discard)
	for _, threshold := range []float64{1.5, -0.5, -2} {
		_, err := v.CrossValidate(context.Background(), []string{"TH"}, nil, threshold)
		if !errors.Is(err, types.ErrInvalidArgument) {
			t.Errorf("threshold %v: err = %v, want ErrInvalidArgument", threshold, err)
		}
	}
}

func TestCrossValidateThresholdUnset(t *testing.T) {
	reg := testRegistry(t, `{"network_data":[]}`, `{"interactions":[]}`, http.StatusOK)
	v := New(reg, types.ValidateConfig{}, io.Discard)

	report, err := v.CrossValidate(context.Background(), []string{"TH"}, nil, types.ThresholdUnset)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}
	if report.ConfidenceThreshold != 0.4 {
		t.Errorf("ConfidenceThreshold = %v, want the 0.4 default for the unset sentinel", report.ConfidenceThreshold)
	}
}

func TestCrossValidateRejectsPride(t *testing.T) {
	v := New(nil, types.ValidateConfig{}, io.Discard)
	_, err := v.CrossValidate(context.Background(), []string{"TH"}, []string{"pride"}, 0.4)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument before any network call", err)
	}
}

// --- Convergence ---

func TestCrossValidateConvergentEdge(t *testing.T) {
	reg := testRegistry(t,
		`{"network_data":[
			{"preferredName_A":"TH","preferredName_B":"DDC","score":950},
			{"preferredName_A":"TH","preferredName_B":"GCH1","score":700}
		]}`,
		`{"interactions":[
			{"OFFICIAL_SYMBOL_A":"DDC","OFFICIAL_SYMBOL_B":"TH","EXPERIMENTAL_SYSTEM":"Two-hybrid"},
			{"OFFICIAL_SYMBOL_A":"TH","OFFICIAL_SYMBOL_B":"SNCA","EXPERIMENTAL_SYSTEM":"Affinity"}
		]}`,
		http.StatusOK)
	v := New(reg, types.ValidateConfig{}, io.Discard)

	report, err := v.CrossValidate(context.Background(), []string{"TH", "DDC"}, nil, 0.4)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}

	if report.ConvergentCount != 1 {
		t.Fatalf("ConvergentCount = %d, want 1", report.ConvergentCount)
	}
	e := report.Convergent[0]
	if e.Pair() != "DDC|TH" {
		t.Errorf("convergent pair = %q, want DDC|TH regardless of reported order", e.Pair())
	}
	if !e.CrossValidated || len(e.Sources) != 2 {
		t.Errorf("convergent edge = %+v", e)
	}
	if e.Score != 950 {
		t.Errorf("convergent score = %f, want the scored source's 950", e.Score)
	}
	if report.Tier != types.TierHigh {
		t.Errorf("Tier = %q, want high with convergent evidence", report.Tier)
	}
	if report.TotalEdges != 4 {
		t.Errorf("TotalEdges = %d, want 4", report.TotalEdges)
	}
	if report.DatabaseSpecific["string"].EdgeCount != 2 {
		t.Errorf("string edge count = %d", report.DatabaseSpecific["string"].EdgeCount)
	}
}

func TestCrossValidateSourceFailure(t *testing.T) {
	reg := testRegistry(t, `boom`,
		`{"interactions":[{"OFFICIAL_SYMBOL_A":"TH","OFFICIAL_SYMBOL_B":"DDC"}]}`,
		http.StatusBadGateway)
	v := New(reg, types.ValidateConfig{}, io.Discard)

	report, err := v.CrossValidate(context.Background(), []string{"TH"}, nil, 0.4)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}
	if _, ok := report.DatabaseSpecific["string"]; ok {
		t.Error("failed source present in per-database results")
	}
	if len(report.Errors) == 0 {
		t.Error("failed source left no error note")
	}
	if report.ConvergentCount != 0 {
		t.Errorf("ConvergentCount = %d with one surviving source", report.ConvergentCount)
	}
	if report.Tier != types.TierModerate {
		t.Errorf("Tier = %q, want moderate without convergence", report.Tier)
	}
}

// --- Normalization ---

func TestNormalizeScoredDedup(t *testing.T) {
	edges := NormalizeScored([]sources.ScoredLink{
		{NameA: "TH", NameB: "DDC", Score: 700},
		{NameA: "DDC", NameB: "TH", Score: 950}, // same pair, other order
		{NameA: "DAT", NameB: "TH", Score: 800}, // alias canonicalized
	})
	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2", len(edges))
	}
	if edges[0].Pair() != "DDC|TH" || edges[0].Score != 950 {
		t.Errorf("edge[0] = %+v, want DDC|TH keeping max score 950", edges[0])
	}
	if edges[1].Pair() != "SLC6A3|TH" {
		t.Errorf("edge[1] pair = %q, want alias resolved to SLC6A3", edges[1].Pair())
	}
}

func TestNormalizeCurated(t *testing.T) {
	edges := NormalizeCurated([]sources.CuratedLink{
		{SymbolA: "SNCA", SymbolB: "TH"},
		{SymbolA: "TH", SymbolB: "SNCA"}, // duplicate
	})
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1", len(edges))
	}
	if edges[0].Score != 0 {
		t.Errorf("curated score = %f, want 0 (never fabricated)", edges[0].Score)
	}
}

// --- Convergent is order-independent ---

func TestConvergentOrderIndependent(t *testing.T) {
	a := types.NewEdge("TH", "DDC")
	a.Score = 900
	b := types.NewEdge("DDC", "TH")

	first := Convergent(map[string][]types.InteractionEdge{
		"string":  {a},
		"biogrid": {b},
	})
	second := Convergent(map[string][]types.InteractionEdge{
		"biogrid": {b},
		"string":  {a},
	})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("lens = %d, %d, want 1 each", len(first), len(second))
	}
	if first[0].Pair() != second[0].Pair() || first[0].Score != second[0].Score {
		t.Errorf("results differ across input orders: %+v vs %+v", first[0], second[0])
	}
}
