// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

func TestPanelFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.yaml")

	pf := PanelFile{
		Name:        "dopamine core",
		Identifiers: []string{"TH", "DAT", "DRD2"},
		Sources:     []string{"string", "biogrid"},
		Notes:       "weekly screen",
	}
	result := BatchResult{
		PerIdentifier: map[string]types.ProteinIdentity{
			"TH":   {Query: "TH", CanonicalSymbol: "TH", Status: types.StatusResolved},
			"DAT":  {Query: "DAT", CanonicalSymbol: "SLC6A3", Status: types.StatusResolved},
			"DRD2": {Query: "DRD2", CanonicalSymbol: "DRD2", Status: types.StatusNotFound},
		},
		SuccessRate: 2.0 / 3.0,
	}

	if err := WritePanelFile(path, pf, result); err != nil {
		t.Fatalf("WritePanelFile: %v", err)
	}

	got, err := ReadPanelFile(path)
	if err != nil {
		t.Fatalf("ReadPanelFile: %v", err)
	}
	if got.Name != pf.Name || len(got.Identifiers) != 3 {
		t.Errorf("panel = %+v", got)
	}
	if got.Summary.Total != 3 || got.Summary.Resolved != 2 {
		t.Errorf("summary = %+v, want total 3 resolved 2", got.Summary)
	}
	if got.Outcomes["DAT"].CanonicalSymbol != "SLC6A3" {
		t.Errorf("outcome DAT = %+v", got.Outcomes["DAT"])
	}
	if got.Outcomes["DRD2"].Status != types.StatusNotFound {
		t.Errorf("outcome DRD2 status = %q", got.Outcomes["DRD2"].Status)
	}
}

func TestReadPanelFileNoIdentifiers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("name: empty\nidentifiers: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadPanelFile(path)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestReadPanelFileMissing(t *testing.T) {
	_, err := ReadPanelFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
