// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

// PanelFile is the on-disk representation of a protein panel and its
// batch resolution outcomes. A researcher can keep a named panel in a
// file, run it, and reload the outcomes later without re-querying.
type PanelFile struct {
	Name        string   `yaml:"name,omitempty"`
	Identifiers []string `yaml:"identifiers"`
	Sources     []string `yaml:"sources,omitempty"`
	Notes       string   `yaml:"notes,omitempty"`

	Outcomes map[string]types.ProteinIdentity `yaml:"outcomes,omitempty"`
	Summary  PanelSummary                     `yaml:"summary,omitempty"`
}

// PanelSummary stores batch statistics and a timestamp.
type PanelSummary struct {
	Total       int       `yaml:"total"`
	Resolved    int       `yaml:"resolved"`
	SuccessRate float64   `yaml:"success_rate"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// ReadPanelFile loads a panel from disk.
func ReadPanelFile(path string) (*PanelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading panel file: %w", err)
	}
	var pf PanelFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing panel file: %w", err)
	}
	if len(pf.Identifiers) == 0 {
		return nil, fmt.Errorf("%w: panel file %s lists no identifiers", types.ErrInvalidArgument, path)
	}
	return &pf, nil
}

// WritePanelFile saves a panel and its batch outcomes to a YAML file.
func WritePanelFile(path string, pf PanelFile, result BatchResult) error {
	pf.Outcomes = result.PerIdentifier
	pf.Summary = PanelSummary{
		Total:       result.Total(),
		Resolved:    result.Resolved(),
		SuccessRate: result.SuccessRate,
		Timestamp:   time.Now(),
	}

	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("marshaling panel file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
