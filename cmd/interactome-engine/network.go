// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/interactome-engine/internal/archive"
	"github.com/pdiddy/interactome-engine/internal/network"
	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Build and analyze an interaction network",
	Long: `Network seeds a protein set according to the discovery mode, expands
it through the primary interaction source (optionally admitting white
nodes), corroborates edges against the curated source, and runs the
topology and insight analysis over the merged network.

Modes: minimal, standard, comprehensive, hypothesis_free.`,
	RunE: runNetwork,
}

func init() {
	networkCmd.Flags().String("mode", string(types.ModeStandard), "discovery mode")
	networkCmd.Flags().Float64("threshold", types.ThresholdUnset, "confidence threshold in [0,1] (default 0.7)")
	networkCmd.Flags().Bool("include-indirect", false, "widen seeds with pathology-linked proteins")
	networkCmd.Flags().String("focal", "", "protein assessed in the insight report (default SNCA)")
	networkCmd.Flags().Duration("timeout", 0, "network build deadline (default 60s)")
	networkCmd.Flags().Int("max-white-nodes", 0, "white-node budget for primary expansion (default 20)")
	networkCmd.Flags().Bool("save", false, "archive the network snapshot")
	networkCmd.Flags().String("label", "", "label for the archived snapshot")
	networkCmd.Flags().Bool("json", false, "output the snapshot as JSON")

	rootCmd.AddCommand(networkCmd)
}

func runNetwork(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	includeIndirect, _ := cmd.Flags().GetBool("include-indirect")
	focal, _ := cmd.Flags().GetString("focal")

	cfg := engineConfig().Network
	if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}
	if n, _ := cmd.Flags().GetInt("max-white-nodes"); n > 0 {
		cfg.MaxWhiteNodes = n
	}

	reg := sources.NewRegistry(sourcesConfig(cmd), os.Stderr)
	builder := network.New(reg, cfg, os.Stderr)

	snapshot, err := builder.Build(context.Background(), network.Request{
		Mode:            types.DiscoveryMode(mode),
		Threshold:       threshold,
		IncludeIndirect: includeIndirect,
		Focal:           focal,
	})
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		label, _ := cmd.Flags().GetString("label")
		if label == "" {
			label = string(snapshot.Mode)
		}
		id, err := saveSnapshot(cmd, archive.KindNetwork, label, snapshot)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Archived network snapshot as %d\n", id)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}
	return formatNetworkOutput(snapshot)
}

func formatNetworkOutput(s types.NetworkSnapshot) error {
	fmt.Fprintf(os.Stdout, "Mode: %s  Threshold: %.2f\n", s.Mode, s.ConfidenceThreshold)
	fmt.Fprintf(os.Stdout, "Seeds (%d): %s\n", len(s.SeedProteins), strings.Join(s.SeedProteins, ", "))
	if len(s.DiscoveredProteins) > 0 {
		fmt.Fprintf(os.Stdout, "Discovered (%d): %s\n", len(s.DiscoveredProteins), strings.Join(s.DiscoveredProteins, ", "))
	}
	fmt.Fprintf(os.Stdout, "Edges: %d (%d cross-validated)\n\n", len(s.Edges), len(s.CrossValidated))

	d := s.Distribution
	fmt.Fprintf(os.Stdout, "Scores: min %.0f  median %.0f  max %.0f  (high %d / medium %d / low %d)\n",
		d.Min, d.Median, d.Max, d.HighCount, d.MediumCount, d.LowCount)

	if len(s.HubProteins) > 0 {
		parts := make([]string, 0, len(s.HubProteins))
		for _, h := range s.HubProteins {
			parts = append(parts, fmt.Sprintf("%s(%d)", h.Symbol, h.Degree))
		}
		fmt.Fprintf(os.Stdout, "Hubs: %s\n", strings.Join(parts, ", "))
	}

	categories := make([]string, 0, len(s.FunctionalClusters))
	for category := range s.FunctionalClusters {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		if edges := s.FunctionalClusters[category]; len(edges) > 0 {
			fmt.Fprintf(os.Stdout, "Cluster %s: %d edges\n", category, len(edges))
		}
	}

	for _, b := range s.BridgingEdges {
		fmt.Fprintf(os.Stdout, "Bridge %s: %s\n", b.Edge.Pair(), b.Note)
	}

	fmt.Fprintf(os.Stdout, "\nPathway coverage: %.0f%% (%d/%d expected edges present)\n",
		s.Completeness.CoveragePercent, len(s.Completeness.Present),
		len(s.Completeness.Present)+len(s.Completeness.Missing))

	focal := s.Insights.Focal
	fmt.Fprintf(os.Stdout, "Focal %s: %s (bridging %d, cross-validated ratio %.2f)\n",
		focal.Protein, focal.Strength, focal.BridgingConnections, focal.CrossValidatedRatio)
	for _, rec := range s.Insights.Recommendations {
		fmt.Fprintf(os.Stdout, "  %d. %s: %s\n", rec.Rank, rec.Target, rec.Rationale)
	}

	statuses := make([]string, 0, len(s.SourceStatus))
	for src, status := range s.SourceStatus {
		statuses = append(statuses, fmt.Sprintf("%s=%s", src, status))
	}
	sort.Strings(statuses)
	fmt.Fprintf(os.Stdout, "\nSources: %s\n", strings.Join(statuses, "  "))
	for _, msg := range s.Errors {
		fmt.Fprintf(os.Stdout, "warning: %s\n", msg)
	}
	return nil
}
