// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/interactome-engine/internal/genes"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence [proteins...]",
	Short: "Show curated disease-relevance evidence for proteins",
	Long: `Evidence prints the literature-curated disease-relevance record for
each protein: relevance score, evidence types, and tier (1 established
to 5 insufficient). Unknown proteins report tier 5 explicitly.

With --biomarkers, prints the curated biomarker candidate set for a
confidence level instead.`,
	RunE: runEvidence,
}

func init() {
	evidenceCmd.Flags().String("biomarkers", "", "list biomarker candidates at a confidence level: high or moderate")
	evidenceCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(evidenceCmd)
}

func runEvidence(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	level, _ := cmd.Flags().GetString("biomarkers")
	if level != "" {
		candidates := genes.BiomarkerCandidates(level)
		if candidates == nil {
			return fmt.Errorf("unknown confidence level %q: use high or moderate", level)
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(candidates)
		}
		for _, c := range candidates {
			fmt.Fprintf(os.Stdout, "%-8s  %.2f  %s\n", c.Protein, c.Confidence, c.Evidence)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("provide one or more protein symbols, or --biomarkers")
	}

	type record struct {
		Protein  string  `json:"protein"`
		Category string  `json:"category"`
		Score    float64 `json:"score"`
		Evidence string  `json:"evidence"`
		Tier     int     `json:"tier"`
	}
	records := make([]record, 0, len(args))
	for _, id := range args {
		symbol := genes.Canonical(id)
		r := genes.RelevanceOf(symbol)
		records = append(records, record{
			Protein:  symbol,
			Category: genes.CategoryOf(symbol),
			Score:    r.Score,
			Evidence: r.Evidence,
			Tier:     r.Tier,
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Fprintf(os.Stdout, "%-8s  %-12s  %-6s  %-4s  %s\n", "Protein", "Category", "Score", "Tier", "Evidence")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 60))
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-8s  %-12s  %-6.2f  %-4d  %s\n", r.Protein, r.Category, r.Score, r.Tier, r.Evidence)
	}
	return nil
}
