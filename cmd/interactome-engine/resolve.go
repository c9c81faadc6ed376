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

	"github.com/pdiddy/interactome-engine/internal/cache"
	"github.com/pdiddy/interactome-engine/internal/resolve"
	"github.com/pdiddy/interactome-engine/internal/sources"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [identifiers...]",
	Short: "Resolve protein identifiers across databases",
	Long: `Resolve maps protein identifiers (gene symbols and common aliases)
to their representations in each source database, with a per-source and
overall confidence score. Multiple identifiers are resolved as a batch
with bounded concurrency.

A panel file (--panel) supplies the identifiers from YAML; --out writes
the outcomes back next to the panel definition.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringSlice("sources", sources.KnownSources, "sources to query")
	resolveCmd.Flags().Duration("timeout", 0, "per-identifier resolution deadline (default 30s)")
	resolveCmd.Flags().Int("concurrency", 0, "bound on simultaneous resolutions in a batch (default 5)")
	resolveCmd.Flags().String("panel", "", "YAML panel file supplying identifiers")
	resolveCmd.Flags().String("out", "", "write panel outcomes to this YAML file")
	resolveCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	panelPath, _ := cmd.Flags().GetString("panel")
	srcs, _ := cmd.Flags().GetStringSlice("sources")

	identifiers := args
	var panel *resolve.PanelFile
	if panelPath != "" {
		pf, err := resolve.ReadPanelFile(panelPath)
		if err != nil {
			return err
		}
		panel = pf
		identifiers = append(append([]string{}, pf.Identifiers...), identifiers...)
		if len(pf.Sources) > 0 && !cmd.Flags().Changed("sources") {
			srcs = pf.Sources
		}
	}
	if len(identifiers) == 0 {
		return fmt.Errorf("provide one or more protein identifiers, or --panel")
	}

	cfg := engineConfig().Resolve
	if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}
	if c, _ := cmd.Flags().GetInt("concurrency"); c > 0 {
		cfg.Concurrency = c
	}

	reg := sources.NewRegistry(sourcesConfig(cmd), os.Stderr)
	resolver := resolve.New(reg, cache.New(cfg.CacheTTL), cfg, os.Stderr)

	result, err := resolver.ResolveBatch(context.Background(), identifiers, srcs)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		pf := resolve.PanelFile{Identifiers: identifiers, Sources: srcs}
		if panel != nil {
			pf = *panel
		}
		if err := resolve.WritePanelFile(outPath, pf, result); err != nil {
			return err
		}
		fmt.Printf("Wrote panel outcomes to %s\n", outPath)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return formatResolveOutput(result)
}

func formatResolveOutput(result resolve.BatchResult) error {
	ids := make([]string, 0, len(result.PerIdentifier))
	for id := range result.PerIdentifier {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(os.Stdout, "%-12s  %-12s  %-10s  %-10s  %s\n",
		"Query", "Canonical", "Status", "Confidence", "Sources")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))

	for _, id := range ids {
		identity := result.PerIdentifier[id]
		srcs := make([]string, 0, len(identity.SourceMappings))
		for src := range identity.SourceMappings {
			srcs = append(srcs, src)
		}
		sort.Strings(srcs)
		fmt.Fprintf(os.Stdout, "%-12s  %-12s  %-10s  %-10.2f  %s\n",
			identity.Query, identity.CanonicalSymbol, identity.Status,
			identity.OverallConfidence, strings.Join(srcs, ","))
		if identity.Suggestion != "" {
			fmt.Fprintf(os.Stdout, "  hint: %s\n", identity.Suggestion)
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d/%d resolved (%.0f%%)\n",
		result.Resolved(), result.Total(), result.SuccessRate*100)
	return nil
}
