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
	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/internal/validate"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [proteins...]",
	Short: "Cross-validate interactions across independent databases",
	Long: `Validate queries each interaction database for the given protein set
and reports convergent evidence: interactions corroborated by two or
more independent sources. Per-database results are kept alongside the
intersection, and a failed source never fails the run.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringSlice("sources", nil, "interaction sources to check (default all)")
	validateCmd.Flags().Float64("threshold", types.ThresholdUnset, "confidence threshold in [0,1] (default 0.4)")
	validateCmd.Flags().Duration("timeout", 0, "validation deadline (default 60s)")
	validateCmd.Flags().Bool("save", false, "archive the validation report")
	validateCmd.Flags().String("label", "", "label for the archived report")
	validateCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more protein symbols")
	}

	srcs, _ := cmd.Flags().GetStringSlice("sources")
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	cfg := engineConfig().Validate
	if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}

	reg := sources.NewRegistry(sourcesConfig(cmd), os.Stderr)
	validator := validate.New(reg, cfg, os.Stderr)

	report, err := validator.CrossValidate(context.Background(), args, srcs, threshold)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		label, _ := cmd.Flags().GetString("label")
		if label == "" {
			label = strings.Join(args, ",")
		}
		id, err := saveSnapshot(cmd, archive.KindValidation, label, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Archived validation report as snapshot %d\n", id)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return formatValidateOutput(report)
}

func formatValidateOutput(report types.ValidationReport) error {
	fmt.Fprintf(os.Stdout, "Proteins: %s\n", strings.Join(report.Proteins, ", "))
	fmt.Fprintf(os.Stdout, "Threshold: %.2f  Tier: %s\n\n", report.ConfidenceThreshold, report.Tier)

	srcs := make([]string, 0, len(report.DatabaseSpecific))
	for src := range report.DatabaseSpecific {
		srcs = append(srcs, src)
	}
	sort.Strings(srcs)
	for _, src := range srcs {
		fmt.Fprintf(os.Stdout, "%s: %d interactions\n", src, report.DatabaseSpecific[src].EdgeCount)
	}

	fmt.Fprintf(os.Stdout, "\nConvergent evidence (%d):\n", report.ConvergentCount)
	for _, e := range report.Convergent {
		fmt.Fprintf(os.Stdout, "  %s  [%s]", e.Pair(), strings.Join(e.Sources, ", "))
		if e.Score > 0 {
			fmt.Fprintf(os.Stdout, "  score %.0f", e.Score)
		}
		fmt.Fprintln(os.Stdout)
	}

	for _, msg := range report.Errors {
		fmt.Fprintf(os.Stdout, "warning: %s\n", msg)
	}
	return nil
}
