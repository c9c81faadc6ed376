// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the interactome-engine CLI.
// Implements: prd003-resolution, prd004-validation, prd005-network,
// prd006-insight (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/interactome-engine/internal/secrets"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "interactome-engine/0.1"

// loadedSecrets holds adapter access keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the interactome-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "interactome-engine",
	Short: "Cross-database protein interaction analysis",
	Long: `interactome-engine resolves protein identifiers, cross-validates
interactions, and builds interaction networks by querying independent
biological database adapters (STRING, BioGRID, PRIDE) and reconciling
their answers.

Each analysis stage is a subcommand: resolve, validate, network, and
archive. Any source can fail without failing the analysis; partial
results carry per-source status.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./interactome-engine.yaml or ~/.config/interactome-engine/config.yaml)")
	rootCmd.PersistentFlags().String("string-url", "", "base URL of the STRING adapter (default http://localhost:8001)")
	rootCmd.PersistentFlags().String("pride-url", "", "base URL of the PRIDE adapter (default http://localhost:8002)")
	rootCmd.PersistentFlags().String("biogrid-url", "", "base URL of the BioGRID adapter (default http://localhost:8003)")
	rootCmd.PersistentFlags().Duration("http-timeout", 0, "per-request HTTP timeout (default 30s)")
	rootCmd.PersistentFlags().Int("species", 0, "NCBI taxon for STRING queries (default 9606, human)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("interactome-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "interactome-engine"))
		}
	}

	viper.SetEnvPrefix("INTERACTOME_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the full engine configuration from the config
// file and environment. Per-command flag overrides are applied on top
// by the commands themselves.
func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		Sources: types.SourcesConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("sources.timeout"),
				UserAgent: defaultUserAgent,
			},
			StringURL:  viper.GetString("sources.string_url"),
			BioGRIDURL: viper.GetString("sources.biogrid_url"),
			PrideURL:   viper.GetString("sources.pride_url"),
			Species:    viper.GetInt("sources.species"),
			Organism:   viper.GetString("sources.organism"),
			APIKeys:    secrets.SourceKeys(loadedSecrets),
		},
		Resolve: types.ResolveConfig{
			Timeout:     viper.GetDuration("resolve.timeout"),
			CacheTTL:    viper.GetDuration("resolve.cache_ttl"),
			Concurrency: viper.GetInt("resolve.concurrency"),
		},
		Validate: types.ValidateConfig{
			Timeout:          viper.GetDuration("validate.timeout"),
			DefaultThreshold: viper.GetFloat64("validate.default_threshold"),
			SampleEdges:      viper.GetInt("validate.sample_edges"),
		},
		Network: types.NetworkConfig{
			Timeout:          viper.GetDuration("network.timeout"),
			MaxWhiteNodes:    viper.GetInt("network.max_white_nodes"),
			SecondaryBound:   viper.GetInt("network.secondary_bound"),
			DefaultThreshold: viper.GetFloat64("network.default_threshold"),
		},
		Archive: types.ArchiveConfig{
			Dir: viper.GetString("archive.dir"),
		},
	}
}

// sourcesConfig applies the persistent adapter flags on top of the
// configured settings. Flags win over the config file.
func sourcesConfig(cmd *cobra.Command) types.SourcesConfig {
	cfg := engineConfig().Sources

	if u, _ := cmd.Flags().GetString("string-url"); u != "" {
		cfg.StringURL = u
	}
	if u, _ := cmd.Flags().GetString("pride-url"); u != "" {
		cfg.PrideURL = u
	}
	if u, _ := cmd.Flags().GetString("biogrid-url"); u != "" {
		cfg.BioGRIDURL = u
	}
	if t, _ := cmd.Flags().GetDuration("http-timeout"); t > 0 {
		cfg.Timeout = t
	}
	if s, _ := cmd.Flags().GetInt("species"); s > 0 {
		cfg.Species = s
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
