// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/interactome-engine/internal/archive"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived analysis snapshots",
	Long: `Archive manages the local SQLite store of saved analysis snapshots.
Validation reports and network snapshots saved with --save land here;
use subcommands to list them or reprint one.`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived snapshots",
	RunE:  runArchiveList,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print one archived snapshot as JSON",
	RunE:  runArchiveShow,
}

func init() {
	archiveCmd.PersistentFlags().String("archive-dir", "", "directory holding the archive database (default archive)")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	rootCmd.AddCommand(archiveCmd)
}

// openArchive builds the archive store from flags and configuration.
func openArchive(cmd *cobra.Command) (*archive.Store, error) {
	cfg := engineConfig().Archive
	if dir, _ := cmd.Flags().GetString("archive-dir"); dir != "" {
		cfg.Dir = dir
	}
	return archive.NewStore(cfg)
}

// saveSnapshot archives one payload, used by the validate and network
// commands behind their --save flags.
func saveSnapshot(cmd *cobra.Command, kind, label string, payload any) (int64, error) {
	store, err := archive.NewStore(engineConfig().Archive)
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.Save(context.Background(), kind, label, payload)
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No archived snapshots.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-12s  %-25s  %s\n", "ID", "Kind", "Created", "Label")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, rec := range records {
		fmt.Fprintf(os.Stdout, "%-6d  %-12s  %-25s  %s\n",
			rec.ID, rec.Kind, rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Label)
	}
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide one snapshot id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: snapshot id must be an integer: %v", types.ErrInvalidArgument, err)
	}

	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Show(context.Background(), id)
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		return fmt.Errorf("decoding snapshot payload: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"id":         rec.ID,
		"kind":       rec.Kind,
		"label":      rec.Label,
		"created_at": rec.CreatedAt,
		"payload":    payload,
	})
}
