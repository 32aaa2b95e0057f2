package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/spellace/internal/config"
	"github.com/verte-zerg/spellace/internal/report"
	"github.com/verte-zerg/spellace/internal/store"
	"github.com/verte-zerg/spellace/internal/wordlist"
)

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Manage custom word packs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import <tier> <file>",
		Short: "Import a one-word-per-line file into a tier",
		Args:  cobra.ExactArgs(2),
		RunE:  runPackImportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List imported word packs",
		Args:  cobra.NoArgs,
		RunE:  runPackListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear <tier>",
		Short: "Remove the imported words of a tier",
		Args:  cobra.ExactArgs(1),
		RunE:  runPackClearCmd,
	})
	return cmd
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func runPackImportCmd(cmd *cobra.Command, args []string) error {
	tier, path := args[0], args[1]
	if err := validateTier(tier); err != nil {
		return err
	}
	logger := cliLogger()

	words, err := wordlist.LoadWords(path)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	kept, rejected := wordlist.Filter(words, wordlist.SpellingFilter)
	if len(kept) == 0 {
		return fmt.Errorf("no usable words in %s (words must be ASCII letters only)", path)
	}
	if rejected > 0 {
		logger.Warn("skipped words", "file", path, "count", rejected)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	added, err := st.AddWords(cmd.Context(), tier, kept, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to store words: %w", err)
	}
	logger.Info("imported word pack", "tier", tier, "file", path, "new", added, "duplicates", len(kept)-added)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new words into %s\n", added, tier); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runPackListCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, cliLogger())

	summaries, err := st.Summaries(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list word packs: %w", err)
	}
	if err := report.RenderPacks(cmd.OutOrStdout(), summaries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runPackClearCmd(cmd *cobra.Command, args []string) error {
	tier := args[0]
	if err := validateTier(tier); err != nil {
		return err
	}
	logger := cliLogger()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	removed, err := st.ClearTier(cmd.Context(), tier)
	if err != nil {
		return fmt.Errorf("failed to clear word pack: %w", err)
	}
	logger.Info("cleared word pack", "tier", tier, "removed", removed)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %d words from %s\n", removed, tier); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
