package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazypower/loci/internal/thesaurus"
)

var importSource string

var thesaurusCmd = &cobra.Command{
	Use:   "thesaurus",
	Short: "Manage the local synonym store",
}

var thesaurusImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON synset dump into the local store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open dump: %w", err)
		}
		defer f.Close()

		source := importSource
		if source == "" {
			source = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}
		stats, err := thesaurus.Import(db, source, f)
		if err != nil {
			return err
		}
		total, err := db.CountSynsets()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "read %d, added %d, skipped %d (%d synsets stored)\n",
			stats.Read, stats.Added, stats.Skipped, total)
		return nil
	},
}

var thesaurusLookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Show the synonym sets the configured thesaurus returns for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		if a.lookup == nil {
			fmt.Fprintln(out, "thesaurus disabled (provider none)")
			return nil
		}
		sets, err := a.lookup.Lookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			fmt.Fprintf(out, "no synonyms for %q\n", args[0])
			return nil
		}
		for i, s := range sets {
			fmt.Fprintf(out, "%d. %s\n", i+1, strings.Join(s.Synonyms, ", "))
		}
		return nil
	},
}

func init() {
	thesaurusImportCmd.Flags().StringVar(&importSource, "source", "", "Source label stored with each synset (default file name)")

	thesaurusCmd.AddCommand(thesaurusImportCmd)
	thesaurusCmd.AddCommand(thesaurusLookupCmd)
}
