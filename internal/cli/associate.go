package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lazypower/loci/internal/association"
)

var (
	associateJSON bool
	similarPool   string
	similarN      int
)

var associateCmd = &cobra.Command{
	Use:   "associate <term>...",
	Short: "Print a figurative association for each term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		for _, term := range args {
			res := a.gen.Associate(cmd.Context(), term)
			if associateJSON {
				if err := enc.Encode(res); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintln(out, res.Phrase)
		}
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <word>",
	Short: "Rank concrete words or metaphor patterns by similarity to a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		candidates, err := poolCandidates(a.gen.Tables(), similarPool)
		if err != nil {
			return err
		}
		if similarN < 1 {
			return fmt.Errorf("-n must be positive")
		}

		out := cmd.OutOrStdout()
		for _, r := range a.gen.Matcher().FindSimilarWords(cmd.Context(), args[0], candidates, similarN) {
			fmt.Fprintf(out, "%-14s %s\n", r.Word, strconv.FormatFloat(r.Similarity, 'f', 3, 64))
		}
		return nil
	},
}

func poolCandidates(t *association.Tables, pool string) ([]string, error) {
	switch pool {
	case "concrete":
		return t.ConcretePool(), nil
	case "metaphors":
		return t.MetaphorPatterns(), nil
	default:
		return nil, fmt.Errorf("unknown pool %q (want concrete or metaphors)", pool)
	}
}

func init() {
	associateCmd.Flags().BoolVar(&associateJSON, "json", false, "Print JSON with stage and match")

	similarCmd.Flags().StringVar(&similarPool, "pool", "concrete", "Candidate pool: concrete or metaphors")
	similarCmd.Flags().IntVarP(&similarN, "limit", "n", 5, "Maximum number of results")
}
