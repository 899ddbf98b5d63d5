package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"haikubot/internal/cache"
	"haikubot/internal/config"
)

func newReviewCmd() *cobra.Command {
	var (
		limit int
		file  string
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List cached words whose syllable count needs review",
		Long:  "Lists words the word service had no syllable count for. They are cached with a count of 1 until a reviewed count is applied with seed. The REVIEWED column shows the count already recorded in the overrides file, if any.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

			overrides, err := config.LoadOverrides(file)
			if err != nil {
				return fmt.Errorf("load %s: %w", file, err)
			}

			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			reviewer, ok := store.(cache.Reviewer)
			if !ok {
				return fmt.Errorf("cache backend %q cannot list entries", cfg.CacheBackend)
			}

			words, err := reviewer.ListNeedingReview(ctx, limit)
			if err != nil {
				return err
			}
			total, err := reviewer.CountNeedingReview(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WORD\tSYLLABLES\tREVIEWED")
			for _, e := range words {
				reviewed := "-"
				if n, ok := overrides.Lookup(e.Word); ok {
					reviewed = strconv.Itoa(n)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", e.Word, e.Syllables, reviewed)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d words need review\n", len(words), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of words to list")
	cmd.Flags().StringVar(&file, "file", config.OverridesPath(), "overrides YAML file to compare against")
	return cmd
}
