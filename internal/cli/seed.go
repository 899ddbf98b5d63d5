package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"haikubot/internal/config"
	"haikubot/internal/models"
	"haikubot/internal/syllable"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply reviewed syllable counts from an overrides file",
		Long:  "Writes every word in the overrides YAML file to the cache with its reviewed count, clearing the review flag.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

			overrides, err := config.LoadOverrides(file)
			if err != nil {
				return fmt.Errorf("load %s: %w", file, err)
			}
			if overrides == nil {
				return fmt.Errorf("overrides file %s not found", file)
			}

			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, w := range overrides.Words {
				entry := models.CacheEntry{Word: syllable.Normalize(w.Word), Syllables: w.Syllables}
				if entry.Word == "" {
					return fmt.Errorf("override %q has no letters left after normalization", w.Word)
				}
				if err := store.Put(ctx, entry); err != nil {
					return fmt.Errorf("seed %q: %w", entry.Word, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d words\n", len(overrides.Words))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", config.OverridesPath(), "overrides YAML file")
	return cmd
}
