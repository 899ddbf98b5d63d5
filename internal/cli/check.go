package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"haikubot/internal/config"
	"haikubot/internal/haiku"
	"haikubot/internal/notifier"
	"haikubot/internal/syllable"
	"haikubot/internal/wordsapi"
)

func newCheckCmd() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "check <text>...",
		Short: "Report whether text scans as a haiku",
		Long:  "Runs the detector on the given text using the configured cache and word service. New words are cached exactly as the server would cache them.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			words := wordsapi.NewClient(cfg.WordsAPIURL, cfg.RapidAPIKey, cfg.HTTPTimeout)
			oracle := syllable.NewOracle(store, words, nil)

			poem, ok, err := haiku.Segment(ctx, oracle, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not a haiku")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), notifier.Format(poem, author))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "haikuctl", "name used in the attribution line")
	return cmd
}
