// Package cli implements haikuctl, the operator tool for the syllable cache.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haikubot/internal/cache"
	"haikubot/internal/config"
)

var Version = "dev"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "haikuctl",
		Short:         "Inspect and maintain the haiku bot's syllable cache",
		Long:          "haikuctl checks text against the haiku detector, lists words whose syllable counts need review, and applies reviewed counts. It reads the same environment as the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newCheckCmd(),
		newReviewCmd(),
		newSeedCmd(),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("haikuctl %s\n", Version))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore opens the configured cache for the lifetime of one command.
func openStore(ctx context.Context, cfg *config.Config) (cache.Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := cache.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.CacheBackend, err)
	}
	return store, nil
}
