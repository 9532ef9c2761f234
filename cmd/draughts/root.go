package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joansalasoler/draughts/config"
)

var (
	// Global flags.
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "draughts",
	Short: "Exact endgame tablebases for international draughts",
	Long: `Draughts builds and queries exact win/draw/loss tablebases for
international draughts endings of up to five pieces.

Examples:
  # Solve every ending up to four pieces
  draughts solve --pieces 4

  # Export the solved nodes to the compact format
  draughts export --db ./data/draughts-nodes.db --pieces 4

  # Probe a position
  draughts probe "W:W46:B5"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}

		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debug || cfg.Debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "enable debug logging")
}
