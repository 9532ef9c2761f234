package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joansalasoler/draughts/game"
	"github.com/joansalasoler/draughts/leaves"
)

var probeCmd = &cobra.Command{
	Use:   "probe [position]",
	Short: "Look up the exact score of an endgame position",
	Long: `Probe the configured tablebase for a position in FEN-like
notation, for example "W:W46,K32:B5". Scores are from white's (south's)
perspective.`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	pos, turn, err := game.ParsePosition(args[0])
	if err != nil {
		return err
	}

	score, ok := leaves.Open(cfg).Find(pos, turn)
	if !ok {
		fmt.Println("not covered")
		return nil
	}

	switch score {
	case game.DrawScore:
		fmt.Println("draw")
	default:
		fmt.Printf("score %+d\n", score)
	}

	return nil
}
