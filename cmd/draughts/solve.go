package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joansalasoler/draughts/egtb"
	"github.com/joansalasoler/draughts/game"
	"github.com/joansalasoler/draughts/hash"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve all endings up to a piece count",
	Long: `Run the retrograde solver tier by tier, recording the exact
outcome of every position into a node store.

With enough free memory the nodes live in RAM; otherwise they go to a
sqlite database under the data directory so the build can exceed RAM.
Interrupting the build keeps all finished tiers.`,
	RunE: runSolve,
}

var (
	solvePieces int
	solveDB     string
)

func init() {
	solveCmd.Flags().IntVarP(&solvePieces, "pieces", "p", 0, "largest piece count to solve (default from config)")
	solveCmd.Flags().StringVar(&solveDB, "db", "", "sqlite node database path (default: pick a store by free memory)")
	rootCmd.AddCommand(solveCmd)
}

// memStoreBytes estimates the resident size of an in-memory store.
func memStoreBytes(size uint64) uint64 {
	return 4 * size
}

func openStore(size uint64) (egtb.Store, error) {
	if solveDB != "" {
		return egtb.NewSQLStore(solveDB)
	}

	if wanted := memStoreBytes(size); wanted < memory.FreeMemory() {
		log.Debug().Uint64("bytes", wanted).Msg("using in-memory node store")
		return egtb.NewMemStore(size), nil
	}

	if err := os.MkdirAll(cfg.DataPath, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(cfg.DataPath, "draughts-nodes.db")
	log.Info().Str("path", path).Msg("node table exceeds free memory; using sqlite")
	return egtb.NewSQLStore(path)
}

func runSolve(cmd *cobra.Command, args []string) error {
	pieces := solvePieces
	if pieces == 0 {
		pieces = cfg.MaxPieces
	}
	if pieces < 1 || pieces > hash.MaxPieces {
		return fmt.Errorf("cannot solve %d piece endings", pieces)
	}

	hasher := hash.NewPerfect()
	store, err := openStore(hasher.Offset(pieces))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("interrupted; stopping")
		cancel()
	}()

	solver := egtb.NewSolver(hasher, store, game.NewGame())
	if err := solver.Solve(ctx, pieces); err != nil {
		return err
	}

	count, err := store.Count()
	if err != nil {
		return err
	}
	log.Info().Uint64("nodes", count).Msg("solve-complete")

	return nil
}
