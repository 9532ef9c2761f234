package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joansalasoler/draughts/cache"
	"github.com/joansalasoler/draughts/egtb"
	"github.com/joansalasoler/draughts/hash"
	"github.com/joansalasoler/draughts/leaves"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a solved node store to the compact leaves format",
	Long: `Serialize solved nodes into the 2-bit per position file that
the search-time reader consumes.`,
	RunE: runExport,
}

var (
	exportPieces int
	exportDB     string
	exportOut    string
)

func init() {
	exportCmd.Flags().IntVarP(&exportPieces, "pieces", "p", 0, "largest piece count to export (default from config)")
	exportCmd.Flags().StringVar(&exportDB, "db", "", "sqlite node database to export from")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default from config)")
	exportCmd.MarkFlagRequired("db")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	pieces := exportPieces
	if pieces == 0 {
		pieces = cfg.MaxPieces
	}
	if pieces < 1 || pieces > hash.MaxPieces {
		return fmt.Errorf("cannot export %d piece endings", pieces)
	}

	store, err := egtb.NewSQLStore(exportDB)
	if err != nil {
		return err
	}
	defer store.Close()

	out := exportOut
	if out == "" {
		out = cfg.LeavesPath
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	hasher := hash.NewPerfect()
	digest, err := egtb.NewExporter(store).Export(file, hasher.Offset(pieces))
	if err != nil {
		return err
	}

	// A stale copy may be cached from before the rebuild.
	cache.Evict(leaves.CacheKeyPrefix + out)

	fmt.Printf("Exported %s\n", out)
	fmt.Printf("  Digest: %016x\n", digest)

	return nil
}
