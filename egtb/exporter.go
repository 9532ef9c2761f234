package egtb

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/joansalasoler/draughts/bitset"
	"github.com/joansalasoler/draughts/game"
)

// Signature identifies the compact tablebase file format.
const Signature = "Draughts Endgames 2.1"

// CodeWidth is the number of bits each exported entry occupies.
const CodeWidth = 2

// Exporter serializes a solved store into the compact format the
// search-time reader consumes: a short text header followed by one
// 2-bit code per position hash. Code 0 means the position is not
// covered; codes 1, 2 and 3 encode a loss, a draw and a win for the
// player to move.
type Exporter struct {
	store Store
}

// NewExporter returns an exporter over a solved store.
func NewExporter(store Store) *Exporter {
	return &Exporter{store: store}
}

// Export writes the header and the packed codes for hashes 1 to
// entries-1 and returns a digest of the payload. Entry zero stays at
// the reserved code 0, as does any hash the store has not solved.
func (e *Exporter) Export(w io.Writer, entries uint64) (uint64, error) {
	codes, err := bitset.NewMap(CodeWidth, entries)
	if err != nil {
		return 0, err
	}

	for h := uint64(1); h < entries; h++ {
		node, err := e.store.Read(h)
		if err != nil {
			return 0, err
		}
		if !node.Known {
			continue
		}
		codes.Put(h, uint64(2+node.Score/game.MaxScore))
	}

	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "%s\n", Signature)
	fmt.Fprintf(out, "Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(out, "Entries: %d\n", entries)
	fmt.Fprintln(out)

	digest := xxhash.New()
	if _, err := codes.WriteTo(io.MultiWriter(out, digest)); err != nil {
		return 0, err
	}

	if err := out.Flush(); err != nil {
		return 0, err
	}

	sum := digest.Sum64()
	log.Info().Uint64("entries", entries).
		Str("digest", fmt.Sprintf("%016x", sum)).
		Msg("tablebase-exported")

	return sum, nil
}
