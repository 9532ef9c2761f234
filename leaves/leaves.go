// Package leaves probes exported endgame tablebases at search time.
// A loaded table answers "exact score or not covered" for any position
// within its piece range, from the south player's perspective.
package leaves

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joansalasoler/draughts/bitset"
	"github.com/joansalasoler/draughts/egtb"
	"github.com/joansalasoler/draughts/game"
	"github.com/joansalasoler/draughts/hash"
)

// ErrBadFormat reports a stream that is not a tablebase file.
var ErrBadFormat = errors.New("leaves: not a tablebase file")

// Book resolves positions to exact scores. The boolean result is false
// when the position is not covered by the book.
type Book interface {
	Find(pos game.Position, turn int) (int, bool)
}

// Leaves is a tablebase loaded in memory.
type Leaves struct {
	hasher    *hash.Perfect
	codes     *bitset.Map
	entries   uint64
	maxPieces int
}

// ReadLeaves parses an exported tablebase stream.
func ReadLeaves(r io.Reader) (*Leaves, error) {
	in := bufio.NewReader(r)

	signature, err := readLine(in)
	if err != nil {
		return nil, err
	}
	if signature != egtb.Signature {
		return nil, fmt.Errorf("%w: signature %q", ErrBadFormat, signature)
	}

	date, err := readLine(in)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(date, "Date: ") {
		return nil, fmt.Errorf("%w: missing date", ErrBadFormat)
	}

	line, err := readLine(in)
	if err != nil {
		return nil, err
	}
	field, found := strings.CutPrefix(line, "Entries: ")
	if !found {
		return nil, fmt.Errorf("%w: missing entry count", ErrBadFormat)
	}
	entries, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: entry count %q", ErrBadFormat, field)
	}

	if blank, err := readLine(in); err != nil {
		return nil, err
	} else if blank != "" {
		return nil, fmt.Errorf("%w: malformed header", ErrBadFormat)
	}

	codes, err := bitset.NewMap(egtb.CodeWidth, entries)
	if err != nil {
		return nil, err
	}
	if _, err := codes.ReadFrom(in); err != nil {
		return nil, fmt.Errorf("leaves: payload: %w", err)
	}

	hasher := hash.NewPerfect()

	// The book covers the piece counts whose tiers fit entirely within
	// the entry range.
	maxPieces := 0
	for count := 1; count <= hash.MaxPieces; count++ {
		if hasher.Offset(count) <= entries {
			maxPieces = count
		}
	}
	if maxPieces == 0 {
		return nil, fmt.Errorf("%w: no complete tier in %d entries", ErrBadFormat, entries)
	}

	return &Leaves{
		hasher:    hasher,
		codes:     codes,
		entries:   entries,
		maxPieces: maxPieces,
	}, nil
}

// MaxPieces returns the largest piece count the book covers.
func (l *Leaves) MaxPieces() int {
	return l.maxPieces
}

// Find returns the exact score of a position from the south player's
// perspective. Positions beyond the book's piece range, and the few
// with a reserved code, are reported as not covered.
func (l *Leaves) Find(pos game.Position, turn int) (int, bool) {
	count := pos.Count()
	if count == 0 || count > l.maxPieces {
		return 0, false
	}

	if turn == game.North {
		pos = pos.Rotate()
	}

	h := l.hasher.Hash(pos)
	if h >= l.entries {
		return 0, false
	}

	code := l.codes.Get(h)
	if code == 0 {
		return 0, false
	}

	return turn * game.MaxScore * (int(code) - 2), true
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: truncated header", ErrBadFormat)
	}
	return strings.TrimSuffix(line, "\n"), nil
}
