package leaves

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joansalasoler/draughts/config"
	"github.com/joansalasoler/draughts/egtb"
	"github.com/joansalasoler/draughts/game"
	"github.com/joansalasoler/draughts/hash"
)

func buildBook(t *testing.T) (*hash.Perfect, *egtb.MemStore, *Leaves) {
	t.Helper()

	hasher := hash.NewPerfect()
	store := egtb.NewMemStore(hasher.Offset(2))
	solver := egtb.NewSolver(hasher, store, game.NewGame())
	require.NoError(t, solver.Solve(context.Background(), 2))

	var buf bytes.Buffer
	_, err := egtb.NewExporter(store).Export(&buf, hasher.Offset(2))
	require.NoError(t, err)

	book, err := ReadLeaves(&buf)
	require.NoError(t, err)
	return hasher, store, book
}

func TestFindMatchesSolvedScores(t *testing.T) {
	hasher, store, book := buildBook(t)
	require.Equal(t, 2, book.MaxPieces())

	for h := uint64(1); h < hasher.Offset(2); h++ {
		node, err := store.Read(h)
		require.NoError(t, err)
		pos := hasher.Unhash(h)

		score, ok := book.Find(pos, game.South)
		require.True(t, ok, "hash %d", h)
		require.Equal(t, node.Score, score, "hash %d", h)

		// The same ending seen from north's side scores the negation
		// from south's fixed perspective.
		score, ok = book.Find(pos.Rotate(), game.North)
		require.True(t, ok, "hash %d rotated", h)
		require.Equal(t, -node.Score, score, "hash %d rotated", h)
	}
}

func TestReservedEntryNotFound(t *testing.T) {
	hasher, _, book := buildBook(t)

	_, ok := book.Find(hasher.Unhash(0), game.South)
	assert.False(t, ok)
}

func TestUncoveredPositions(t *testing.T) {
	_, _, book := buildBook(t)

	// Three pieces exceed the book's range; an empty board is not a
	// position at all.
	var pos game.Position
	pos[game.SouthMan] = 1<<0 | 1<<1
	pos[game.NorthMan] = 1 << 54

	_, ok := book.Find(pos, game.South)
	assert.False(t, ok)

	_, ok = book.Find(game.Position{}, game.South)
	assert.False(t, ok)
}

func TestStubNeverFinds(t *testing.T) {
	var pos game.Position
	pos[game.SouthKing] = 1

	_, ok := Stub{}.Find(pos, game.South)
	assert.False(t, ok)
}

func TestReadLeavesRejectsBadStreams(t *testing.T) {
	for _, stream := range []string{
		"",
		"not a tablebase\n",
		"Draughts Endgames 1.0\nDate: x\nEntries: 200\n\n",
		"Draughts Endgames 2.1\nDate: x\nEntries: ten\n\n",
		"Draughts Endgames 2.1\nDate: x\nEntries: 10\n\n",
		"Draughts Endgames 2.1\nDate: x\nEntries: 200\n\nshort",
	} {
		_, err := ReadLeaves(strings.NewReader(stream))
		assert.Error(t, err, "stream %q", stream)
	}
}

func TestGetSharesLoadedBooks(t *testing.T) {
	hasher, store, _ := buildBook(t)

	var buf bytes.Buffer
	_, err := egtb.NewExporter(store).Export(&buf, hasher.Offset(1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "draughts-leaves.bin")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	cfg := &config.Config{LeavesPath: path}
	first, err := Get(cfg, path)
	require.NoError(t, err)
	second, err := Get(cfg, path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	book := Open(cfg)
	assert.Same(t, first, book)
}

func TestOpenFallsBackToStub(t *testing.T) {
	cfg := &config.Config{
		LeavesPath: filepath.Join(t.TempDir(), "missing.bin"),
	}

	book := Open(cfg)
	assert.IsType(t, Stub{}, book)
}
