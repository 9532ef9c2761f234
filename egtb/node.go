// Package egtb builds endgame tablebases by retrograde analysis. Each
// position of at most hash.MaxPieces pieces is identified by its
// perfect hash and solved to an exact win, draw or loss score from the
// perspective of the player to move.
package egtb

// Flag qualifies a stored score.
type Flag uint8

const (
	// FlagUnknown marks a node whose score is not yet proven.
	FlagUnknown Flag = iota

	// FlagExact marks a node whose score is the exact game outcome.
	FlagExact
)

// Node is a solved or pending tablebase entry. Scores are exact
// outcomes from the mover's perspective on the canonical (south to
// move) orientation of the position.
type Node struct {
	Hash   uint64
	Pieces int
	Score  int
	Flag   Flag
	Known  bool
}
