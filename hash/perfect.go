package hash

import (
	"fmt"

	"github.com/joansalasoler/draughts/bits"
	"github.com/joansalasoler/draughts/game"
)

// MaxPieces is the largest piece count the hasher covers.
const MaxPieces = 5

// Perfect maps each position with at most MaxPieces pieces to a unique
// dense integer and back. The hash space is partitioned into tiers by
// piece count: positions with exactly n pieces hash into
// [Offset(n-1), Offset(n)), and the mapping onto that range is a
// bijection.
//
// Hashing assumes the position is canonically oriented, with south to
// move. Callers rotate first when it is north's turn.
type Perfect struct {
	rankers [MaxPieces]*Binomial
	offsets [MaxPieces + 1]uint64
}

// NewPerfect creates the hash function and precomputes its tier
// offsets: Offset(n) = Offset(n-1) + C(BoardSize, n) * 4^n.
func NewPerfect() *Perfect {
	h := &Perfect{}

	for count := 1; count <= MaxPieces; count++ {
		ranker := NewBinomial(game.BoardSize, count+1)
		h.rankers[count-1] = ranker
		h.offsets[count] = h.offsets[count-1] + ranker.Range()<<uint(2*count)
	}

	return h
}

// Offset returns the number of positions containing count pieces or
// fewer; equivalently, the first hash of the next tier.
func (h *Perfect) Offset(count int) uint64 {
	return h.offsets[count]
}

// Hash computes the unique hash of a position. The position must
// contain between 1 and MaxPieces pieces; callers check the piece
// count before calling.
func (h *Perfect) Hash(pos game.Position) uint64 {
	state := StripPadding(pos)
	taken := state.Taken()
	count := bits.Count(taken)
	ranker := h.rankers[count-1]

	// Encode each occupied square's piece type as a two bit digit,
	// ordered by square index.

	var code uint64

	for piece, b := range state {
		for ; !bits.Empty(b); b &= b - 1 {
			square := bits.First(b)
			index := bits.Count(taken & (bits.Bit(square) - 1))
			code += uint64(piece) << uint(2*index)
		}
	}

	// The gaps between consecutive occupied squares determine which
	// squares are taken; their binomial rank completes the hash.

	gaps := make([]int, count+1)
	previous := -1

	for i, b := 0, taken; !bits.Empty(b); b &= b - 1 {
		square := bits.First(b)
		gaps[i] = square - previous - 1
		previous = square
		i++
	}
	gaps[count] = game.BoardSize - 1 - previous

	hash := h.offsets[count-1] + code
	hash += ranker.Rank(gaps) << uint(2*count)

	return hash
}

// Unhash converts a hash back to the position it represents. The hash
// must lie in [0, Offset(MaxPieces)); anything else is a violation of
// the hasher's precondition.
func (h *Perfect) Unhash(hash uint64) game.Position {
	count := h.pieceCount(hash)
	ranker := h.rankers[count-1]

	rest := hash - h.offsets[count-1]
	code := rest & (1<<uint(2*count) - 1)
	gaps := ranker.Unrank(rest >> uint(2*count))

	var state game.Position
	previous := -1

	for i := 0; i < count; i++ {
		square := previous + gaps[i] + 1
		piece := (code >> uint(2*i)) & 3
		state[piece] |= bits.Bit(square)
		previous = square
	}

	return InsertPadding(state)
}

// pieceCount locates the tier whose offset range contains the hash.
func (h *Perfect) pieceCount(hash uint64) int {
	for count := 1; count <= MaxPieces; count++ {
		if hash < h.offsets[count] {
			return count
		}
	}

	panic(fmt.Sprintf("hash %d out of range", hash))
}
