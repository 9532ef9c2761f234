package hash

import (
	"github.com/joansalasoler/draughts/bits"
	"github.com/joansalasoler/draughts/game"
)

// The board layout pads its bitboards with one ghost bit at the end of
// every other row so diagonal steps become constant shifts. The hasher
// works on a dense 50-bit space instead, so the padding bits are
// stripped before hashing and reinserted after unhashing. Positions in
// the dense space are already compacted: the bit removed at 5 shifts
// the ghost at 16 down to 15, and so on.
var paddings = [5]int{5, 15, 25, 35, 45}

// StripPadding removes the ghost bits from every bitboard, compacting
// the playable squares into bits 0..49.
func StripPadding(pos game.Position) game.Position {
	var state game.Position

	for piece, b := range pos {
		if !bits.Empty(b) {
			for _, index := range paddings {
				b = bits.Remove(b, index)
			}
			state[piece] = b
		}
	}

	return state
}

// InsertPadding restores the ghost bits, converting a dense state back
// into the board's native layout. It is the inverse of StripPadding for
// any position that keeps its ghost bits empty, which is every legal
// position.
func InsertPadding(state game.Position) game.Position {
	var pos game.Position

	for piece, b := range state {
		if !bits.Empty(b) {
			for i := len(paddings) - 1; i >= 0; i-- {
				b = bits.Insert(b, paddings[i])
			}
			pos[piece] = b
		}
	}

	return pos
}
