// Package game implements the rules of international draughts on a
// 10x10 board. Positions are stored as four piece bitboards over a
// padded 55-bit layout: the 50 playable squares plus one ghost bit at
// the end of every other row (bits 5, 16, 27, 38 and 49). The ghost
// bits make every diagonal step a constant shift of 5 or 6, with board
// edges falling onto ghost or out-of-range bits.
package game

import (
	mathbits "math/bits"

	"github.com/joansalasoler/draughts/bits"
)

// Piece bitboard indices. Rotating a position swaps south with north,
// so the man boards and the king boards are kept in adjacent pairs.
const (
	SouthMan = iota
	NorthMan
	SouthKing
	NorthKing
	PieceCount
)

// Sides to move. South plays up the board (toward higher bit indices).
const (
	South = 1
	North = -1
)

// BoardSize is the number of playable squares.
const BoardSize = 50

// Score bounds for exact outcomes.
const (
	MaxScore  = 1000
	DrawScore = 0
)

// Ghost bits padding the playable squares.
const ghostMask = 1<<5 | 1<<16 | 1<<27 | 1<<38 | 1<<49

// BoardMask has one bit set per playable square.
const BoardMask = (1<<55 - 1) &^ ghostMask

// Promotion rows for men reaching the far side of the board.
const (
	southPromotion = uint64(0b11111) << 50
	northPromotion = uint64(0b11111)
)

// Position holds one bitboard per piece type.
type Position [PieceCount]uint64

// Taken returns a bitboard of all occupied squares.
func (p Position) Taken() uint64 {
	return p[SouthMan] | p[NorthMan] | p[SouthKing] | p[NorthKing]
}

// Count returns the number of pieces on the board.
func (p Position) Count() int {
	return bits.Count(p.Taken())
}

// South returns a bitboard of the south player's pieces.
func (p Position) South() uint64 {
	return p[SouthMan] | p[SouthKing]
}

// North returns a bitboard of the north player's pieces.
func (p Position) North() uint64 {
	return p[NorthMan] | p[NorthKing]
}

// Rotate turns the board 180 degrees and swaps the players, so the
// position is seen from the opponent's point of view. Rotating twice
// yields the original position.
func (p Position) Rotate() Position {
	return Position{
		reverse(p[NorthMan]),
		reverse(p[SouthMan]),
		reverse(p[NorthKing]),
		reverse(p[SouthKing]),
	}
}

// reverse mirrors a bitboard within the 55-bit padded space. The ghost
// bits are symmetric under this mapping.
func reverse(b uint64) uint64 {
	return mathbits.Reverse64(b) >> 9
}

// onBoard reports whether the index addresses a playable square.
func onBoard(square int) bool {
	return square >= 0 && square <= 54 && BoardMask&bits.Bit(square) != 0
}
