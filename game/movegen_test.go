package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/joansalasoler/draughts/bits"
)

// place builds a position from piece type to bit indices.
func place(pieces map[int][]int) Position {
	var pos Position
	for piece, squares := range pieces {
		for _, square := range squares {
			pos[piece] |= bits.Bit(square)
		}
	}
	return pos
}

func TestManQuietMoves(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// A man on the left edge has a single forward step: its up-left
	// neighbour is a ghost bit.
	g.SetPosition(place(map[int][]int{SouthMan: {0}}), South)
	is.Equal(g.LegalMoves(), []Move{{From: 0, To: 6}})

	g.SetPosition(place(map[int][]int{SouthMan: {2}}), South)
	is.Equal(len(g.LegalMoves()), 2)

	// North men step toward lower bits.
	g.SetPosition(place(map[int][]int{NorthMan: {12}}), North)
	is.Equal(len(g.LegalMoves()), 2)
	for _, m := range g.LegalMoves() {
		is.True(m.To < m.From)
	}
}

func TestManCapture(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	g.SetPosition(place(map[int][]int{
		SouthMan: {2},
		NorthMan: {7},
	}), South)

	is.Equal(g.LegalMoves(), []Move{{From: 2, To: 12, Captures: bits.Bit(7)}})
}

func TestManCapturesBackward(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// Men may not step backward but they do capture backward.
	g.SetPosition(place(map[int][]int{
		SouthMan: {12},
		NorthMan: {7},
	}), South)

	moves := g.LegalMoves()
	is.Equal(len(moves), 1)
	is.Equal(moves[0], Move{From: 12, To: 2, Captures: bits.Bit(7)})
}

func TestMajorityCaptureIsMandatory(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// A single capture toward 14 exists, but the double capture via
	// 12 takes more pieces and is the only legal move.
	g.SetPosition(place(map[int][]int{
		SouthMan: {2},
		NorthMan: {7, 17, 8},
	}), South)

	moves := g.LegalMoves()
	is.Equal(len(moves), 1)
	is.Equal(moves[0], Move{From: 2, To: 22, Captures: bits.Bit(7) | bits.Bit(17)})
}

func TestKingSlides(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// A lone king in the corner runs the long diagonal.
	g.SetPosition(place(map[int][]int{SouthKing: {0}}), South)
	is.Equal(len(g.LegalMoves()), 9)

	for _, m := range g.LegalMoves() {
		is.Equal((m.To-m.From)%6, 0)
	}
}

func TestKingFlyingCapture(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// The king flies down the long diagonal, takes the man on 24 and
	// may land on any of the five empty squares behind it.
	g.SetPosition(place(map[int][]int{
		SouthKing: {0},
		NorthMan:  {24},
	}), South)

	moves := g.LegalMoves()
	is.Equal(len(moves), 5)
	for _, m := range moves {
		is.Equal(m.Captures, bits.Bit(24))
		is.True(m.To > 24)
	}
}

func TestOccupiedLandingBlocksCapture(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// The man on 7 cannot be jumped while 12 is taken, so only the
	// quiet step toward 8 remains.
	g.SetPosition(place(map[int][]int{
		SouthMan: {2},
		NorthMan: {7, 12},
	}), South)

	moves := g.LegalMoves()
	is.Equal(moves, []Move{{From: 2, To: 8}})
}

func TestCapturedPieceCannotBeJumpedTwice(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// The king takes 12 and may stop on 18; from there the diagonal
	// back over 12 is no longer capturable, it only blocks.
	g.SetPosition(place(map[int][]int{
		SouthKing: {0},
		NorthMan:  {12, 24},
	}), South)

	moves := g.LegalMoves()
	for _, m := range moves {
		is.Equal(m.Captures, bits.Bit(12)|bits.Bit(24))
	}
	is.Equal(len(moves), 5)
}

func TestBlockedManHasNoMoves(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// The man on 0 cannot step onto the occupied 6 and cannot jump
	// because the landing square 12 is taken.
	g.SetPosition(place(map[int][]int{
		SouthMan:  {0},
		NorthKing: {6},
		NorthMan:  {12},
	}), South)

	is.True(g.HasEnded())
	is.Equal(g.Outcome(), -MaxScore)
}

func TestNoPiecesMeansNoMoves(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	g.SetPosition(place(map[int][]int{NorthMan: {30}}), South)
	is.True(g.HasEnded())
	is.Equal(g.Outcome(), -MaxScore)
}
