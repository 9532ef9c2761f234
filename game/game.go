package game

import (
	"github.com/joansalasoler/draughts/bits"
)

// Game tracks a position, the side to move and the moves played so far.
// It exposes the capability the endgame solver and the tablebase reader
// need: legal move enumeration, make/unmake, terminal detection and a
// terminal outcome from the mover's perspective.
type Game struct {
	pos     Position
	turn    int
	moves   []Move
	genned  bool
	history []undo
}

// undo holds what Make changed so Unmake can restore it.
type undo struct {
	move          Move
	wasKing       bool
	promoted      bool
	capturedMen   uint64
	capturedKings uint64
}

// NewGame returns a game on an empty board with south to move.
func NewGame() *Game {
	return &Game{turn: South}
}

// SetPosition replaces the current position and clears the history.
func (g *Game) SetPosition(pos Position, turn int) {
	g.pos = pos
	g.turn = turn
	g.history = g.history[:0]
	g.genned = false
}

// Position returns the current piece bitboards.
func (g *Game) Position() Position {
	return g.pos
}

// Turn returns the side to move.
func (g *Game) Turn() int {
	return g.turn
}

// LegalMoves returns the legal moves for the side to move. The slice is
// owned by the game but never mutated in place: it remains valid across
// Make and Unmake calls.
func (g *Game) LegalMoves() []Move {
	if !g.genned {
		g.moves = generateMoves(g.pos, g.turn)
		g.genned = true
	}
	return g.moves
}

// HasEnded reports whether the side to move has no legal moves.
func (g *Game) HasEnded() bool {
	return len(g.LegalMoves()) == 0
}

// Outcome returns the exact score from the mover's perspective once the
// game has ended. A player with no legal moves loses.
func (g *Game) Outcome() int {
	return -MaxScore
}

// Make plays a legal move. A man that finishes on its promotion row
// becomes a king; a man that merely passes through it during a capture
// sequence does not.
func (g *Game) Make(m Move) {
	man, king := SouthMan, SouthKing
	oppMan, oppKing := NorthMan, NorthKing
	promotion := southPromotion

	if g.turn == North {
		man, king = NorthMan, NorthKing
		oppMan, oppKing = SouthMan, SouthKing
		promotion = northPromotion
	}

	from, to := bits.Bit(m.From), bits.Bit(m.To)
	u := undo{move: m}

	if g.pos[man]&from != 0 {
		g.pos[man] &^= from
		if to&promotion != 0 {
			g.pos[king] |= to
			u.promoted = true
		} else {
			g.pos[man] |= to
		}
	} else {
		u.wasKing = true
		g.pos[king] = g.pos[king]&^from | to
	}

	u.capturedMen = g.pos[oppMan] & m.Captures
	u.capturedKings = g.pos[oppKing] & m.Captures
	g.pos[oppMan] &^= u.capturedMen
	g.pos[oppKing] &^= u.capturedKings

	g.turn = -g.turn
	g.history = append(g.history, u)
	g.genned = false
}

// Unmake takes back the last move played.
func (g *Game) Unmake() {
	last := len(g.history) - 1
	u := g.history[last]
	g.history = g.history[:last]
	g.turn = -g.turn

	man, king := SouthMan, SouthKing
	oppMan, oppKing := NorthMan, NorthKing

	if g.turn == North {
		man, king = NorthMan, NorthKing
		oppMan, oppKing = SouthMan, SouthKing
	}

	from, to := bits.Bit(u.move.From), bits.Bit(u.move.To)

	switch {
	case u.wasKing:
		g.pos[king] = g.pos[king]&^to | from
	case u.promoted:
		g.pos[king] &^= to
		g.pos[man] |= from
	default:
		g.pos[man] = g.pos[man]&^to | from
	}

	g.pos[oppMan] |= u.capturedMen
	g.pos[oppKing] |= u.capturedKings
	g.genned = false
}
