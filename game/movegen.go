package game

import (
	"github.com/joansalasoler/draughts/bits"
)

// Move is a single legal move: the origin and destination squares plus
// a bitboard of the opponent pieces it captures.
type Move struct {
	From     int
	To       int
	Captures uint64
}

// IsCapture reports whether the move captures at least one piece.
func (m Move) IsCapture() bool {
	return m.Captures != 0
}

// Diagonal step offsets on the padded layout: up-left, up-right,
// down-right and down-left.
var directions = [4]int{5, 6, -5, -6}

// generateMoves produces all legal moves for the side to move. Captures
// are mandatory and only sequences taking the most pieces are legal.
func generateMoves(pos Position, turn int) []Move {
	if captures := generateCaptures(pos, turn); len(captures) > 0 {
		return captures
	}
	return generateQuiet(pos, turn)
}

// generateCaptures produces the capture moves of maximum length. Jumped
// pieces stay on the board until the sequence completes: they block
// further jumps but cannot be taken twice.
func generateCaptures(pos Position, turn int) []Move {
	var ownMen, ownKings, enemy uint64

	if turn == South {
		ownMen, ownKings = pos[SouthMan], pos[SouthKing]
		enemy = pos.North()
	} else {
		ownMen, ownKings = pos[NorthMan], pos[NorthKing]
		enemy = pos.South()
	}

	occupied := pos.Taken()
	gen := captureGen{enemy: enemy}

	for men := ownMen; !bits.Empty(men); men &= men - 1 {
		from := bits.First(men)
		gen.from = from
		gen.occupied = occupied &^ bits.Bit(from)
		gen.manJumps(from, 0)
	}

	for kings := ownKings; !bits.Empty(kings); kings &= kings - 1 {
		from := bits.First(kings)
		gen.from = from
		gen.occupied = occupied &^ bits.Bit(from)
		gen.kingJumps(from, 0)
	}

	return gen.moves
}

// captureGen accumulates maximal capture sequences for one side.
type captureGen struct {
	from     int
	occupied uint64 // every piece except the moving one
	enemy    uint64
	best     int
	moves    []Move
	seen     map[Move]bool
}

// manJumps extends a man's capture sequence from the current square.
// Men capture over an adjacent enemy piece in any of the four
// directions, landing on the empty square directly behind it.
func (g *captureGen) manJumps(current int, captured uint64) {
	extended := false

	for _, dir := range directions {
		over := current + dir
		land := current + 2*dir

		if !onBoard(over) || !onBoard(land) {
			continue
		}
		if g.enemy&^captured&bits.Bit(over) == 0 {
			continue
		}
		if g.occupied&bits.Bit(land) != 0 {
			continue
		}

		extended = true
		g.manJumps(land, captured|bits.Bit(over))
	}

	if !extended && captured != 0 {
		g.emit(current, captured)
	}
}

// kingJumps extends a king's capture sequence. Kings fly: any number of
// empty squares may precede the captured piece, and the king may land
// on any empty square behind it before the next obstruction.
func (g *captureGen) kingJumps(current int, captured uint64) {
	extended := false

	for _, dir := range directions {
		target := current + dir

		for onBoard(target) && g.occupied&bits.Bit(target) == 0 {
			target += dir
		}

		if !onBoard(target) || g.enemy&^captured&bits.Bit(target) == 0 {
			continue
		}

		for land := target + dir; onBoard(land) && g.occupied&bits.Bit(land) == 0; land += dir {
			extended = true
			g.kingJumps(land, captured|bits.Bit(target))
		}
	}

	if !extended && captured != 0 {
		g.emit(current, captured)
	}
}

// emit records a finished sequence, keeping only those that capture the
// most pieces. Different jump orders can reach the same move, so exact
// duplicates are dropped.
func (g *captureGen) emit(to int, captured uint64) {
	count := bits.Count(captured)

	if count < g.best {
		return
	}

	if count > g.best {
		g.best = count
		g.moves = g.moves[:0]
		g.seen = nil
	}

	move := Move{From: g.from, To: to, Captures: captured}

	if g.seen == nil {
		g.seen = make(map[Move]bool)
	}
	if g.seen[move] {
		return
	}

	g.seen[move] = true
	g.moves = append(g.moves, move)
}

// generateQuiet produces the non-capturing moves: men step one square
// diagonally forward, kings slide along open diagonals.
func generateQuiet(pos Position, turn int) []Move {
	var ownMen, ownKings uint64
	var forward [2]int

	if turn == South {
		ownMen, ownKings = pos[SouthMan], pos[SouthKing]
		forward = [2]int{5, 6}
	} else {
		ownMen, ownKings = pos[NorthMan], pos[NorthKing]
		forward = [2]int{-5, -6}
	}

	occupied := pos.Taken()
	var moves []Move

	for men := ownMen; !bits.Empty(men); men &= men - 1 {
		from := bits.First(men)

		for _, dir := range forward {
			to := from + dir
			if onBoard(to) && occupied&bits.Bit(to) == 0 {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}

	for kings := ownKings; !bits.Empty(kings); kings &= kings - 1 {
		from := bits.First(kings)

		for _, dir := range directions {
			for to := from + dir; onBoard(to) && occupied&bits.Bit(to) == 0; to += dir {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}

	return moves
}
