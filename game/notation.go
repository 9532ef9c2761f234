package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joansalasoler/draughts/bits"
)

// Squares are numbered 1 to 50 in the usual draughts fashion, starting
// at north's back row and ending at south's back row. South (white)
// promotes on squares 1-5, north (black) on squares 46-50.

// rowBase holds the first bit index of each board row, bottom to top.
var rowBase = [10]int{0, 6, 11, 17, 22, 28, 33, 39, 44, 50}

// SquareToBit converts a notation square (1..50) to its bit index.
func SquareToBit(square int) int {
	index := square - 1
	row := 9 - index/5
	return rowBase[row] + index%5
}

// BitToSquare converts a bit index to its notation square (1..50).
func BitToSquare(bit int) int {
	for row := 9; row >= 0; row-- {
		if bit >= rowBase[row] {
			return 5*(9-row) + bit - rowBase[row] + 1
		}
	}
	return 0
}

// ParsePosition reads a position in draughts FEN notation, for example
// "W:W31,32,K45:B5,K6". The leading letter is the side to move; each
// section lists that side's occupied squares, kings prefixed with K.
func ParsePosition(notation string) (Position, int, error) {
	var pos Position

	parts := strings.Split(strings.TrimSpace(notation), ":")
	if len(parts) != 3 {
		return pos, 0, fmt.Errorf("malformed position %q", notation)
	}

	var turn int
	switch parts[0] {
	case "W":
		turn = South
	case "B":
		turn = North
	default:
		return pos, 0, fmt.Errorf("unknown side to move %q", parts[0])
	}

	for _, section := range parts[1:] {
		if len(section) < 1 {
			return pos, 0, fmt.Errorf("malformed section in %q", notation)
		}

		man, king := SouthMan, SouthKing
		if section[0] == 'B' {
			man, king = NorthMan, NorthKing
		} else if section[0] != 'W' {
			return pos, 0, fmt.Errorf("unknown side %q", section[0])
		}

		body := section[1:]
		if body == "" {
			continue
		}

		for _, field := range strings.Split(body, ",") {
			piece := man
			if strings.HasPrefix(field, "K") {
				piece = king
				field = field[1:]
			}

			square, err := strconv.Atoi(field)
			if err != nil || square < 1 || square > BoardSize {
				return pos, 0, fmt.Errorf("bad square %q in %q", field, notation)
			}

			bit := bits.Bit(SquareToBit(square))
			if pos.Taken()&bit != 0 {
				return pos, 0, fmt.Errorf("square %d occupied twice in %q", square, notation)
			}
			pos[piece] |= bit
		}
	}

	return pos, turn, nil
}

// FormatPosition renders a position in the notation ParsePosition reads.
func FormatPosition(pos Position, turn int) string {
	side := "W"
	if turn == North {
		side = "B"
	}

	south := sideFields(pos[SouthMan], pos[SouthKing])
	north := sideFields(pos[NorthMan], pos[NorthKing])

	return fmt.Sprintf("%s:W%s:B%s", side,
		strings.Join(south, ","), strings.Join(north, ","))
}

func sideFields(men, kings uint64) []string {
	type entry struct {
		square int
		king   bool
	}

	var entries []entry
	for b := men; !bits.Empty(b); b &= b - 1 {
		entries = append(entries, entry{BitToSquare(bits.First(b)), false})
	}
	for b := kings; !bits.Empty(b); b &= b - 1 {
		entries = append(entries, entry{BitToSquare(bits.First(b)), true})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].square < entries[j].square
	})

	fields := make([]string, len(entries))
	for i, e := range entries {
		if e.king {
			fields[i] = "K" + strconv.Itoa(e.square)
		} else {
			fields[i] = strconv.Itoa(e.square)
		}
	}
	return fields
}
