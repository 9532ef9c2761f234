package leaves

import "github.com/joansalasoler/draughts/game"

// Stub is a book with no entries. It stands in for a real tablebase
// when none is available, so callers never need a nil check.
type Stub struct{}

// Find always reports the position as not covered.
func (Stub) Find(pos game.Position, turn int) (int, bool) {
	return 0, false
}
