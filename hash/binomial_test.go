package hash

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/joansalasoler/draughts/game"
)

func TestBinomialRange(t *testing.T) {
	is := is.New(t)
	is.Equal(NewBinomial(50, 2).Range(), uint64(50))
	is.Equal(NewBinomial(50, 3).Range(), uint64(1225))
	is.Equal(NewBinomial(50, 6).Range(), uint64(2118760))
}

func TestUnrankIsInverseOfRank(t *testing.T) {
	is := is.New(t)

	// Exhaustive for small piece counts.
	for slots := 2; slots <= 4; slots++ {
		b := NewBinomial(game.BoardSize, slots)
		for rank := uint64(0); rank < b.Range(); rank++ {
			gaps := b.Unrank(rank)
			is.Equal(len(gaps), slots)

			total := 0
			for _, gap := range gaps {
				is.True(gap >= 0)
				total += gap
			}
			is.Equal(total, game.BoardSize-slots+1)
			is.Equal(b.Rank(gaps), rank)
		}
	}
}

func TestUnrankIsInverseOfRankSampled(t *testing.T) {
	is := is.New(t)

	b := NewBinomial(game.BoardSize, 6)
	for i := 0; i < 10000; i++ {
		rank := frand.Uint64n(b.Range())
		is.Equal(b.Rank(b.Unrank(rank)), rank)
	}
}

func TestRankIsABijection(t *testing.T) {
	is := is.New(t)

	// Ranking every 2-piece square selection must cover the range
	// without collisions.
	b := NewBinomial(game.BoardSize, 3)
	seen := make(map[uint64]bool)

	for first := 0; first < game.BoardSize; first++ {
		for second := first + 1; second < game.BoardSize; second++ {
			gaps := []int{
				first,
				second - first - 1,
				game.BoardSize - 1 - second,
			}
			rank := b.Rank(gaps)
			is.True(rank < b.Range())
			is.True(!seen[rank])
			seen[rank] = true
		}
	}

	is.Equal(len(seen), int(b.Range()))
}
