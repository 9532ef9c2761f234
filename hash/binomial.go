// Package hash implements a perfect, near-minimal hash for draughts
// positions with a bounded number of pieces. A position maps to a dense
// integer composed of a tier offset, a piece-type code and a binomial
// rank of the occupied squares; the mapping is a bijection, so every
// hash converts back to exactly one position.
package hash

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Binomial is a bijection between gap sequences and the integers in
// [0, C(size, count)). A gap sequence has count+1 non-negative values
// summing to size-count: the number of empty cells before each occupied
// cell, plus the empty cells after the last one. This is the usual
// combinatorial number system encoding of "which count cells out of
// size are occupied".
type Binomial struct {
	size   int
	count  int
	choose [][]uint64
}

// NewBinomial creates a ranker for sequences of the given number of gap
// slots over a board of the given size. The number of occupied cells is
// slots-1, matching one leading gap per cell plus the trailing gap.
func NewBinomial(size, slots int) *Binomial {
	count := slots - 1
	choose := make([][]uint64, size+1)

	for n := 0; n <= size; n++ {
		choose[n] = make([]uint64, count+1)
		for r := 0; r <= count; r++ {
			if r <= n {
				choose[n][r] = uint64(combin.Binomial(n, r))
			}
		}
	}

	return &Binomial{size: size, count: count, choose: choose}
}

// Range returns the number of distinct ranks, C(size, count).
func (b *Binomial) Range() uint64 {
	return uint64(combin.Binomial(b.size, b.count))
}

// Rank converts a gap sequence to its unique integer in [0, Range()).
func (b *Binomial) Rank(gaps []int) uint64 {
	var rank uint64
	previous := 0

	for i := 0; i < b.count; i++ {
		cell := previous + gaps[i]
		rank += b.choose[cell][i+1]
		previous = cell + 1
	}

	return rank
}

// Unrank converts an integer back into its gap sequence. It is the
// exact inverse of Rank.
func (b *Binomial) Unrank(rank uint64) []int {
	cells := make([]int, b.count)
	remainder := rank

	for i := b.count - 1; i >= 0; i-- {
		cell := i
		for cell+1 < b.size && b.choose[cell+1][i+1] <= remainder {
			cell++
		}
		remainder -= b.choose[cell][i+1]
		cells[i] = cell
	}

	gaps := make([]int, b.count+1)
	previous := -1

	for i, cell := range cells {
		gaps[i] = cell - previous - 1
		previous = cell
	}
	gaps[b.count] = b.size - 1 - previous

	return gaps
}
