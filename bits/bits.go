// Package bits provides single-bit operations on uint64 bitboards. The
// hashing layer uses Remove/Insert to compact a padded board layout into
// a dense, gap-free bit space and back.
package bits

import "math/bits"

// Bit returns a bitboard with only the given bit set.
func Bit(index int) uint64 {
	return 1 << uint(index)
}

// First returns the index of the lowest set bit. Returns 64 when the
// bitboard is empty.
func First(b uint64) int {
	return bits.TrailingZeros64(b)
}

// Count returns the number of set bits.
func Count(b uint64) int {
	return bits.OnesCount64(b)
}

// Empty reports whether no bits are set.
func Empty(b uint64) bool {
	return b == 0
}

// Remove deletes the bit at the given index, shifting all higher bits
// down by one position.
func Remove(b uint64, index int) uint64 {
	low := b & (Bit(index) - 1)
	high := (b >> uint(index+1)) << uint(index)
	return low | high
}

// Insert makes room for a new unset bit at the given index, shifting all
// bits at or above it up by one position. It is the inverse of Remove.
func Insert(b uint64, index int) uint64 {
	low := b & (Bit(index) - 1)
	high := (b >> uint(index)) << uint(index+1)
	return low | high
}
