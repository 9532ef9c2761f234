// Package bitset packs fixed-width entries into 64-bit words. The
// endgame tables store one two-bit score code per position hash, so a
// dense packed array keeps even the five piece table within memory
// reach.
package bitset

import (
	"encoding/binary"
	"fmt"
	"io"
)

const wordSize = 64

// Map is a fixed-size array of entries, each width bits wide. Entries
// never straddle a word boundary, so width must divide the word size.
type Map struct {
	words   []uint64
	width   uint
	perWord uint64
	mask    uint64
	size    uint64
}

// NewMap allocates a map holding size entries of width bits each.
func NewMap(width uint, size uint64) (*Map, error) {
	if width == 0 || wordSize%width != 0 {
		return nil, fmt.Errorf("bitset: entry width %d does not divide %d", width, wordSize)
	}

	perWord := uint64(wordSize / width)
	words := (size + perWord - 1) / perWord

	return &Map{
		words:   make([]uint64, words),
		width:   width,
		perWord: perWord,
		mask:    (1 << width) - 1,
		size:    size,
	}, nil
}

// Size returns the number of entries the map holds.
func (m *Map) Size() uint64 {
	return m.size
}

// Get returns the entry stored at index.
func (m *Map) Get(index uint64) uint64 {
	shift := uint(index%m.perWord) * m.width
	return (m.words[index/m.perWord] >> shift) & m.mask
}

// Put stores value at index. Bits above the entry width are dropped.
func (m *Map) Put(index uint64, value uint64) {
	shift := uint(index%m.perWord) * m.width
	word := &m.words[index/m.perWord]
	*word = (*word &^ (m.mask << shift)) | (value&m.mask)<<shift
}

// WriteTo serializes the packed words in little-endian order.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, m.words); err != nil {
		return 0, err
	}
	return int64(8 * len(m.words)), nil
}

// ReadFrom fills the map from a stream produced by WriteTo. The map
// must already be sized to match the stream.
func (m *Map) ReadFrom(r io.Reader) (int64, error) {
	if err := binary.Read(r, binary.LittleEndian, m.words); err != nil {
		return 0, err
	}
	return int64(8 * len(m.words)), nil
}
