package bitset

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestPutGet(t *testing.T) {
	is := is.New(t)

	m, err := NewMap(2, 100)
	is.NoErr(err)
	is.Equal(m.Size(), uint64(100))

	m.Put(0, 3)
	m.Put(1, 1)
	m.Put(31, 2)
	m.Put(32, 3)
	m.Put(99, 1)

	is.Equal(m.Get(0), uint64(3))
	is.Equal(m.Get(1), uint64(1))
	is.Equal(m.Get(31), uint64(2))
	is.Equal(m.Get(32), uint64(3))
	is.Equal(m.Get(99), uint64(1))
	is.Equal(m.Get(50), uint64(0))
}

func TestPutTruncatesToWidth(t *testing.T) {
	is := is.New(t)

	m, err := NewMap(2, 8)
	is.NoErr(err)

	m.Put(3, 7)
	is.Equal(m.Get(3), uint64(3))
	is.Equal(m.Get(2), uint64(0))
	is.Equal(m.Get(4), uint64(0))
}

func TestPutOverwrites(t *testing.T) {
	is := is.New(t)

	m, err := NewMap(4, 16)
	is.NoErr(err)

	m.Put(5, 15)
	m.Put(5, 9)
	is.Equal(m.Get(5), uint64(9))
}

func TestInvalidWidth(t *testing.T) {
	is := is.New(t)

	for _, width := range []uint{0, 3, 5, 7, 65} {
		_, err := NewMap(width, 10)
		is.True(err != nil)
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	is := is.New(t)

	m, err := NewMap(2, 1000)
	is.NoErr(err)
	for i := uint64(0); i < m.Size(); i++ {
		m.Put(i, frand.Uint64n(4))
	}

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	is.NoErr(err)
	is.Equal(n, int64(buf.Len()))

	loaded, err := NewMap(2, 1000)
	is.NoErr(err)
	_, err = loaded.ReadFrom(&buf)
	is.NoErr(err)

	for i := uint64(0); i < m.Size(); i++ {
		is.Equal(loaded.Get(i), m.Get(i))
	}
}

func TestReadFromShortStream(t *testing.T) {
	is := is.New(t)

	m, err := NewMap(2, 1000)
	is.NoErr(err)

	_, err = m.ReadFrom(bytes.NewReader(make([]byte, 8)))
	is.True(err != nil)
}
