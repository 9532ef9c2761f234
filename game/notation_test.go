package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestSquareBitMapping(t *testing.T) {
	is := is.New(t)

	// South's back row holds squares 46-50, north's holds 1-5.
	is.Equal(SquareToBit(46), 0)
	is.Equal(SquareToBit(50), 4)
	is.Equal(SquareToBit(1), 50)
	is.Equal(SquareToBit(5), 54)

	for square := 1; square <= BoardSize; square++ {
		bit := SquareToBit(square)
		is.True(onBoard(bit))
		is.Equal(BitToSquare(bit), square)
	}
}

func TestParsePosition(t *testing.T) {
	is := is.New(t)

	pos, turn, err := ParsePosition("W:W46,K50:B1,K5")
	is.NoErr(err)
	is.Equal(turn, South)
	is.Equal(pos[SouthMan], uint64(1)<<0)
	is.Equal(pos[SouthKing], uint64(1)<<4)
	is.Equal(pos[NorthMan], uint64(1)<<50)
	is.Equal(pos[NorthKing], uint64(1)<<54)

	_, turn, err = ParsePosition("B:W31:B20")
	is.NoErr(err)
	is.Equal(turn, North)
}

func TestParsePositionErrors(t *testing.T) {
	is := is.New(t)

	for _, notation := range []string{
		"",
		"W:W31",
		"X:W31:B20",
		"W:W0:B20",
		"W:W51:B20",
		"W:W31:B31",
		"W:W31,notasquare:B20",
	} {
		_, _, err := ParsePosition(notation)
		is.True(err != nil)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	is := is.New(t)

	for _, notation := range []string{
		"W:W31,32,K45:B5,6,K7",
		"B:W46:B1",
		"W:W28:B23",
	} {
		pos, turn, err := ParsePosition(notation)
		is.NoErr(err)
		is.Equal(FormatPosition(pos, turn), notation)
	}
}
