package chess2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareString(t *testing.T) {
	cases := map[Square]string{
		A1: "a1", H1: "h1", A1 + 1: "b1", A1 - 10: "a2", A8: "a8", H8: "h8",
	}
	for sq, want := range cases {
		assert.Equal(t, want, sq.String(), "square %d", int(sq))
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "a8", "h1"} {
		sq, ok := ParseSquare(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, sq.String())
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "a0", "zz", "abc"} {
		_, ok := ParseSquare(s)
		assert.False(t, ok, s)
	}
}

func TestBoardFlipInvolution(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	flipped := pos.Board.flip().flip()
	assert.Equal(t, pos.Board, flipped)
}

func TestBoardFlipSwapsOwnership(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	flipped := pos.Board.flip()
	assert.Equal(t, Piece('R'), flipped[A1])
	assert.Equal(t, Piece('r'), flipped[A8])
}
