package chess2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionFlipInvolution(t *testing.T) {
	pos := StartPosition(Nemesis, Animals)
	back := pos.flip().flip()
	assert.Equal(t, pos, back)
}

func TestPositionFlipNegatesScore(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	pos.Score = 42
	assert.Equal(t, -42, pos.flip().Score)
}

func TestPositionFlipSwapsArmiesAndCastling(t *testing.T) {
	pos := StartPosition(Empowered, Reaper)
	pos.BCastle = Castling{Queenside: false, Kingside: true}
	flipped := pos.flip()
	assert.Equal(t, Reaper, flipped.WArmy)
	assert.Equal(t, Empowered, flipped.BArmy)
	assert.Equal(t, Castling{Queenside: false, Kingside: true}, flipped.WCastle)
}

func TestStartPositionPlacesArmies(t *testing.T) {
	pos := StartPosition(Animals, Classic)
	assert.Equal(t, Piece('E'), pos.Board[A1])
	assert.Equal(t, Piece('P'), pos.Board[A1-10])
	assert.Equal(t, Piece('r'), pos.Board[A8])
	assert.Equal(t, Castling{true, true}, pos.WCastle)
}
