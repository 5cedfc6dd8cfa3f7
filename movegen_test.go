package chess2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// emptyPosition returns a Position with an all-empty interior, useful
// for exercising one piece's move generation in isolation.
func emptyPosition(white, black Army) Position {
	pos := StartPosition(white, black)
	for row := 2; row < 10; row++ {
		for col := 1; col < 9; col++ {
			pos.Board[row*10+col] = Empty
		}
	}
	pos.WCastle = Castling{}
	pos.BCastle = Castling{}
	return pos
}

func TestPawnDoublePush(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	e2, _ := ParseSquare("e2")
	e3, _ := ParseSquare("e3")
	e4, _ := ParseSquare("e4")
	moves := GenMoves(pos)
	assert.Contains(t, moves, Move{e2, e3})
	assert.Contains(t, moves, Move{e2, e4})
}

func TestCastlingEmission(t *testing.T) {
	pos := emptyPosition(Classic, Classic)
	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	pos.Board[e1] = 'K'
	pos.Board[H1] = 'R'
	pos.WCastle = Castling{Queenside: true, Kingside: true}

	moves := GenMoves(pos)
	assert.Contains(t, moves, Move{e1, g1})
}

func TestCastlingWithheldWithoutRights(t *testing.T) {
	pos := emptyPosition(Classic, Classic)
	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	pos.Board[e1] = 'K'
	pos.Board[H1] = 'R'
	pos.WCastle = Castling{}

	moves := GenMoves(pos)
	assert.NotContains(t, moves, Move{e1, g1})
}

func TestSecondTurnRestrictsToWarriors(t *testing.T) {
	pos := emptyPosition(TwoKings, TwoKings)
	pos.Second = true
	uSq, _ := ParseSquare("e4")
	nSq, _ := ParseSquare("b1")
	pos.Board[uSq] = 'U'
	pos.Board[nSq] = 'N'

	moves := GenMoves(pos)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, uSq, m.From)
	}
}

func TestWarriorWhirlwindBlockedByNeighbor(t *testing.T) {
	pos := emptyPosition(TwoKings, TwoKings)
	uSq, _ := ParseSquare("e4")
	wSq := uSq + Square(N)
	pos.Board[uSq] = 'U'
	pos.Board[wSq] = 'W'

	moves := genWarriorSteps(pos, uSq)
	assert.NotContains(t, moves, Move{uSq, uSq})
}

func TestWarriorWhirlwindAvailableWhenAlone(t *testing.T) {
	pos := emptyPosition(TwoKings, TwoKings)
	uSq, _ := ParseSquare("e4")
	pos.Board[uSq] = 'U'

	moves := genWarriorSteps(pos, uSq)
	assert.Contains(t, moves, Move{uSq, uSq})
}

func TestTigerCaptureAndStayIsPseudoLegal(t *testing.T) {
	pos := emptyPosition(Animals, Animals)
	tSq, _ := ParseSquare("d4")
	target := tSq + Square(N+E)
	pos.Board[tSq] = 'T'
	pos.Board[target] = 'n'

	moves := genTiger(pos, tSq)
	assert.Contains(t, moves, Move{tSq, target})
}

func TestEmpoweredXGainsKnightJumpNearY(t *testing.T) {
	pos := emptyPosition(Empowered, Empowered)
	xSq, _ := ParseSquare("d4")
	ySq := xSq + Square(E)
	pos.Board[xSq] = 'X'
	pos.Board[ySq] = 'Y'

	moves := genEmpowered(pos, xSq, 'X')
	found := false
	for _, m := range moves {
		if m.To == xSq+Square(-19) {
			found = true
		}
	}
	assert.True(t, found, "expected X to gain a knight jump adjacent to Y")
}

func TestEmpoweredXWithoutNeighborHasNoKnightJump(t *testing.T) {
	pos := emptyPosition(Empowered, Empowered)
	xSq, _ := ParseSquare("d4")
	pos.Board[xSq] = 'X'

	moves := genEmpowered(pos, xSq, 'X')
	for _, m := range moves {
		assert.NotEqual(t, xSq+Square(-19), m.To)
	}
}
