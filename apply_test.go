package chess2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPawnDoublePushSetsEnPassantSquare(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	next := Apply(pos, Move{e2, e4})
	// Apply already flips the result to the opponent's point of view;
	// flip back once more to inspect it from the mover's side.
	back := next.flip()
	assert.Equal(t, e2+Square(N), back.EP)
}

func TestApplyCastlingMovesRookAndSetsKingPassant(t *testing.T) {
	pos := emptyPosition(Classic, Classic)
	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	f1, _ := ParseSquare("f1")
	pos.Board[e1] = 'K'
	pos.Board[H1] = 'R'
	pos.WCastle = Castling{Queenside: true, Kingside: true}

	next := Apply(pos, Move{e1, g1})
	back := next.flip()
	assert.Equal(t, Piece('K'), back.Board[g1])
	assert.Equal(t, Piece('R'), back.Board[f1])
	assert.Equal(t, Empty, back.Board[H1])
	assert.Equal(t, f1, back.KP)
	assert.False(t, back.WCastle.Kingside)
	assert.False(t, back.WCastle.Queenside)
}

func TestApplyTigerCaptureStaysInPlace(t *testing.T) {
	pos := emptyPosition(Animals, Animals)
	tSq, _ := ParseSquare("d4")
	target := tSq + Square(N+E)
	pos.Board[tSq] = 'T'
	pos.Board[target] = 'n'

	next := Apply(pos, Move{tSq, target})
	back := next.flip()
	assert.Equal(t, Piece('T'), back.Board[tSq])
	assert.Equal(t, Empty, back.Board[target])
}

func TestApplyPawnPromotesOnLastRank(t *testing.T) {
	pos := emptyPosition(Classic, Classic)
	from := A8 + 11 // one square short of the back rank, on file b
	to := from + Square(N)
	pos.Board[from] = 'P'
	pos.Board[to] = Empty

	next := Apply(pos, Move{from, to})
	back := next.flip()
	assert.Equal(t, Piece('Q'), back.Board[to])
}

func TestElephantRampageAdvancesAfterCapture(t *testing.T) {
	pos := emptyPosition(Animals, Animals)
	eSq, _ := ParseSquare("a4")
	target := eSq + Square(E)
	pos.Board[eSq] = 'E'
	pos.Board[target] = 'n'

	next := Apply(pos, Move{eSq, target})
	back := next.flip()
	assert.NotEqual(t, Piece('n'), back.Board[target])
	count := 0
	for _, p := range back.Board {
		if p == 'E' {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one Elephant should remain on the board")
}

func TestValueAwardsCaptureBonus(t *testing.T) {
	pos := emptyPosition(Classic, Classic)
	rSq, _ := ParseSquare("a1")
	target, _ := ParseSquare("a5")
	pos.Board[A1] = Empty
	pos.Board[rSq] = 'R'
	pos.Board[target] = 'n'

	quiet := emptyPosition(Classic, Classic)
	quiet.Board[A1] = Empty
	quiet.Board[rSq] = 'R'

	captureValue := Value(pos, Move{rSq, target})
	quietValue := Value(quiet, Move{rSq, target})
	assert.Greater(t, captureValue, quietValue)
}
