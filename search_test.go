package chess2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchReturnsLegalMoveFromStart(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	searcher := NewSearcher(nil)
	m, score := searcher.Search(pos, 2000)

	assert.Less(t, abs(score), MateValue)
	legal := GenMoves(pos)
	assert.Contains(t, legal, m)
}

func TestSearchIsDeterministicGivenSameBudget(t *testing.T) {
	pos := StartPosition(Classic, Classic)
	m1, score1 := NewSearcher(nil).Search(pos, 2000)
	m2, score2 := NewSearcher(nil).Search(pos, 2000)

	assert.Equal(t, m1, m2)
	assert.Equal(t, score1, score2)
}

func TestSearchHandlesNonClassicArmies(t *testing.T) {
	pos := StartPosition(Animals, TwoKings)
	searcher := NewSearcher(nil)
	m, _ := searcher.Search(pos, 1500)

	legal := GenMoves(pos)
	assert.Contains(t, legal, m)
}
