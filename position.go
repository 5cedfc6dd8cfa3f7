package chess2

// Castling holds the queenside/kingside castling rights for one side.
type Castling struct {
	Queenside bool
	Kingside  bool
}

// Position is an immutable value object describing one side's view of
// the game. All fields are comparable, so a Position can be used
// directly as a transposition table key, exactly like the teacher's
// map[Position]entry.
type Position struct {
	Board   Board
	Color   int // 0 or 1, whose point of view Board is in
	Second  bool
	Score   int
	WArmy   Army
	BArmy   Army
	WStone  int
	BStone  int
	WCastle Castling
	BCastle Castling
	EP      Square
	KP      Square
}

// Flip reverses a position from our point of view to the opponent's.
// Exported for callers outside the package (the CLI) that need to hand
// the turn to the opponent directly, such as when a Two Kings bonus
// sub-turn has no legal move.
func (p Position) Flip() Position {
	return p.flip()
}

// flip reverses a position from our point of view to the opponent's:
// the board is reversed and every piece's ownership is swapped, the
// score is negated, and the side-relative fields trade places.
func (p Position) flip() Position {
	ep, kp := p.EP, p.KP
	if ep == 0 {
		ep = 119
	}
	if kp == 0 {
		kp = 119
	}
	return Position{
		Board:   p.Board.flip(),
		Color:   1 - p.Color,
		Second:  false,
		Score:   -p.Score,
		WArmy:   p.BArmy,
		BArmy:   p.WArmy,
		WStone:  p.BStone,
		BStone:  p.WStone,
		WCastle: p.BCastle,
		BCastle: p.WCastle,
		EP:      119 - ep,
		KP:      119 - kp,
	}
}
