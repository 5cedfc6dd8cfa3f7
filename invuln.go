package chess2

// isPieceInvulnerable decides whether the piece at from cannot
// interact with to: royals can't capture ghosts, Elephants can't
// capture generic kings, Nemesis Queens or ghosts, and every other piece
// can't capture a Nemesis Queen or a ghost. A final distance rule
// protects the opposing Elephant at a distance of 3 or more.
func isPieceInvulnerable(board Board, from, to Square) bool {
	fp := board[from]
	tp := board[to]
	switch {
	case fp.royal():
		if tp == 'g' || tp == OffBoard {
			return true
		}
	case fp == 'E':
		if tp == 'C' || tp == 'm' || tp == 'g' || tp == OffBoard {
			return true
		}
	default:
		if tp == 'm' || tp == 'g' || tp == OffBoard {
			return true
		}
	}
	if tp == 'e' || tp == OffBoard {
		if distance(from, to) >= 3 {
			return true
		}
	}
	return false
}
