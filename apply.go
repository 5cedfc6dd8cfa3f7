package chess2

// MateValue is the score magnitude beyond which a position is treated
// as a forced win or loss; MidlineValue forces royal pieces off the
// board's horizontal midline.
const (
	MateValue   = 30000
	MidlineValue = 60000
)

// Value returns the incremental score delta of playing m in pos,
// combining the piece-square difference with capture, castling,
// promotion and en-passant adjustments. Search uses it both to order
// moves and, via Apply, to maintain Position.Score incrementally.
func Value(pos Position, m Move) int {
	p := pos.Board[m.From]
	q := pos.Board[m.To]
	score := pst[p][m.To] - pst[p][m.From]

	if q.theirs() {
		score += pst[q.upper()][m.To]
	}
	if q.ours() {
		score -= pst[q][m.To] / 2
	}

	if abs(int(m.To)-int(pos.KP)) < 2 {
		score += pst['K'][m.To]
	}

	if p == 'K' && abs(int(m.From)-int(m.To)) == 2 {
		mid := (m.From + m.To) / 2
		score += pst['R'][mid]
		corner := H1
		if m.To < m.From {
			corner = A1
		}
		score -= pst['R'][corner]
	}

	if p == 'P' {
		if m.To >= A8 && m.To <= H8 {
			score += pst['Q'][m.To] - pst['P'][m.To]
		}
		if m.To == pos.EP {
			score += pst['P'][m.To+S]
		}
	}

	if p.royal() && m.From > 50 && m.From < 59 {
		score = MidlineValue
	}
	if q.ours() && q.royal() {
		score = -30000
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Apply plays m in pos and returns the resulting Position, oriented
// for whichever side moves next. Most pieces follow the plain
// move/capture path; the Tiger, Elephant, Warriors and Nemesis Queen
// override it with their own semantics, handled case by case below.
func Apply(pos Position, m Move) Position {
	i, j := m.From, m.To
	p := pos.Board[i]
	q := pos.Board[j]
	board := pos.Board
	wc, bc := pos.WCastle, pos.BCastle
	var ep, kp Square
	score := pos.Score + Value(pos, m)

	switch {
	case p == 'T' && q != Empty:
		// Kills and stays: the Tiger does not move onto a capture.
		board[j] = Empty
	case p == 'E' && q != Empty:
		board[j] = board[i]
		board[i] = Empty
		rampage(&board, i, j)
	case p == 'U' || p == 'W':
		if i == j {
			for _, dr := range compassDirs {
				if board[i+Square(dr)] != OffBoard {
					board[i+Square(dr)] = Empty
				}
			}
		} else {
			board[j] = board[i]
			board[i] = Empty
		}
	case p == 'M':
		if q == Empty || q == 'k' || q == 'u' || q == 'w' || q == 'c' {
			board[j] = board[i]
			board[i] = Empty
		}
	default:
		board[j] = board[i]
		board[i] = Empty
	}

	if i == A1 {
		wc.Queenside = false
	}
	if i == H1 {
		wc.Kingside = false
	}
	if j == A8 {
		bc.Kingside = false
	}
	if j == H8 {
		bc.Queenside = false
	}

	if p == 'K' {
		wc = Castling{}
		if abs(int(i)-int(j)) == 2 {
			kp = (i + j) / 2
			corner := H1
			if j < i {
				corner = A1
			}
			board[corner] = Empty
			board[kp] = 'R'
		}
	}

	if p == 'P' {
		if j >= A8 && j <= H8 {
			board[j] = 'Q'
		}
		if j-i == 2*N {
			ep = i + N
		}
		if (j-i == N+W || j-i == N+E) && q == Empty {
			board[j+S] = Empty
		}
	}

	next := Position{
		Board: board, Color: pos.Color, Score: score,
		WArmy: pos.WArmy, BArmy: pos.BArmy,
		WStone: pos.WStone, BStone: pos.BStone,
		WCastle: wc, BCastle: bc, EP: ep, KP: kp,
	}

	if pos.Second {
		return next.flip()
	}
	if pos.WArmy == TwoKings {
		next.Second = true
		return next
	}
	return next.flip()
}

// rampage carries out the Elephant's post-capture charge: after
// landing on j having started at i, it continues up to 3 squares total
// from i in the same direction, stopping the instant the next square
// would be invulnerable.
func rampage(board *Board, i, j Square) {
	d := distance(i, j)
	if 3-d <= 0 {
		return
	}
	sameRow := i.rank() == j.rank()
	for dr := 1; dr < abs(4-d); dr++ {
		var half, full Square
		switch {
		case sameRow && i < j: // east
			half, full = j+Square(dr/2), j+Square(dr)
		case sameRow: // west
			half, full = j-Square(dr/2), j-Square(dr)
		case i < j: // south
			half, full = j+Square(dr/2)*10, j+Square(dr)*10
		default: // north
			half, full = j-Square(dr/2)*10, j-Square(dr)*10
		}
		if isPieceInvulnerable(*board, half, full) {
			break
		}
		board[full] = 'E'
		board[half] = Empty
	}
}
