package chess2

// GenMoves returns every pseudo-legal move for the side to move in pos.
// Moves are generated from the uppercase pieces in pos.Board, which is
// always oriented from the mover's point of view.
//
// When pos.Second is set, the side just played a non-bonus move with a
// Two Kings army and owes a follow-up turn: only the Warrior King and
// Warrior Queen move, one step, without re-rotating the board.
func GenMoves(pos Position) []Move {
	var moves []Move
	if pos.Second {
		for i, p := range pos.Board {
			if !p.ours() || (p != 'U' && p != 'W') {
				continue
			}
			moves = append(moves, genWarriorSteps(pos, Square(i))...)
		}
		return moves
	}

	var royal []Square
	for i, p := range pos.Board {
		switch p {
		case 'k', 'c', 'u', 'w':
			royal = append(royal, Square(i))
		}
	}

	for i, p := range pos.Board {
		if !p.ours() {
			continue
		}
		from := Square(i)
		switch p {
		case 'P':
			moves = append(moves, genPawn(pos, from)...)
		case 'L':
			moves = append(moves, genNemesisPawn(pos, from, royal)...)
		case 'A', 'G':
			moves = append(moves, genReaperFamily(pos, from, p)...)
		case 'E':
			moves = append(moves, genElephant(pos, from)...)
		case 'T':
			moves = append(moves, genTiger(pos, from)...)
		case 'M':
			moves = append(moves, genNemesisQueen(pos, from)...)
		case 'J':
			moves = append(moves, genJungleQueen(pos, from)...)
		case 'X', 'Y', 'Z':
			moves = append(moves, genEmpowered(pos, from, p)...)
		case 'U', 'W':
			moves = append(moves, genWarriorSteps(pos, from)...)
		default: // B, N, R, Q, O, K, C, H: plain sliders/crawlers
			moves = append(moves, genPlain(pos, from, p, isCrawler(p))...)
		}
	}
	return moves
}

// crawlers are pieces that only ever take the first step of a ray
// before stopping, whatever that step lands on.
var crawlerSet = map[Piece]bool{
	'P': true, 'L': true, 'T': true, 'N': true, 'H': true,
	'O': true, 'U': true, 'K': true, 'W': true, 'C': true,
}

func isCrawler(p Piece) bool { return crawlerSet[p] }

// genPlain walks the rays of an ordinary piece: it stops at the board
// edge, at an invulnerable target, or (for crawlers) after one step; it
// never yields onto a friendly square and always stops after a capture.
// The rook-direction castling trigger (a king found along the ray from
// a corner) is checked regardless of piece, exactly as upstream: in
// practice it only ever fires for the Classic army, since every other
// army's king uses a different letter than 'K'.
func genPlain(pos Position, i Square, p Piece, crawler bool) []Move {
	var moves []Move
	for _, d := range dirs[p] {
		for j := i + Square(d); ; j += Square(d) {
			q := pos.Board[j]
			if q == OffBoard {
				break
			}
			if i == A1 && q == 'K' && pos.WCastle.Queenside {
				moves = append(moves, Move{j, j - 2})
			}
			if i == H1 && q == 'K' && pos.WCastle.Kingside {
				moves = append(moves, Move{j, j + 2})
			}
			if q.ours() {
				break
			}
			if isPieceInvulnerable(pos.Board, i, j) {
				break
			}
			moves = append(moves, Move{i, j})
			if q.theirs() || crawler {
				break
			}
		}
	}
	return moves
}

// genPawn generates the classic pawn's forward pushes, double push and
// diagonal captures (including en passant and king-passant).
func genPawn(pos Position, i Square) []Move {
	var moves []Move
	for _, d := range dirs['P'] {
		j := i + Square(d)
		q := pos.Board[j]
		if q == OffBoard || q.ours() {
			continue
		}
		switch Square(d) {
		case N + W, N + E:
			if q == Empty && j != pos.EP && j != pos.KP {
				continue
			}
		case N:
			if q != Empty {
				continue
			}
		case 2 * N:
			if q != Empty {
				continue
			}
			if i < A1+N || pos.Board[i+N] != Empty {
				continue
			}
		}
		if isPieceInvulnerable(pos.Board, i, j) {
			continue
		}
		moves = append(moves, Move{i, j})
	}
	return moves
}

// genNemesisPawn generates the homing pawn's moves: blocked outright by
// any occupant on its four straight and two rearward-diagonal
// directions, and otherwise only permitted toward the octant of any
// opposing royal (the remaining two diagonals, which can capture).
func genNemesisPawn(pos Position, i Square, royal []Square) []Move {
	var moves []Move
	for _, d := range dirs['L'] {
		j := i + Square(d)
		q := pos.Board[j]
		if q == OffBoard || q.ours() {
			continue
		}
		if isPieceInvulnerable(pos.Board, i, j) {
			continue
		}
		switch Square(d) {
		case N, E, S, W, S + W, S + E:
			if q != Empty {
				continue
			}
		}
		for _, k := range royal {
			row := i.rank() - k.rank()
			column := i.file() - k.file()
			allowed := false
			switch {
			case row > 0:
				switch {
				case column > 0:
					allowed = Square(d) == N || Square(d) == W || Square(d) == N+W
				case column == 0:
					allowed = Square(d) == N
				default:
					allowed = Square(d) == N || Square(d) == E || Square(d) == N+E
				}
			case row == 0:
				switch {
				case column > 0:
					allowed = Square(d) == W
				case column < 0:
					allowed = Square(d) == E
				}
			default:
				switch {
				case column > 0:
					allowed = Square(d) == S || Square(d) == W || Square(d) == S+W
				case column == 0:
					allowed = Square(d) == S
				default:
					allowed = Square(d) == S || Square(d) == E || Square(d) == S+E
				}
			}
			if allowed {
				moves = append(moves, Move{i, j})
				break
			}
		}
	}
	return moves
}

// genReaperFamily handles the Reaper ('A') and Ghost ('G'), whose
// direction tables list absolute destination squares rather than
// deltas. The Ghost slips onto any empty square; the Reaper takes any
// vulnerable target and gives up on the rest of its list once it meets
// a friendly piece, matching the reference engine's destination order.
func genReaperFamily(pos Position, i Square, p Piece) []Move {
	var moves []Move
	for _, d := range dirs[p] {
		to := Square(d)
		q := pos.Board[to]
		if p == 'G' {
			if q == Empty {
				moves = append(moves, Move{i, to})
			}
			continue
		}
		if isPieceInvulnerable(pos.Board, i, to) {
			continue
		}
		if q.ours() {
			break
		}
		moves = append(moves, Move{i, to})
	}
	return moves
}

// genElephant generates the Elephant's single orthogonal step. It may
// land on an empty square, capture an enemy, or trample a friendly
// piece, provided the target is not invulnerable; Apply carries out the
// rampage that follows a landing on an occupied square.
func genElephant(pos Position, i Square) []Move {
	var moves []Move
	for _, d := range dirs['E'] {
		j := i + Square(d)
		q := pos.Board[j]
		if q == OffBoard {
			continue
		}
		if isPieceInvulnerable(pos.Board, i, j) {
			continue
		}
		moves = append(moves, Move{i, j})
	}
	return moves
}

var leap2Set = map[Square]bool{
	2 * (N + E): true, 2 * (S + E): true, 2 * (S + W): true, 2 * (N + W): true,
}

// genTiger generates the Tiger's single-square diagonal step and its
// leap-2 diagonal jump, which is blocked only by a friendly piece on
// the intermediate square.
func genTiger(pos Position, i Square) []Move {
	var moves []Move
	for _, d := range dirs['T'] {
		j := i + Square(d)
		q := pos.Board[j]
		if q == OffBoard || q.ours() {
			continue
		}
		if isPieceInvulnerable(pos.Board, i, j) {
			continue
		}
		if leap2Set[Square(d)] && pos.Board[i+Square(d)/2].ours() {
			continue
		}
		moves = append(moves, Move{i, j})
	}
	return moves
}

// genNemesisQueen generates the Nemesis Queen's slide: it may only
// advance onto an empty square or capture an opposing royal. It slides
// on across empty squares and stops at the first occupied one, taking
// it only if it is an opposing royal.
func genNemesisQueen(pos Position, i Square) []Move {
	var moves []Move
	for _, d := range dirs['M'] {
		for j := i + Square(d); ; j += Square(d) {
			q := pos.Board[j]
			if q == OffBoard || q.ours() {
				break
			}
			if isPieceInvulnerable(pos.Board, i, j) {
				break
			}
			if q != Empty && q != 'k' && q != 'u' && q != 'w' && q != 'c' {
				break
			}
			moves = append(moves, Move{i, j})
			if q != Empty {
				break
			}
		}
	}
	return moves
}

// genJungleQueen generates the Jungle Queen's rook-like slide together
// with its knight jump, which never slides past the first landing
// square.
func genJungleQueen(pos Position, i Square) []Move {
	var moves []Move
	for _, d := range dirs['J'] {
		knightJump := isKnightJump(d)
		for j := i + Square(d); ; j += Square(d) {
			q := pos.Board[j]
			if q == OffBoard || q.ours() {
				break
			}
			if isPieceInvulnerable(pos.Board, i, j) {
				break
			}
			moves = append(moves, Move{i, j})
			if q.theirs() || knightJump {
				break
			}
		}
	}
	return moves
}

var knightJumpSet = map[int]bool{
	-19: true, -8: true, 12: true, 21: true, 19: true, 8: true, -12: true, -21: true,
}

func isKnightJump(d int) bool { return knightJumpSet[d] }

// genEmpowered generates the shared Empowered move pool: X's diagonal
// rays are always on, Y's knight jumps are always on, Z's straight
// rays are always on; each gains the other two move types only when an
// orthogonally adjacent square holds the corresponding partner piece.
// Jumps granted by adjacency are single-step; rays granted by adjacency
// slide normally.
func genEmpowered(pos Position, i Square, p Piece) []Move {
	hasNeighbor := func(want Piece) bool {
		for _, dr := range [4]int{N, E, S, W} {
			if pos.Board[i+Square(dr)] == want {
				return true
			}
		}
		return false
	}

	diagonal := p == 'X' || (p == 'Z' && hasNeighbor('X')) || (p == 'Y' && hasNeighbor('X'))
	straight := p == 'Z' || (p == 'X' && hasNeighbor('Z')) || (p == 'Y' && hasNeighbor('Z'))
	jump := p == 'Y' || (p == 'X' && hasNeighbor('Y')) || (p == 'Z' && hasNeighbor('Y'))

	var moves []Move
	walk := func(dset []int, crawl bool) {
		for _, d := range dset {
			for j := i + Square(d); ; j += Square(d) {
				q := pos.Board[j]
				if q == OffBoard || q.ours() {
					break
				}
				if isPieceInvulnerable(pos.Board, i, j) {
					break
				}
				moves = append(moves, Move{i, j})
				if q.theirs() || crawl {
					break
				}
			}
		}
	}
	if diagonal {
		walk([]int{N + E, S + E, S + W, N + W}, false)
	}
	if straight {
		walk([]int{N, E, S, W}, false)
	}
	if jump {
		walk([]int{-19, -8, 12, 21, 19, 8, -12, -21}, true)
	}
	return moves
}

// genWarriorSteps generates a Two Kings Warrior's king-like single step
// in every direction plus its whirlwind self-move, which clears every
// occupied square among its 8 neighbors provided no other Warrior
// piece stands adjacent.
func genWarriorSteps(pos Position, i Square) []Move {
	var moves []Move
	for _, d := range dirs['U'] {
		if d == H {
			cant := false
			for _, dr := range compassDirs {
				n := pos.Board[i+Square(dr)]
				if n == 'U' || n == 'W' {
					cant = true
					break
				}
			}
			if !cant {
				moves = append(moves, Move{i, i})
			}
			continue
		}
		j := i + Square(d)
		q := pos.Board[j]
		if q == OffBoard || q.ours() {
			continue
		}
		if isPieceInvulnerable(pos.Board, i, j) {
			continue
		}
		moves = append(moves, Move{i, j})
	}
	return moves
}
