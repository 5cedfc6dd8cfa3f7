package chess2

import "math"

// Piece represents the contents of a single mailbox square: one of the
// 21 playable piece letters, the empty-square dot, or an off-board
// whitespace sentinel. Uppercase pieces belong to the side to move.
type Piece byte

const (
	Empty    Piece = '.'
	OffBoard Piece = ' '
)

// royal reports whether p is one of the four king-class letters, in
// either case.
func (p Piece) royal() bool {
	switch p.upper() {
	case 'K', 'W', 'U', 'C':
		return true
	}
	return false
}

func (p Piece) upper() Piece {
	if p >= 'a' && p <= 'z' {
		return p - ('a' - 'A')
	}
	return p
}

func (p Piece) ours() bool { return p >= 'A' && p <= 'Z' }

func (p Piece) theirs() bool { return p >= 'a' && p <= 'z' }

// flip returns p belonging to the opposite side; the board sentinel
// and the empty square are unaffected.
func (p Piece) flip() Piece {
	switch {
	case p.ours():
		return p + ('a' - 'A')
	case p.theirs():
		return p - ('a' - 'A')
	default:
		return p
	}
}

// Square addresses one cell of the 10x12 mailbox board. Values outside
// [0,119] never occur; the border ranks/files are off-board sentinels.
type Square int

// Compass direction deltas on the 10-wide mailbox, plus H ("here"),
// the Warrior King's whirlwind self-move.
const (
	N = -10
	E = 1
	S = 10
	W = -1
	H = 0
)

// Board corners, from the side-to-move's point of view.
const (
	A1 Square = 91
	H1 Square = 98
	A8 Square = 21
	H8 Square = 28
)

// compassDirs lists the 8 king-adjacent compass neighbors used by the
// whirlwind rule.
var compassDirs = [8]int{N, E, S, W, N + E, S + E, S + W, N + W}

func (s Square) rank() int { return int(s) / 10 }
func (s Square) file() int { return int(s) % 10 }

// distance is the truncated Euclidean distance between two squares on
// the (rank,file) grid.
func distance(a, b Square) int {
	dr := a.rank() - b.rank()
	df := a.file() - b.file()
	return int(math.Sqrt(float64(dr*dr + df*df)))
}

// String renders a square in algebraic notation, e.g. Square(85) -> "e2".
func (s Square) String() string {
	rank, file := divmod(int(s)-int(A1), 10)
	return string([]byte{byte(file) + 'a', byte(-rank) + '1'})
}

// ParseSquare parses an algebraic square such as "e2" into its mailbox
// index. It returns ok=false if the string is not a well-formed square.
func ParseSquare(s string) (sq Square, ok bool) {
	if len(s) != 2 {
		return 0, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	f := int(file - 'a')
	r := '1' - int(rank)
	return A1 + Square(f) + Square(10*r), true
}

func divmod(a, b int) (int, int) {
	q := a / b
	r := a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// Board is the 120-cell mailbox. Rows 0-1 and 10-11 and the first/last
// column of every interior row are always off-board whitespace.
type Board [120]Piece

// String renders all 120 cells of the board, sentinels included,
// separated by spaces.
func (b Board) String() string {
	out := make([]byte, 0, 240)
	for i, p := range b {
		out = append(out, byte(p))
		if i != len(b)-1 {
			out = append(out, ' ')
		}
	}
	return string(out)
}

// flip reverses the board end-to-end and swaps the case (ownership) of
// every piece, producing the board as seen by the opponent.
func (b Board) flip() (out Board) {
	for i, p := range b {
		out[len(b)-1-i] = p.flip()
	}
	return out
}
