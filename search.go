package chess2

import (
	"sort"

	"go.uber.org/zap"
)

// TableSize caps the number of entries kept in a Searcher's
// transposition table before the oldest entries are evicted.
const TableSize = 1_000_000

type ttEntry struct {
	depth int
	score int
	gamma int
	move  Move
}

// Searcher runs an MTD-bi iterative-deepening search, memoizing
// bound() results in a transposition table keyed by Position equality.
// A Searcher is not safe for concurrent use; callers searching
// multiple games concurrently should use one Searcher per game.
type Searcher struct {
	tt    map[Position]ttEntry
	order []Position // insertion order, for FIFO eviction
	nodes int
	log   *zap.Logger
}

// NewSearcher builds a Searcher that logs each iterative-deepening
// step through log. A nil log is replaced with zap.NewNop().
func NewSearcher(log *zap.Logger) *Searcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Searcher{tt: make(map[Position]ttEntry), log: log}
}

func (s *Searcher) remember(pos Position, e ttEntry) {
	if _, exists := s.tt[pos]; !exists {
		s.order = append(s.order, pos)
	}
	s.tt[pos] = e
	if len(s.tt) > TableSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.tt, oldest)
	}
}

// bound returns a value r such that score(pos) <= r < gamma when
// score(pos) < gamma, or gamma <= r <= score(pos) when score(pos) >=
// gamma. This lets the MTD-bi driver narrow in on the true score with
// a sequence of cheap null-window searches.
func (s *Searcher) bound(pos Position, gamma, depth int) int {
	s.nodes++

	entry, cached := s.tt[pos]
	if cached && entry.depth >= depth &&
		((entry.score < entry.gamma && entry.score < gamma) ||
			(entry.score >= entry.gamma && entry.score >= gamma)) {
		return entry.score
	}

	if abs(pos.Score) >= MateValue {
		return pos.Score
	}

	// Null move, doubling as a stalemate/zugzwang check. On a Two Kings
	// bonus sub-turn the position is flipped with Second cleared, and the
	// result is used without negation.
	var nullscore int
	if pos.Second {
		still := pos
		still.Second = false
		if depth > 0 {
			nullscore = s.bound(still.flip(), 1-gamma, depth-3)
		} else {
			nullscore = pos.Score
		}
	} else {
		if depth > 0 {
			nullscore = -s.bound(pos.flip(), 1-gamma, depth-3)
		} else {
			nullscore = pos.Score
		}
	}
	if nullscore >= gamma {
		return nullscore
	}

	moves := GenMoves(pos)
	sort.SliceStable(moves, func(a, b int) bool {
		return Value(pos, moves[a]) > Value(pos, moves[b])
	})

	best, bestMove := -3*MateValue, Move{}
	for _, m := range moves {
		if depth <= 0 && Value(pos, m) < 150 {
			break
		}
		var score int
		if pos.Second {
			score = s.bound(Apply(pos, m), 1-gamma, depth-1)
		} else {
			score = -s.bound(Apply(pos, m), 1-gamma, depth-1)
		}
		if score > best {
			best = score
			bestMove = m
		}
		if score >= gamma {
			break
		}
	}

	if depth <= 0 && best < nullscore {
		return nullscore
	}

	// Stalemate guard: a lost-looking best move is discarded in favor
	// of doing nothing, provided doing nothing isn't itself a loss.
	if depth > 0 && best <= -MateValue && nullscore > -MateValue {
		best = 0
	}

	if !cached || (depth >= entry.depth && best >= gamma) {
		s.remember(pos, ttEntry{depth: depth, score: best, gamma: gamma, move: bestMove})
	}
	return best
}

// Search runs iterative deepening over depths 1 to 98, stopping once the
// node budget maxNodes is spent or a forced mate is found, and returns
// the best move found along with its score.
func (s *Searcher) Search(pos Position, maxNodes int) (Move, int) {
	s.nodes = 0
	var score int
	for depth := 1; depth < 99; depth++ {
		lower, upper := -3*MateValue, 3*MateValue
		for lower < upper-3 {
			gamma := (lower + upper + 1) / 2
			score = s.bound(pos, gamma, depth)
			if score >= gamma {
				lower = score
			}
			if score < gamma {
				upper = score
			}
		}
		s.log.Debug("search depth complete",
			zap.Int("nodes", s.nodes),
			zap.Int("depth", depth),
			zap.Int("score", score),
			zap.Int("lower", lower),
			zap.Int("upper", upper),
		)
		if s.nodes >= maxNodes || abs(score) >= MateValue {
			break
		}
	}
	if entry, ok := s.tt[pos]; ok {
		return entry.move, score
	}
	return Move{}, score
}
