// Package search implements iterative-deepening negamax alpha-beta search
// over the board package's move generator and the eval package's static
// evaluator.
package search

import (
	"bitchess/board"
	"bitchess/eval"
)

// Config controls one search invocation.
type Config struct {
	MaxDepth int  // iterative deepening runs depths 1..MaxDepth
	Quiesce  bool // whether to extend leaf nodes with quiescence search
}

// Result reports the outcome of a completed search.
type Result struct {
	BestMove      board.Move
	Score         int // from the root side to move's perspective
	Depth         int
	NodesSearched int
}

// Searcher holds the mutable counters of one search run. It is not safe
// for concurrent use.
type Searcher struct {
	cfg   Config
	nodes int
}

// NewSearcher returns a Searcher configured per cfg.
func NewSearcher(cfg Config) *Searcher {
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 1
	}
	return &Searcher{cfg: cfg}
}

// FindBestMove runs iterative deepening from depth 1 to cfg.MaxDepth and
// returns the result of the deepest completed iteration.
func (s *Searcher) FindBestMove(pos *board.Position) Result {
	var best Result

	for depth := 1; depth <= s.cfg.MaxDepth; depth++ {
		s.nodes = 0
		move, score, ok := s.rootSearch(pos, depth)
		if !ok {
			break
		}
		best = Result{BestMove: move, Score: score, Depth: depth, NodesSearched: s.nodes}
	}
	return best
}

const infinity = eval.Mate + 1

// rootSearch searches every legal move at the root to depth-1 plies below
// it, returning the best move and its score from the root side's
// perspective. ok is false if there are no legal moves.
func (s *Searcher) rootSearch(pos *board.Position, depth int) (board.Move, int, bool) {
	side := pos.SideToMove()
	moves := board.GenerateLegalMoves(pos, side)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}
	orderMoves(pos, moves)

	alpha, beta := -infinity, infinity
	var bestMove board.Move
	bestScore := -infinity

	for _, m := range moves {
		mv := m
		pos.Make(&mv)
		score := -s.negamax(pos, depth-1, -beta, -alpha)
		pos.Undo(&mv)

		if score > eval.Mate-1000 {
			score--
		} else if score < -(eval.Mate - 1000) {
			score++
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return bestMove, bestScore, true
}

// negamax searches to depth plies, applying mate-distance adjustment so a
// shorter forced mate is always preferred over a longer one (spec.md §9
// Open Question 3).
func (s *Searcher) negamax(pos *board.Position, depth, alpha, beta int) int {
	s.nodes++

	side := pos.SideToMove()
	moves := board.GenerateLegalMoves(pos, side)

	if len(moves) == 0 {
		if pos.IsKingInCheck(side) {
			return -eval.Mate
		}
		return 0
	}

	if depth == 0 {
		if s.cfg.Quiesce {
			return s.quiescence(pos, alpha, beta)
		}
		return sideToMoveScore(pos)
	}

	orderMoves(pos, moves)

	for _, m := range moves {
		mv := m
		pos.Make(&mv)
		score := -s.negamax(pos, depth-1, -beta, -alpha)
		pos.Undo(&mv)

		// Mate-distance adjustment: a mate found one ply deeper is worth
		// one less than a mate found here, so the search always prefers
		// the shortest forced mate (spec.md §9 Open Question 3).
		if score > eval.Mate-1000 {
			score--
		} else if score < -(eval.Mate - 1000) {
			score++
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
