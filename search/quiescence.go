package search

import (
	"bitchess/board"
	"bitchess/eval"
)

// quiescence extends search past the horizon along capture and promotion
// sequences only, to avoid misjudging a position mid-exchange. It stands pat
// at the static evaluation and then searches every legal capture and
// promotion (spec.md §4.7); there is no SEE pruning or delta-margin cutoff.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta int) int {
	s.nodes++

	standPat := sideToMoveScore(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	side := pos.SideToMove()
	moves := captureMoves(pos, side)
	orderMoves(pos, moves)

	for _, m := range moves {
		mv := m
		pos.Make(&mv)
		if pos.IsKingInCheck(side) {
			pos.Undo(&mv)
			continue
		}
		score := -s.quiescence(pos, -beta, -alpha)
		pos.Undo(&mv)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func captureMoves(pos *board.Position, side board.Side) []board.Move {
	all := board.GenerateLegalMoves(pos, side)
	captures := all[:0:0]
	for _, m := range all {
		if m.IsCapture() || m.IsPromotion() {
			captures = append(captures, m)
		}
	}
	return captures
}

func sideToMoveScore(pos *board.Position) int {
	score := eval.Evaluate(pos)
	if pos.SideToMove() == board.Black {
		return -score
	}
	return score
}
