package search

import (
	"golang.org/x/exp/slices"

	"bitchess/board"
)

// mvvLva scores captures by Most Valuable Victim - Least Valuable Aggressor,
// indexed [victim][attacker]. Higher scores are searched first.
var mvvLva = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},
}

const (
	captureOffset  = 1000
	promotionBonus = 1 // tiebreak only: never close the gap to captureOffset
)

// orderMoves sorts moves in place, most promising first: captures before
// quiet moves, MVV-LVA among captures, promotions as a tiebreak within
// whichever class a move already belongs to (spec.md §4.7). Stable sort
// keeps quiet-move order deterministic move to move, which matters for
// reproducing a search trace.
func orderMoves(pos *board.Position, moves []board.Move) {
	slices.SortStableFunc(moves, func(a, b board.Move) bool {
		return moveScore(pos, a) > moveScore(pos, b)
	})
}

func moveScore(pos *board.Position, m board.Move) int {
	score := 0
	if m.IsCapture() {
		victim, _, ok := pos.PieceAt(m.To)
		if !ok {
			victim = board.Pawn // defensive: capture flag set but square empty should not happen
		}
		score = captureOffset + mvvLva[victim][m.Moved]
	}
	if m.IsPromotion() {
		score += promotionBonus
	}
	return score
}
