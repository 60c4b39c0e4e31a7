package eval_test

import (
	"testing"

	"bitchess/board"
	"bitchess/eval"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	pos := board.New()
	pos.LoadFEN(board.StartFEN)
	if score := eval.Evaluate(pos); score != 0 {
		t.Errorf("starting position: got %d want 0", score)
	}
}

func TestExtraQueenIsStronglyFavoured(t *testing.T) {
	pos := board.New()
	pos.LoadFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if score := eval.Evaluate(pos); score < 800 {
		t.Errorf("expected a large positive score with an extra queen, got %d", score)
	}
}

func TestCheckmateScoresAsMate(t *testing.T) {
	pos := board.New()
	pos.LoadFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	if score := eval.Evaluate(pos); score != -eval.Mate {
		t.Errorf("checkmate against white: got %d want %d", score, -eval.Mate)
	}
}

func TestStalemateScoresAsDraw(t *testing.T) {
	pos := board.New()
	pos.LoadFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if score := eval.Evaluate(pos); score != 0 {
		t.Errorf("stalemate: got %d want 0", score)
	}
}

func TestBareKingsIsDraw(t *testing.T) {
	pos := board.New()
	pos.LoadFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if score := eval.Evaluate(pos); score != 0 {
		t.Errorf("king vs king: got %d want 0", score)
	}
}

func TestSameColouredBishopsIsDraw(t *testing.T) {
	// White bishop on c1 and black bishop on d8 both stand on dark squares
	// (rank+file even).
	pos := board.New()
	pos.LoadFEN("3bk3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if score := eval.Evaluate(pos); score != 0 {
		t.Errorf("same-coloured bishops vs king: got %d want 0", score)
	}
}

func TestKnightVsKingIsNotADraw(t *testing.T) {
	// spec.md §4.6 only enumerates bare kings and same-coloured bishop pairs
	// as draws; a lone knight is still material the side with it can (in
	// principle) try to use, so this must not be scored as 0.
	pos := board.New()
	pos.LoadFEN("4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	if score := eval.Evaluate(pos); score == 0 {
		t.Errorf("king+knight vs king: got %d want nonzero", score)
	}
}
