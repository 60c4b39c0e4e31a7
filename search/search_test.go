package search_test

import (
	"testing"

	"bitchess/board"
	"bitchess/search"
)

func TestFindsMateInOne(t *testing.T) {
	// White to move: Re1-e8# against a king boxed in by its own pawns.
	pos := board.New()
	if err := pos.LoadFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	s := search.NewSearcher(search.Config{MaxDepth: 3, Quiesce: true})
	result := s.FindBestMove(pos)

	mv := result.BestMove
	pos.Make(&mv)
	defer pos.Undo(&mv)

	moves := board.GenerateLegalMoves(pos, pos.SideToMove())
	if len(moves) != 0 || !pos.IsKingInCheck(pos.SideToMove()) {
		t.Errorf("expected search to find checkmate, played %s, %d replies available", mv, len(moves))
	}
}

func TestSearchReturnsALegalMove(t *testing.T) {
	pos := board.New()
	pos.LoadFEN(board.StartFEN)
	s := search.NewSearcher(search.Config{MaxDepth: 2, Quiesce: false})
	result := s.FindBestMove(pos)

	legal := board.GenerateLegalMoves(pos, pos.SideToMove())
	found := false
	for _, m := range legal {
		if m == result.BestMove {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("search returned a move not in the legal move list: %s", result.BestMove)
	}
}

func TestSearchPrefersCaptureOfHangingQueen(t *testing.T) {
	pos := board.New()
	pos.LoadFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	s := search.NewSearcher(search.Config{MaxDepth: 2, Quiesce: true})
	result := s.FindBestMove(pos)
	if result.BestMove.To != board.MakeSquare(4, 3) {
		t.Errorf("expected rook to capture the hanging queen on d5, got %s", result.BestMove)
	}
}

func TestNoLegalMovesReturnsZeroResult(t *testing.T) {
	pos := board.New()
	pos.LoadFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	s := search.NewSearcher(search.Config{MaxDepth: 3})
	result := s.FindBestMove(pos)
	if result.BestMove != (board.Move{}) {
		t.Errorf("expected zero-value move when no legal moves exist, got %s", result.BestMove)
	}
}
