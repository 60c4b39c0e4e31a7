package board_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bitchess/board"
)

func TestLoadFENRoundTrip(t *testing.T) {
	pos := board.New()
	if err := pos.LoadFEN(board.StartFEN); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if got := pos.ToFEN(); got != board.StartFEN {
		t.Errorf("round trip: got %q want %q", got, board.StartFEN)
	}
}

func TestLoadFENTolerantOfUnknownCharacters(t *testing.T) {
	pos := board.New()
	// 'x' is not a recognised placement character; it should be skipped
	// rather than rejected (spec.md §7).
	err := pos.LoadFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("LoadFEN returned error for tolerant case: %v", err)
	}
	if kind, _, ok := pos.PieceAt(board.MakeSquare(7, 7)); ok {
		t.Errorf("expected h8 empty after skipping unknown char, got %v", kind)
	}
}

func TestLoadFENRejectsWrongRankCount(t *testing.T) {
	pos := board.New()
	if err := pos.LoadFEN("8/8/8 w - - 0 1"); err == nil {
		t.Error("expected error for FEN with wrong rank count")
	}
}

func TestMakeUndoRestoresPosition(t *testing.T) {
	pos := board.New()
	pos.LoadFEN(board.StartFEN)

	before := snapshot(pos)
	moves := board.GenerateLegalMoves(pos, pos.SideToMove())
	for _, m := range moves {
		mv := m
		pos.Make(&mv)
		pos.Undo(&mv)
		after := snapshot(pos)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Fatalf("Make/Undo for %s did not restore position (-before +after):\n%s", mv, diff)
		}
	}
}

func TestCastlingMovesRookToo(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	pos := board.New()
	pos.LoadFEN(fen)

	var castle board.Move
	found := false
	for _, m := range board.GenerateLegalMoves(pos, board.White) {
		if m.IsCastle() && m.To == 6 {
			castle = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected kingside castle move to be generated")
	}

	pos.Make(&castle)
	if kind, side, ok := pos.PieceAt(5); !ok || kind != board.Rook || side != board.White {
		t.Errorf("expected white rook on f1 after castling, got kind=%v side=%v ok=%v", kind, side, ok)
	}
	if _, _, ok := pos.PieceAt(7); ok {
		t.Error("expected h1 empty after castling")
	}
	pos.Undo(&castle)
	if kind, side, ok := pos.PieceAt(7); !ok || kind != board.Rook || side != board.White {
		t.Errorf("expected white rook back on h1 after undo, got kind=%v side=%v ok=%v", kind, side, ok)
	}
}

func TestCastlingRightsRevokedOnRookCapture(t *testing.T) {
	fen := "r3k2r/8/6N1/8/8/8/8/R3K3 w kq - 0 1"
	pos := board.New()
	pos.LoadFEN(fen)
	// Knight on g6 captures on h8, which should strip black's kingside right.
	mv := board.Move{From: 46, To: 63, Flags: board.FlagCapture, Moved: board.Knight}
	pos.Make(&mv)
	if pos.CastlingRights()&board.CastleBK != 0 {
		t.Error("expected black kingside castling right revoked after rook captured on h8")
	}
	if pos.CastlingRights()&board.CastleBQ == 0 {
		t.Error("expected black queenside castling right to survive")
	}
}

type posSnapshot struct {
	FEN string
}

func snapshot(p *board.Position) posSnapshot {
	return posSnapshot{FEN: p.ToFEN()}
}
