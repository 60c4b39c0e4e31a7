package board

import "fmt"

// MoveFlags classifies a move beyond its source/destination squares.
type MoveFlags uint8

const (
	FlagNone MoveFlags = 0
	// FlagCapture is set when the move removes an enemy piece from To.
	FlagCapture MoveFlags = 1 << 0
	// FlagEnPassant is reserved per spec.md §9 Open Question 1; en passant
	// is not implemented, so no generator ever sets this bit.
	FlagEnPassant MoveFlags = 1 << 1
	// FlagCastle marks a king move that also relocates a rook.
	FlagCastle MoveFlags = 1 << 2
)

// Move is a self-describing move record. From/To/Flags/Moved/Promoted fully
// determine the move before it is made; the remaining fields are UNDO
// FIELDS, meaningful only between a call to Position.Make and the matching
// Position.Undo (spec.md §3, §9). A Move is not independently replayable
// once its undo fields have been populated by Make.
type Move struct {
	From, To Square
	Flags    MoveFlags
	Moved    PieceKind // kind of the piece that moves (before promotion)
	Promoted PieceKind // NoPieceKind unless this move promotes a pawn

	// Undo fields, populated by Make.
	CapturedKind         PieceKind // NoPieceKind if the move captured nothing
	PreviousSideToMove   Side
	PreviousCastleRights CastlingRights
	RookFrom, RookTo     Square // only meaningful when Flags&FlagCastle != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promoted != NoPieceKind }

// IsCapture reports whether the move removes an enemy piece (including the
// castling rook is never a "capture" — only FlagCapture moves are).
func (m Move) IsCapture() bool { return m.Flags&FlagCapture != 0 }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.Flags&FlagCastle != 0 }

var squareNames = func() [64]string {
	var names [64]string
	for sq := 0; sq < 64; sq++ {
		names[sq] = string([]byte{'a' + byte(sq%8), '1' + byte(sq/8)})
	}
	return names
}()

func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return squareNames[s]
}

// String renders the move for logging (spec.md §6): source file+rank,
// destination file+rank, optional "=X" for promotion, optional "(castle)".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += fmt.Sprintf("=%c", m.Promoted.Letter())
	}
	if m.IsCastle() {
		s += "(castle)"
	}
	return s
}
