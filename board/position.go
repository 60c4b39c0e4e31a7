package board

import (
	"errors"
	"strconv"
	"strings"
)

// Occupancy set indices (spec.md §3).
const (
	WhiteAll = iota
	BlackAll
	Both
)

// Position is the single mutable chess state: twelve piece bitboards,
// three derived occupancy bitboards, side to move, and castling rights.
// It carries no en-passant target, halfmove clock, or fullmove counter
// (spec.md §1 non-goals) and no Zobrist key (no transposition table or
// repetition detection consumes one — see DESIGN.md).
type Position struct {
	bitboards      [12]Bitboard
	occupancies    [3]Bitboard
	sideToMove     Side
	castlingRights CastlingRights
}

// New returns an empty Position (no pieces, White to move, no castling
// rights).
func New() *Position {
	return &Position{}
}

// StartFEN is the piece-placement+side+castling FEN of the initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Reset sets the position to the standard starting array.
func (p *Position) Reset() {
	*p = Position{}
	p.LoadFEN(StartFEN)
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Side { return p.sideToMove }

// CastlingRights reports the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// Occupancy returns the requested occupancy bitboard (WhiteAll, BlackAll,
// or Both).
func (p *Position) Occupancy(which int) Bitboard { return p.occupancies[which] }

// PieceBB returns the bitboard of (side, kind) pieces.
func (p *Position) PieceBB(side Side, kind PieceKind) Bitboard {
	return p.bitboards[pieceIndex(side, kind)]
}

// PieceAt returns the kind and side of the piece on sq, or (NoPieceKind,
// White, false) if sq is empty.
func (p *Position) PieceAt(sq Square) (kind PieceKind, side Side, ok bool) {
	bb := SquareBB(sq)
	for idx := 0; idx < 12; idx++ {
		if p.bitboards[idx]&bb != 0 {
			return PieceKind(idx%6 + 1), Side(idx / 6), true
		}
	}
	return NoPieceKind, White, false
}

func (p *Position) setPiece(sq Square, side Side, kind PieceKind) {
	p.bitboards[pieceIndex(side, kind)] |= SquareBB(sq)
}

func (p *Position) clearPiece(sq Square, side Side, kind PieceKind) {
	p.bitboards[pieceIndex(side, kind)] &^= SquareBB(sq)
}

// recomputeOccupancies rebuilds the three derived occupancy bitboards from
// the twelve piece bitboards (spec.md §3 invariant).
func (p *Position) recomputeOccupancies() {
	var white, black Bitboard
	for k := 0; k < 6; k++ {
		white |= p.bitboards[k]
		black |= p.bitboards[6+k]
	}
	p.occupancies[WhiteAll] = white
	p.occupancies[BlackAll] = black
	p.occupancies[Both] = white | black
}

var fenPieceKinds = map[rune]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// LoadFEN parses only the piece-placement field, and the side-to-move and
// castling fields if present (spec.md §4.3). Per spec.md §7, an
// unrecognised character in the placement field is skipped (advance one
// step) rather than rejected; an unterminated rank stops at end of input.
// Returns an error only for structural problems: an empty string, the
// wrong number of ranks, or a side-to-move token other than "w" or "b".
func (p *Position) LoadFEN(fen string) error {
	*p = Position{sideToMove: White, castlingRights: AllCastlingRights}

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return errors.New("board: empty FEN")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return errors.New("board: FEN placement must have 8 ranks")
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if file >= 8 {
				break // unterminated/overlong rank: stop at end of input
			}
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				lower := ch
				if lower >= 'A' && lower <= 'Z' {
					lower += 'a' - 'A'
				}
				kind, known := fenPieceKinds[lower]
				if !known {
					// Unrecognised character: ignore, advance one step.
					file++
					continue
				}
				side := White
				if ch == lower {
					side = Black
				}
				p.setPiece(MakeSquare(rank, file), side, kind)
				file++
			}
		}
	}
	p.recomputeOccupancies()

	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
		default:
			return errors.New("board: FEN side to move must be 'w' or 'b'")
		}
	}

	if len(fields) > 2 {
		p.castlingRights = 0
		if fields[2] != "-" {
			for _, ch := range fields[2] {
				switch ch {
				case 'K':
					p.castlingRights |= CastleWK
				case 'Q':
					p.castlingRights |= CastleWQ
				case 'k':
					p.castlingRights |= CastleBK
				case 'q':
					p.castlingRights |= CastleBQ
				}
			}
		}
	}

	return nil
}

// ToFEN renders the piece-placement, side-to-move and castling fields.
// The en-passant field is always "-"; halfmove/fullmove fields are fixed
// at "0 1" since this core does not track them (spec.md §1 non-goals).
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			kind, side, ok := p.PieceAt(MakeSquare(rank, file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := kind.Letter()
			if side == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.castlingRights&CastleWK != 0 {
			sb.WriteByte('K')
		}
		if p.castlingRights&CastleWQ != 0 {
			sb.WriteByte('Q')
		}
		if p.castlingRights&CastleBK != 0 {
			sb.WriteByte('k')
		}
		if p.castlingRights&CastleBQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteString(" - 0 1")
	return sb.String()
}

// castlingRevocationSquares lists, for each of the four home squares a
// rook or king starts on, the rights revoked when a move's from or to
// square matches. Revoking on both endpoints of a move means a rook
// captured on its home square correctly loses the corresponding right
// (spec.md §4.3 step 2, §9 Open Question 2) even though the capturing
// piece isn't the rook itself.
var castlingRevocationSquares = map[Square]CastlingRights{
	4:  CastleWK | CastleWQ, // e1
	0:  CastleWQ,            // a1
	7:  CastleWK,            // h1
	60: CastleBK | CastleBQ, // e8
	56: CastleBQ,            // a8
	63: CastleBK,            // h8
}

// Make applies m to the position in place, populating m's undo fields.
// Make does not check legality: callers must only apply moves produced by
// GenerateLegalMoves (spec.md §7 "Move applied to wrong side").
func (p *Position) Make(m *Move) {
	us := p.sideToMove
	them := us.Opposite()

	m.PreviousSideToMove = p.sideToMove
	m.PreviousCastleRights = p.castlingRights
	m.CapturedKind = NoPieceKind
	m.RookFrom, m.RookTo = NoSquare, NoSquare

	newRights := p.castlingRights
	if rev, ok := castlingRevocationSquares[m.From]; ok {
		newRights &^= rev
	}
	if rev, ok := castlingRevocationSquares[m.To]; ok {
		newRights &^= rev
	}

	if m.IsCapture() {
		kind, _, ok := p.PieceAt(m.To)
		if ok {
			m.CapturedKind = kind
			p.clearPiece(m.To, them, kind)
		}
	}

	switch {
	case m.IsPromotion():
		p.clearPiece(m.From, us, Pawn)
		p.setPiece(m.To, us, m.Promoted)
	case m.IsCastle():
		p.clearPiece(m.From, us, King)
		p.setPiece(m.To, us, King)
		rookFrom, rookTo := castleRookSquares(m.To)
		m.RookFrom, m.RookTo = rookFrom, rookTo
		p.clearPiece(rookFrom, us, Rook)
		p.setPiece(rookTo, us, Rook)
	default:
		p.clearPiece(m.From, us, m.Moved)
		p.setPiece(m.To, us, m.Moved)
	}

	p.castlingRights = newRights
	p.sideToMove = them
	p.recomputeOccupancies()
}

// Undo reverses m, restoring the position to exactly its state before the
// matching Make call (spec.md §8 P2). m must be the same Move value Make
// was called with (its undo fields must still be populated).
func (p *Position) Undo(m *Move) {
	p.sideToMove = m.PreviousSideToMove
	us := p.sideToMove
	them := us.Opposite()

	switch {
	case m.IsPromotion():
		p.clearPiece(m.To, us, m.Promoted)
		p.setPiece(m.From, us, Pawn)
	case m.IsCastle():
		p.clearPiece(m.To, us, King)
		p.setPiece(m.From, us, King)
		p.clearPiece(m.RookTo, us, Rook)
		p.setPiece(m.RookFrom, us, Rook)
	default:
		p.clearPiece(m.To, us, m.Moved)
		p.setPiece(m.From, us, m.Moved)
	}

	if m.CapturedKind != NoPieceKind {
		p.setPiece(m.To, them, m.CapturedKind)
	}

	p.castlingRights = m.PreviousCastleRights
	p.recomputeOccupancies()
}

// castleRookSquares returns the rook's from/to squares for a king move
// landing on kingTo (one of g1, c1, g8, c8).
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6: // g1
		return 7, 5
	case 2: // c1
		return 0, 3
	case 62: // g8
		return 63, 61
	case 58: // c8
		return 56, 59
	default:
		return NoSquare, NoSquare
	}
}
