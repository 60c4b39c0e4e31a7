package board

// promotionKinds lists the four pieces a pawn may promote to, in the order
// moves are generated (spec.md §4.4: queen, rook, bishop, knight).
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// GenerateLegalMoves returns every legal move for side to move in pos. A
// pseudo-legal move is legal iff, after Make, the moving side's own king is
// not in check (spec.md §4.5); there is no separate pin/check precomputation
// (see DESIGN.md).
func GenerateLegalMoves(pos *Position, side Side) []Move {
	pseudo := generatePseudoLegalMoves(pos, side)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		pos.Make(&m)
		if !pos.IsKingInCheck(side) {
			legal = append(legal, m)
		}
		pos.Undo(&m)
	}
	return legal
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for side in pos,
// without filtering for king safety (spec.md §4.4). Exported for the
// evaluator's mobility term (spec.md §4.6), which counts pseudo-legal moves
// rather than legal ones.
func GeneratePseudoLegalMoves(pos *Position, side Side) []Move {
	return generatePseudoLegalMoves(pos, side)
}

// generatePseudoLegalMoves generates every move obeying piece movement
// rules and friendly-occupancy restrictions, without regard to whether it
// leaves the mover's own king in check.
func generatePseudoLegalMoves(pos *Position, side Side) []Move {
	var moves []Move
	moves = appendPawnMoves(pos, side, moves)
	moves = appendKnightMoves(pos, side, moves)
	moves = appendSliderMoves(pos, side, Bishop, moves)
	moves = appendSliderMoves(pos, side, Rook, moves)
	moves = appendSliderMoves(pos, side, Queen, moves)
	moves = appendKingMoves(pos, side, moves)
	moves = appendCastlingMoves(pos, side, moves)
	return moves
}

func appendPawnMoves(pos *Position, side Side, moves []Move) []Move {
	pawns := pos.PieceBB(side, Pawn)
	own := pos.Occupancy(int(side))
	enemy := pos.Occupancy(int(side.Opposite()))
	occ := own | enemy

	var forward, promoRank Bitboard
	var pushOffset int
	if side == White {
		forward = pawns << 8 &^ occ
		promoRank = Rank8
		pushOffset = 8
	} else {
		forward = pawns >> 8 &^ occ
		promoRank = Rank1
		pushOffset = -8
	}

	single := forward
	for bb := single; bb != 0; {
		to := Square(popLSB(&bb))
		from := Square(int(to) - pushOffset)
		moves = appendPawnAdvance(moves, from, to, promoRank)
	}

	var doublePush Bitboard
	if side == White {
		doublePush = (forward & RankMask(2)) << 8 &^ occ
	} else {
		doublePush = (forward & RankMask(5)) >> 8 &^ occ
	}
	for bb := doublePush; bb != 0; {
		to := Square(popLSB(&bb))
		from := Square(int(to) - 2*pushOffset)
		moves = append(moves, Move{From: from, To: to, Moved: Pawn})
	}

	for bb := pawns; bb != 0; {
		from := Square(popLSB(&bb))
		attacks := pawnAttacks[side][from] & enemy
		for a := attacks; a != 0; {
			to := Square(popLSB(&a))
			moves = appendPawnCapture(moves, from, to, promoRank)
		}
	}

	return moves
}

func appendPawnAdvance(moves []Move, from, to Square, promoRank Bitboard) []Move {
	if SquareBB(to)&promoRank != 0 {
		for _, k := range promotionKinds {
			moves = append(moves, Move{From: from, To: to, Moved: Pawn, Promoted: k})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Moved: Pawn})
}

func appendPawnCapture(moves []Move, from, to Square, promoRank Bitboard) []Move {
	if SquareBB(to)&promoRank != 0 {
		for _, k := range promotionKinds {
			moves = append(moves, Move{From: from, To: to, Flags: FlagCapture, Moved: Pawn, Promoted: k})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Flags: FlagCapture, Moved: Pawn})
}

func appendKnightMoves(pos *Position, side Side, moves []Move) []Move {
	own := pos.Occupancy(int(side))
	enemy := pos.Occupancy(int(side.Opposite()))
	for bb := pos.PieceBB(side, Knight); bb != 0; {
		from := Square(popLSB(&bb))
		targets := knightAttacks[from] &^ own
		for t := targets; t != 0; {
			to := Square(popLSB(&t))
			moves = appendQuietOrCapture(moves, from, to, Knight, enemy)
		}
	}
	return moves
}

func appendKingMoves(pos *Position, side Side, moves []Move) []Move {
	own := pos.Occupancy(int(side))
	enemy := pos.Occupancy(int(side.Opposite()))
	for bb := pos.PieceBB(side, King); bb != 0; {
		from := Square(popLSB(&bb))
		targets := kingAttacks[from] &^ own
		for t := targets; t != 0; {
			to := Square(popLSB(&t))
			moves = appendQuietOrCapture(moves, from, to, King, enemy)
		}
	}
	return moves
}

func appendSliderMoves(pos *Position, side Side, kind PieceKind, moves []Move) []Move {
	own := pos.Occupancy(int(side))
	enemy := pos.Occupancy(int(side.Opposite()))
	occ := own | enemy
	for bb := pos.PieceBB(side, kind); bb != 0; {
		from := Square(popLSB(&bb))
		var attacks Bitboard
		switch kind {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		attacks &^= own
		for t := attacks; t != 0; {
			to := Square(popLSB(&t))
			moves = appendQuietOrCapture(moves, from, to, kind, enemy)
		}
	}
	return moves
}

func appendQuietOrCapture(moves []Move, from, to Square, kind PieceKind, enemy Bitboard) []Move {
	flags := FlagNone
	if SquareBB(to)&enemy != 0 {
		flags = FlagCapture
	}
	return append(moves, Move{From: from, To: to, Flags: flags, Moved: kind})
}

// castlingSpec describes the squares involved in one castling option.
type castlingSpec struct {
	right            CastlingRights
	kingFrom, kingTo Square
	between          Bitboard // squares that must be empty
	kingPath         [2]Square // squares the king crosses, both must be unattacked (kingFrom included via IsKingInCheck)
}

var castlingSpecs = []castlingSpec{
	{CastleWK, 4, 6, SquareBB(5) | SquareBB(6), [2]Square{4, 5}},
	{CastleWQ, 4, 2, SquareBB(1) | SquareBB(2) | SquareBB(3), [2]Square{4, 3}},
	{CastleBK, 60, 62, SquareBB(61) | SquareBB(62), [2]Square{60, 61}},
	{CastleBQ, 60, 58, SquareBB(57) | SquareBB(58) | SquareBB(59), [2]Square{60, 59}},
}

// appendCastlingMoves emits castling moves whose rook and king home squares
// are intact, whose between-squares are empty, and whose king does not
// start on or pass through an attacked square (spec.md §4.4). The landing
// square is not tested here: the legality filter in GenerateLegalMoves
// rejects a castle that ends in check once Make is applied, so moves from
// GeneratePseudoLegalMoves may still castle into check.
func appendCastlingMoves(pos *Position, side Side, moves []Move) []Move {
	if pos.IsKingInCheck(side) {
		return moves
	}
	occ := pos.Occupancy(Both)
	enemy := side.Opposite()
	for _, spec := range castlingSpecs {
		if sideOfRight(spec.right) != side {
			continue
		}
		if pos.CastlingRights()&spec.right == 0 {
			continue
		}
		rookFrom, _ := castleRookSquares(spec.kingTo)
		if pos.PieceBB(side, King)&SquareBB(spec.kingFrom) == 0 || pos.PieceBB(side, Rook)&SquareBB(rookFrom) == 0 {
			continue
		}
		if occ&spec.between != 0 {
			continue
		}
		if pos.IsSquareAttacked(spec.kingPath[0], enemy) || pos.IsSquareAttacked(spec.kingPath[1], enemy) {
			continue
		}
		moves = append(moves, Move{From: spec.kingFrom, To: spec.kingTo, Flags: FlagCastle, Moved: King})
	}
	return moves
}

func sideOfRight(right CastlingRights) Side {
	if right == CastleWK || right == CastleWQ {
		return White
	}
	return Black
}
