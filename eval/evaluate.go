package eval

import (
	"math"
	"math/bits"

	"bitchess/board"
)

// Mate is the score assigned to a checkmate, before search applies its
// mate-distance adjustment (spec.md §9 Open Question 3).
const Mate = 10000

// Evaluate scores pos from White's perspective: positive favours White,
// negative favours Black. search negates this for the side to move
// (spec.md §9 Open Question 4).
func Evaluate(pos *board.Position) int {
	if end, score := evaluateGameEnd(pos); end {
		return score
	}
	if isInsufficientMaterial(pos) {
		return 0
	}

	endgame := isEndgame(pos)

	mg, eg := 0, 0
	addMaterialAndPST(pos, &mg, &eg)
	addPawnStructure(pos, &mg, &eg)
	addMobility(pos, &mg, &eg)
	addPieceSafety(pos, &mg, &eg)
	addKingSafety(pos, &mg, &eg, endgame)

	score := taper(mg, eg, endgame)
	if endgame {
		score = int(float64(score) * 1.2)
	}
	return score
}

// isEndgame reports spec.md §4.6's binary endgame predicate: no queen of
// either side remains on the board, or two or fewer queens and rooks remain
// across both sides combined.
func isEndgame(pos *board.Position) bool {
	queens := bits.OnesCount64(pos.PieceBB(board.White, board.Queen)) +
		bits.OnesCount64(pos.PieceBB(board.Black, board.Queen))
	if queens == 0 {
		return true
	}
	rooks := bits.OnesCount64(pos.PieceBB(board.White, board.Rook)) +
		bits.OnesCount64(pos.PieceBB(board.Black, board.Rook))
	return queens+rooks <= 2
}

// taper picks the midgame or endgame accumulator by the binary endgame
// predicate and applies spec.md §4.6's 0.8/1.0 weighting (0.8 + 0.2*phase
// with phase 0 or 1).
func taper(mg, eg int, endgame bool) int {
	if endgame {
		return eg
	}
	return int(float64(mg) * 0.8)
}

func addMaterialAndPST(pos *board.Position, mg, eg *int) {
	for _, side := range [2]board.Side{board.White, board.Black} {
		sign := 1
		if side == board.Black {
			sign = -1
		}
		for kind := board.Pawn; kind <= board.King; kind++ {
			bb := pos.PieceBB(side, kind)
			for bb != 0 {
				sq := board.Square(popLSB(&bb))
				pm, pe := pstValue(kind, sq, side)
				*mg += sign * (PieceValueMG[kind] + pm)
				*eg += sign * (PieceValueEG[kind] + pe)
			}
		}
		if bits.OnesCount64(pos.PieceBB(side, board.Knight)) >= 2 {
			*mg += sign * 10
			*eg += sign * 10
		}
		if bits.OnesCount64(pos.PieceBB(side, board.Bishop)) >= 2 {
			*mg += sign * 30
			*eg += sign * 50
		}
	}
}

func addPawnStructure(pos *board.Position, mg, eg *int) {
	for _, side := range [2]board.Side{board.White, board.Black} {
		sign := 1
		if side == board.Black {
			sign = -1
		}
		own := pos.PieceBB(side, board.Pawn)
		enemy := pos.PieceBB(side.Opposite(), board.Pawn)

		for file := 0; file < 8; file++ {
			count := bits.OnesCount64(own & board.FileMask(file))
			if count > 1 {
				*mg += sign * -12 * (count - 1)
				*eg += sign * -20 * (count - 1)
			}
			if count > 0 {
				neighbours := bitboard(0)
				if file > 0 {
					neighbours |= board.FileMask(file - 1)
				}
				if file < 7 {
					neighbours |= board.FileMask(file + 1)
				}
				if own&bitboard(neighbours) == 0 {
					*mg += sign * -10
					*eg += sign * -15
				}
			}
		}

		for bb := own; bb != 0; {
			sq := board.Square(popLSB(&bb))
			if isPassedPawn(sq, side, enemy) {
				rank := sq.Rank()
				step := rank
				if side == board.Black {
					step = 7 - rank
				}
				*mg += sign * (10 + step*8)
				*eg += sign * (20 + step*14)
			}
		}
	}
}

// bitboard is a local alias to keep pawn-structure helper signatures short.
type bitboard = uint64

func isPassedPawn(sq board.Square, side board.Side, enemyPawns bitboard) bool {
	file, rank := sq.File(), sq.Rank()
	var span bitboard
	files := [3]int{file - 1, file, file + 1}
	for _, f := range files {
		if f < 0 || f > 7 {
			continue
		}
		if side == board.White {
			for r := rank + 1; r < 8; r++ {
				span |= board.SquareBB(board.MakeSquare(r, f))
			}
		} else {
			for r := rank - 1; r >= 0; r-- {
				span |= board.SquareBB(board.MakeSquare(r, f))
			}
		}
	}
	return span&enemyPawns == 0
}

// addMobility scores the difference in pseudo-legal move counts between the
// sides, compressed by square root so one side having many more targets
// doesn't dominate the score linearly (spec.md §4.6; original_source's
// EvaluateMobility counts every pseudo-legal move, pawns and king included).
func addMobility(pos *board.Position, mg, eg *int) {
	white := len(board.GeneratePseudoLegalMoves(pos, board.White))
	black := len(board.GeneratePseudoLegalMoves(pos, board.Black))
	scaled := int(10 * (math.Sqrt(float64(white)) - math.Sqrt(float64(black))))
	*mg += scaled
	*eg += scaled
}

// addPieceSafety classifies each non-pawn, non-king piece by whether it is
// attacked and/or defended (spec.md §4.6): hanging (attacked, undefended)
// loses half its value, attacked-but-defended loses a tenth, and a defended
// piece that isn't under attack at all earns a small bonus.
func addPieceSafety(pos *board.Position, mg, eg *int) {
	for _, side := range [2]board.Side{board.White, board.Black} {
		sign := 1
		if side == board.Black {
			sign = -1
		}
		enemy := side.Opposite()
		for kind := board.Knight; kind <= board.Queen; kind++ {
			for bb := pos.PieceBB(side, kind); bb != 0; {
				sq := board.Square(popLSB(&bb))
				attacked := pos.IsSquareAttacked(sq, enemy)
				defended := pos.IsSquareAttacked(sq, side)
				switch {
				case attacked && !defended:
					*mg += sign * -(PieceValueMG[kind] / 2)
					*eg += sign * -(PieceValueEG[kind] / 2)
				case attacked && defended:
					*mg += sign * -(PieceValueMG[kind] / 10)
					*eg += sign * -(PieceValueEG[kind] / 10)
				case !attacked && defended:
					*mg += sign * 5
					*eg += sign * 5
				}
			}
		}
	}
}

func addKingSafety(pos *board.Position, mg, eg *int, endgame bool) {
	if endgame {
		return // pawn shields stop mattering once the king should centralise
	}
	for _, side := range [2]board.Side{board.White, board.Black} {
		sign := 1
		if side == board.Black {
			sign = -1
		}
		kingBB := pos.PieceBB(side, board.King)
		if kingBB == 0 {
			continue
		}
		kingSq := board.Square(bits.TrailingZeros64(kingBB))
		file := kingSq.File()
		pawns := pos.PieceBB(side, board.Pawn)
		shield := 0
		for f := file - 1; f <= file+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			if pawns&board.FileMask(f) != 0 {
				shield++
			}
		}
		*mg += sign * (shield - 3) * 8
	}
}

func evaluateGameEnd(pos *board.Position) (bool, int) {
	side := pos.SideToMove()
	moves := board.GenerateLegalMoves(pos, side)
	if len(moves) > 0 {
		return false, 0
	}
	if pos.IsKingInCheck(side) {
		if side == board.White {
			return true, -Mate
		}
		return true, Mate
	}
	return true, 0 // stalemate
}

// isInsufficientMaterial reports the two draws spec.md §4.6 enumerates: a
// bare king against a bare king, or each side down to exactly one bishop
// with both bishops on same-coloured squares (original_source's
// IsInsufficientMaterial). Any other material, including a lone knight or a
// single bishop against a bare king, is not a forced draw.
func isInsufficientMaterial(pos *board.Position) bool {
	nonKing := func(side board.Side) bitboard {
		return pos.PieceBB(side, board.Pawn) | pos.PieceBB(side, board.Knight) |
			pos.PieceBB(side, board.Bishop) | pos.PieceBB(side, board.Rook) |
			pos.PieceBB(side, board.Queen)
	}
	white, black := nonKing(board.White), nonKing(board.Black)

	if white == 0 && black == 0 {
		return true
	}

	if bits.OnesCount64(white) == 1 && bits.OnesCount64(black) == 1 {
		wb := pos.PieceBB(board.White, board.Bishop)
		bb := pos.PieceBB(board.Black, board.Bishop)
		if wb != 0 && bb != 0 {
			wsq := board.Square(bits.TrailingZeros64(wb))
			bsq := board.Square(bits.TrailingZeros64(bb))
			// A square's colour is the parity of rank+file.
			if (wsq.Rank()+wsq.File()+bsq.Rank()+bsq.File())%2 == 0 {
				return true
			}
		}
	}
	return false
}

func popLSB(bb *bitboard) int {
	i := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return i
}
