package analyzer

import (
	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

type outcome struct {
	offset    board.Offset
	captured  board.Kind
	enPassant bool
}

// CheckLegal verifies that mv, with its squares resolved, may be played from p without
// leaving the mover's king attacked. Castling additionally requires the king to be out
// of check and every square it crosses to be safe.
func CheckLegal(p *Position, mv *Move) error {
	_, err := play(p, mv)
	return err
}

// play applies mv to a scratch copy of the placement of p.
func play(p *Position, mv *Move) (outcome, error) {
	side := mv.Piece.Side()
	scratch := p.offset
	var out outcome

	switch {
	case mv.Castle != board.CastleDirectionUnknown:
		if mv.StatusBeforeComputed && mv.StatusBefore != KingStatusNone {
			return out, moveErrorf(mv, ErrIllegalMove, "cannot castle while %s", mv.StatusBefore)
		}
		if checks, _ := ChecksOn(&p.bitboard, side, false); checks > 0 {
			return out, moveErrorf(mv, ErrIllegalMove, "cannot castle out of check")
		}
		step := position.Pos(1)
		if mv.To.X() < mv.From.X() {
			step = -1
		}
		for x := mv.From.X(); x != mv.To.X(); {
			x += step
			sq := position.NewPos(x, mv.From.Y())
			if !safeAfter(p.offset, side, mv.From, sq, position.PosNone) {
				return out, moveErrorf(mv, ErrIllegalMove, "king crosses attacked square %s", sq)
			}
		}
		rookFile, _ := p.castleRights.RookFile(mv.Castle)
		rookSq := position.NewPos(rookFile, mv.From.Y())
		king, rook := scratch[mv.From], scratch[rookSq]
		scratch[mv.From], scratch[rookSq] = board.PieceNone, board.PieceNone
		scratch[mv.Castle.KingTarget()] = king
		scratch[mv.Castle.RookTarget()] = rook

	default:
		if mv.Piece.Kind() == board.KindPawn && mv.To == p.enPassant && mv.From.X() != mv.To.X() && scratch.At(mv.To).IsNone() {
			scratch[enPassantVictim(mv.To, side.Opposite())] = board.PieceNone
			out.captured, out.enPassant = board.KindPawn, true
		}
		if captured := scratch.Move(mv.From, mv.To); !captured.IsNone() {
			out.captured = captured.Kind()
		}
		if mv.Promotion != board.KindNone {
			scratch[mv.To] = board.NewPiece(side, mv.Promotion)
		}
	}

	bb := scratch.Bitboard()
	if checks, _ := ChecksOn(&bb, side, true); checks > 0 {
		return out, moveErrorf(mv, ErrIllegalMove, "king left in check")
	}
	out.offset = scratch
	return out, nil
}
