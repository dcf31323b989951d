package analyzer

import (
	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

// ChecksOn counts the opposing pieces attacking the king of side and returns the square
// of the last one found. The opposing king is only counted when includeKing is set.
func ChecksOn(bb *board.Bitboard, side board.Side, includeKing bool) (int, position.Pos) {
	king := bb.King(side)
	if king == position.PosNone {
		return 0, position.PosNone
	}
	count, last := 0, position.PosNone
	opponent := side.Opposite()
	for k := board.KindPawn; k <= board.KindKnight; k++ {
		if k == board.KindKing && !includeKing {
			continue
		}
		for _, sq := range bb.Get(board.NewPiece(opponent, k)).Squares() {
			if ok, _ := IsReachable(bb, sq, king, board.SpecialNone()); ok {
				count++
				last = sq
			}
		}
	}
	return count, last
}

// KingCanEscape reports whether the king of side has a square to step to that is not
// attacked. Every candidate is evaluated on its own copy of off.
func KingCanEscape(off *board.Offset, side board.Side) bool {
	bb := off.Bitboard()
	king := bb.King(side)
	if king == position.PosNone {
		return false
	}
	for _, sq := range (board.KingReach(king) &^ bb.SideOccupied(side) &^ board.Cell(king)).Squares() {
		if safeAfter(*off, side, king, sq, position.PosNone) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the king of side, attacked by checks pieces, has no
// legal reply. A negative checks value is recomputed.
func IsCheckmate(bb *board.Bitboard, off *board.Offset, side board.Side, checks int, enPassant position.Pos) bool {
	if checks < 0 {
		checks, _ = ChecksOn(bb, side, false)
	}
	if checks == 0 {
		return false
	}
	if KingCanEscape(off, side) {
		return false
	}
	checks, attacker := ChecksOn(bb, side, true)
	if checks != 1 {
		return checks > 1
	}

	king := bb.King(side)
	block := board.Cell(attacker)
	if bb.PieceAt(attacker).Kind().IsSlider() {
		_, path := IsReachable(bb, attacker, king, board.SpecialNone())
		block |= path &^ board.Cell(king)
	}
	if enPassant.Valid() && enPassantVictim(enPassant, side.Opposite()) == attacker {
		block |= board.Cell(enPassant)
	}
	return !hasLegalMove(bb, off, side, block, enPassant)
}

// IsStalemate reports whether the king of side, not in check, has no legal move and
// neither has any other piece of side.
func IsStalemate(bb *board.Bitboard, off *board.Offset, side board.Side, enPassant position.Pos) bool {
	if checks, _ := ChecksOn(bb, side, false); checks > 0 {
		return false
	}
	if bb.King(side) == position.PosNone || KingCanEscape(off, side) {
		return false
	}
	return !hasLegalMove(bb, off, side, board.Full, enPassant)
}

// hasLegalMove searches the non-king pieces of side for a move into within that leaves
// the king safe.
func hasLegalMove(bb *board.Bitboard, off *board.Offset, side board.Side, within board.Bitmap, enPassant position.Pos) bool {
	king := bb.King(side)
	special := board.SpecialEnPassant(enPassant)
	for _, from := range (bb.SideOccupied(side) &^ board.Cell(king)).Squares() {
		p := off.At(from)
		destinations := board.AllAttacks(bb, p, from, special) & within
		if destinations == 0 {
			continue
		}
		pinned, pinner := IsPinned(bb, off, from, king, side)
		for _, to := range destinations.Squares() {
			if pinned && !onPinLine(king, pinner, to) {
				continue
			}
			if safeAfter(*off, side, from, to, enPassant) {
				return true
			}
		}
	}
	return false
}

// safeAfter plays from-to on the scratch copy off and reports whether the king of side
// is left unattacked.
func safeAfter(off board.Offset, side board.Side, from, to, enPassant position.Pos) bool {
	if p := off.At(from); p.Kind() == board.KindPawn && to == enPassant && from.X() != to.X() {
		off[enPassantVictim(to, p.Side().Opposite())] = board.PieceNone
	}
	off.Move(from, to)
	bb := off.Bitboard()
	checks, _ := ChecksOn(&bb, side, true)
	return checks == 0
}

// enPassantVictim returns the square of the pawn of side that just passed over target.
func enPassantVictim(target position.Pos, side board.Side) position.Pos {
	return position.NewPos(target.X(), target.Y()+position.Pos(side.Forward()))
}

func kingStatus(bb *board.Bitboard, off *board.Offset, side board.Side, enPassant position.Pos) KingStatus {
	checks, _ := ChecksOn(bb, side, false)
	switch {
	case checks > 0 && IsCheckmate(bb, off, side, checks, enPassant):
		return KingStatusCheckmate
	case checks > 0:
		return KingStatusCheck
	case IsStalemate(bb, off, side, enPassant):
		return KingStatusStalemate
	default:
		return KingStatusNone
	}
}
