package analyzer

import (
	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

// IsPinned reports whether the piece on pinned shields behind, the king of side, from
// an opposing slider along their shared line, and returns the slider's square.
func IsPinned(bb *board.Bitboard, off *board.Offset, pinned, behind position.Pos, side board.Side) (bool, position.Pos) {
	if pinned == behind {
		return false, position.PosNone
	}
	d, ok := board.DirectionTo(behind, pinned)
	if !ok {
		return false, position.PosNone
	}
	if board.Between(behind, pinned)&bb.Occupied() != 0 {
		return false, position.PosNone
	}
	beyond := board.Ray(d, pinned) & bb.Occupied()
	pinner := beyond.MS1B()
	if d.Increasing() {
		pinner = beyond.LS1B()
	}
	if pinner == position.PosNone {
		return false, position.PosNone
	}

	p := off.At(pinner)
	if p.Side() == side {
		return false, position.PosNone
	}
	switch p.Kind() {
	case board.KindQueen:
		return true, pinner
	case board.KindRook:
		if !d.IsDiagonal() {
			return true, pinner
		}
	case board.KindBishop:
		if d.IsDiagonal() {
			return true, pinner
		}
	}
	return false, position.PosNone
}

// onPinLine reports whether to keeps a piece pinned by pinner between it and king.
func onPinLine(king, pinner, to position.Pos) bool {
	return (board.Between(king, pinner) | board.Cell(pinner)).Has(to)
}
