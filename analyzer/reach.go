package analyzer

import (
	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

// IsReachable reports whether the piece on from can physically move to to, ignoring
// checks, and returns the attack map it computed. A destination held by the mover's own
// side is accepted only for a castling king, whose landing square may hold its rook or
// itself. An en passant tag only applies to pawns.
func IsReachable(bb *board.Bitboard, from, to position.Pos, special board.Special) (bool, board.Bitmap) {
	p := bb.PieceAt(from)
	if p.IsNone() || !to.Valid() {
		return false, 0
	}
	castling := p.Kind() == board.KindKing && special.IsCastling()
	if occupant := bb.PieceAt(to); !occupant.IsNone() && occupant.Side() == p.Side() && !castling {
		return false, 0
	}
	switch {
	case special.IsEnPassant() && p.Kind() != board.KindPawn:
		special = board.SpecialNone()
	case special.IsCastling() && p.Kind() != board.KindKing:
		special = board.SpecialNone()
	}
	attacks := board.Attacks(bb, p, from, to, special)
	return attacks.Has(to), attacks
}
