package board

import (
	"github.com/daystram/sankit/position"
)

type specialKind uint8

const (
	specialNone specialKind = iota
	specialCastling
	specialEnPassant
)

// Special qualifies a move that does not follow normal movement: castling with the
// rook on a given file, or an en passant capture onto a given target square.
type Special struct {
	kind specialKind
	pos  position.Pos
}

func SpecialNone() Special {
	return Special{kind: specialNone, pos: position.PosNone}
}

func SpecialCastling(rookFile position.Pos) Special {
	if rookFile < 0 || rookFile >= Width {
		return SpecialNone()
	}
	return Special{kind: specialCastling, pos: rookFile}
}

// SpecialEnPassant returns SpecialNone for PosNone, so a missing target needs no branching.
func SpecialEnPassant(target position.Pos) Special {
	if !target.Valid() {
		return SpecialNone()
	}
	return Special{kind: specialEnPassant, pos: target}
}

func (s Special) IsNone() bool {
	return s.kind == specialNone
}

func (s Special) IsCastling() bool {
	return s.kind == specialCastling
}

func (s Special) IsEnPassant() bool {
	return s.kind == specialEnPassant
}

// RookFile returns PosNone unless s is a castling tag.
func (s Special) RookFile() position.Pos {
	if !s.IsCastling() {
		return position.PosNone
	}
	return s.pos
}

// Target returns PosNone unless s is an en passant tag.
func (s Special) Target() position.Pos {
	if !s.IsEnPassant() {
		return position.PosNone
	}
	return s.pos
}

func (s Special) String() string {
	switch s.kind {
	case specialCastling:
		return "castling(" + s.pos.NotationComponentX() + ")"
	case specialEnPassant:
		return "enpassant(" + s.pos.Notation() + ")"
	default:
		return "none"
	}
}

// Attacks returns the squares p on from attacks on its way to to, given the occupancy of b.
// Sliders follow the single ray from from towards to up to and including the first blocker.
// A king with a castling tag yields the vacated castling path plus its landing square,
// or 0 if the path is obstructed or the configuration is invalid.
func Attacks(b *Bitboard, p Piece, from, to position.Pos, special Special) Bitmap {
	if p.IsNone() || !from.Valid() {
		return 0
	}
	switch k := p.Kind(); k {
	case KindKnight:
		return maskKnight[from]
	case KindKing:
		if special.IsCastling() {
			return castleAttacks(b, p.Side(), from, special.RookFile())
		}
		return maskKing[from]
	case KindPawn:
		if !to.Valid() {
			return 0
		}
		if to.X() == from.X() {
			return pawnPushes(b, p.Side(), from)
		}
		reach := maskPawn[p.Side()][from] & maskCol[to.X()] &^ maskCol[from.X()]
		if special.IsEnPassant() && special.Target() == to && from.Y() == p.Side().EnPassantRank() {
			return reach & maskCell[to]
		}
		return reach & b.sides[p.Side().Opposite()]
	default:
		d, ok := DirectionTo(from, to)
		if !ok || (k == KindRook && d.IsDiagonal()) || (k == KindBishop && !d.IsDiagonal()) {
			return 0
		}
		return slide(b.occupied, d, from)
	}
}

// AllAttacks returns every destination p on from can move to, ignoring pins and checks.
// Squares held by its own side are excluded. The en passant target is honoured for pawns.
func AllAttacks(b *Bitboard, p Piece, from position.Pos, special Special) Bitmap {
	if p.IsNone() || !from.Valid() {
		return 0
	}
	own := b.sides[p.Side()]
	switch k := p.Kind(); k {
	case KindKnight:
		return maskKnight[from] &^ own
	case KindKing:
		return maskKing[from] &^ own
	case KindPawn:
		captures := maskPawn[p.Side()][from] &^ maskCol[from.X()]
		targets := b.sides[p.Side().Opposite()]
		if special.IsEnPassant() && from.Y() == p.Side().EnPassantRank() {
			targets |= maskCell[special.Target()]
		}
		return pawnPushes(b, p.Side(), from) | captures&targets
	default:
		var attacks Bitmap
		for d := Direction(0); d < directionCount; d++ {
			if (k == KindRook && d.IsDiagonal()) || (k == KindBishop && !d.IsDiagonal()) {
				continue
			}
			attacks |= slide(b.occupied, d, from)
		}
		return attacks &^ own
	}
}

func slide(occupied Bitmap, d Direction, from position.Pos) Bitmap {
	ray := maskRay[d][from]
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	first := blockers.MS1B()
	if d.Increasing() {
		first = blockers.LS1B()
	}
	return ray &^ maskRay[d][first]
}

func pawnPushes(b *Bitboard, s Side, from position.Pos) Bitmap {
	reach := maskPawn[s][from] & maskCol[from.X()]
	blockers := reach & b.occupied
	if blockers == 0 {
		return reach
	}
	if s == SideWhite {
		first := blockers.LS1B()
		return reach &^ (maskCell[first] | maskRay[DirectionN][first])
	}
	first := blockers.MS1B()
	return reach &^ (maskCell[first] | maskRay[DirectionS][first])
}

func castleAttacks(b *Bitboard, s Side, from, rookFile position.Pos) Bitmap {
	kingFile := from.X()
	if from.Y() != s.HomeRank() || kingFile <= 0 || kingFile >= Width-1 {
		return 0
	}
	d := NewCastleDirection(s, kingFile < rookFile)
	path := CastlePath(d, kingFile, rookFile)
	if path == Full || path&b.occupied != 0 {
		return 0
	}
	return path | maskCell[d.KingTarget()]
}
