package board

import (
	"github.com/daystram/sankit/position"
)

// Bitboard keeps one mask per side and kind, plus the side and total occupancy.
// The masks of different pieces never overlap.
type Bitboard struct {
	pieces   [2][7]Bitmap
	sides    [2]Bitmap
	occupied Bitmap
}

// Get returns the mask of p, or 0 for PieceNone.
func (b *Bitboard) Get(p Piece) Bitmap {
	if p.IsNone() {
		return 0
	}
	return b.pieces[p.Side()][p.Kind()]
}

// Set replaces the mask of p. Squares in bm are taken from any other piece holding them.
func (b *Bitboard) Set(p Piece, bm Bitmap) {
	if p.IsNone() {
		return
	}
	for s := range b.pieces {
		for k := range b.pieces[s] {
			b.pieces[s][k] &^= bm
		}
	}
	b.pieces[p.Side()][p.Kind()] = bm
	b.sync()
}

// Place puts p on pos, replacing any occupant. PieceNone clears pos.
func (b *Bitboard) Place(p Piece, pos position.Pos) {
	if !pos.Valid() {
		return
	}
	b.Clear(pos)
	if p.IsNone() {
		return
	}
	b.pieces[p.Side()][p.Kind()] |= maskCell[pos]
	b.sides[p.Side()] |= maskCell[pos]
	b.occupied |= maskCell[pos]
}

func (b *Bitboard) Clear(pos position.Pos) {
	if !pos.Valid() || b.occupied&maskCell[pos] == 0 {
		return
	}
	p := b.PieceAt(pos)
	b.pieces[p.Side()][p.Kind()] &^= maskCell[pos]
	b.sides[p.Side()] &^= maskCell[pos]
	b.occupied &^= maskCell[pos]
}

func (b *Bitboard) PieceAt(pos position.Pos) Piece {
	cell := Cell(pos)
	if b.occupied&cell == 0 {
		return PieceNone
	}
	s := SideWhite
	if b.sides[SideBlack]&cell != 0 {
		s = SideBlack
	}
	for k := KindPawn; k <= KindKnight; k++ {
		if b.pieces[s][k]&cell != 0 {
			return NewPiece(s, k)
		}
	}
	return PieceNone
}

func (b *Bitboard) White() Bitmap {
	return b.sides[SideWhite]
}

func (b *Bitboard) Black() Bitmap {
	return b.sides[SideBlack]
}

func (b *Bitboard) SideOccupied(s Side) Bitmap {
	return b.sides[s&1]
}

func (b *Bitboard) Occupied() Bitmap {
	return b.occupied
}

// King returns the square of the king of s, or PosNone if it is missing.
func (b *Bitboard) King(s Side) position.Pos {
	return b.pieces[s&1][KindKing].LS1B()
}

// Count returns the number of pieces on the board.
func (b *Bitboard) Count() int {
	return int(b.occupied.BitCount())
}

// Consistent reports whether the occupancy masks agree with the piece masks.
func (b *Bitboard) Consistent() bool {
	var union Bitmap
	for s := range b.pieces {
		var side Bitmap
		for k := range b.pieces[s] {
			if side&b.pieces[s][k] != 0 || union&b.pieces[s][k] != 0 {
				return false
			}
			side |= b.pieces[s][k]
			union |= b.pieces[s][k]
		}
		if side != b.sides[s] {
			return false
		}
	}
	return b.pieces[SideWhite][KindNone] == 0 && b.pieces[SideBlack][KindNone] == 0 &&
		union == b.occupied && b.sides[SideWhite]&b.sides[SideBlack] == 0
}

// Offset converts to the square-indexed representation.
func (b *Bitboard) Offset() Offset {
	var o Offset
	for s := range b.pieces {
		for k := KindPawn; k <= KindKnight; k++ {
			for bm := b.pieces[s][k]; bm != 0; bm &= bm - 1 {
				o[bm.LS1B()] = NewPiece(Side(s), k)
			}
		}
	}
	return o
}

func (b *Bitboard) sync() {
	for s := range b.pieces {
		b.sides[s] = Union(b.pieces[s][:]...)
	}
	b.occupied = Union(b.sides[:]...)
}
