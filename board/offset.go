package board

import (
	"github.com/daystram/sankit/position"
)

// Offset holds the piece on each square. Copies are independent, so a copy serves as
// scratch state that is dropped when the evaluating call returns.
type Offset [TotalCells]Piece

// Bitboard converts to the mask representation.
func (o Offset) Bitboard() Bitboard {
	var b Bitboard
	for pos, p := range o {
		if p.IsNone() {
			continue
		}
		b.pieces[p.Side()][p.Kind()] |= maskCell[pos]
	}
	b.sync()
	return b
}

// At returns PieceNone for squares off the board.
func (o *Offset) At(pos position.Pos) Piece {
	if !pos.Valid() {
		return PieceNone
	}
	return o[pos]
}

// Move relocates the piece on from to to and returns the previous occupant of to.
func (o *Offset) Move(from, to position.Pos) Piece {
	if !from.Valid() || !to.Valid() || from == to {
		return PieceNone
	}
	captured := o[to]
	o[to], o[from] = o[from], PieceNone
	return captured
}

