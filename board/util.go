package board

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/daystram/sankit/position"
)

// Bitmap holds one bit per square, a1 in the least significant bit.
type Bitmap uint64

// Full has every square set. CastlePath returns it to reject a castling configuration.
const Full = ^Bitmap(0)

func ShiftNW(bm Bitmap) Bitmap {
	return bm << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return bm << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return bm << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return bm >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return bm >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return bm >> 1
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func Cell(pos position.Pos) Bitmap {
	if !pos.Valid() {
		return 0
	}
	return maskCell[pos]
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= Cell(pos)
}

func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= Cell(pos)
}

func (bm Bitmap) Has(pos position.Pos) bool {
	return bm&Cell(pos) != 0
}

// LS1B returns the lowest set square, or PosNone for an empty bitmap.
func (bm Bitmap) LS1B() position.Pos {
	if bm == 0 {
		return position.PosNone
	}
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// MS1B returns the highest set square, or PosNone for an empty bitmap.
func (bm Bitmap) MS1B() position.Pos {
	if bm == 0 {
		return position.PosNone
	}
	return position.Pos(63 - bits.LeadingZeros64(uint64(bm)))
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Squares lists the set squares in increasing order.
func (bm Bitmap) Squares() []position.Pos {
	out := make([]position.Pos, 0, bm.BitCount())
	for ; bm != 0; bm &= bm - 1 {
		out = append(out, bm.LS1B())
	}
	return out
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(Height); y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm&maskCell[(y-1)*Height+x] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// DirectionTo returns the ray direction leading from a to b, if they share a rank, file or diagonal.
func DirectionTo(a, b position.Pos) (Direction, bool) {
	if !a.Valid() || !b.Valid() || a == b {
		return 0, false
	}
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return 0, false
	}
	switch {
	case dx == 0 && dy > 0:
		return DirectionN, true
	case dx > 0 && dy > 0:
		return DirectionNE, true
	case dx > 0 && dy == 0:
		return DirectionE, true
	case dx > 0 && dy < 0:
		return DirectionSE, true
	case dx == 0 && dy < 0:
		return DirectionS, true
	case dx < 0 && dy < 0:
		return DirectionSW, true
	case dx < 0 && dy == 0:
		return DirectionW, true
	default:
		return DirectionNW, true
	}
}

// Between returns the squares strictly between a and b along their shared line, or 0.
func Between(a, b position.Pos) Bitmap {
	d, ok := DirectionTo(a, b)
	if !ok {
		return 0
	}
	return maskRay[d][a] &^ maskRay[d][b] &^ maskCell[b]
}
