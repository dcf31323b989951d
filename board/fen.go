package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/daystram/sankit/position"
)

var (
	// ErrInvalidFEN represents a malformed placement field.
	ErrInvalidFEN = errors.New("invalid fen")

	// ErrInvalidSnapshot represents a malformed snapshot string.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

const snapshotEmpty = '1'

// ParsePlacement decodes the piece placement field of an (x)FEN string, rank 8 first.
func ParsePlacement(placement string) (Offset, error) {
	var o Offset
	rows := strings.Split(placement, "/")
	if len(rows) != int(Height) {
		return o, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-y-1]
		x := position.Pos(0)
		for _, cell := range row {
			if x >= Width {
				return o, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, y+1)
			}
			if unicode.IsDigit(cell) {
				skip := position.Pos(cell - '0')
				if skip == 0 || x+skip > Width {
					return o, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			if cell > unicode.MaxASCII {
				return o, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			p := NewPieceFromFEN(byte(cell))
			if p.IsNone() {
				return o, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			o[y*Width+x] = p
			x++
		}
		if x != Width {
			return o, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	return o, nil
}

// Placement encodes the piece placement field, rank 8 first.
func (o Offset) Placement() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			p := o[y*Width+x]
			if p.IsNone() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}

// Snapshot lists every square from a1 to h8, FEN letters for pieces and '1' for empty.
func (o Offset) Snapshot() string {
	var buf [TotalCells]byte
	for pos, p := range o {
		buf[pos] = snapshotEmpty
		if !p.IsNone() {
			buf[pos] = p.SymbolFEN()[0]
		}
	}
	return string(buf[:])
}

// EmptySnapshot is the snapshot of an empty board.
func EmptySnapshot() string {
	return strings.Repeat(string(snapshotEmpty), int(TotalCells))
}

func ParseSnapshot(s string) (Offset, error) {
	var o Offset
	if len(s) != int(TotalCells) {
		return o, fmt.Errorf("%w: want %d squares, got %d", ErrInvalidSnapshot, TotalCells, len(s))
	}
	for pos := 0; pos < len(s); pos++ {
		if s[pos] == snapshotEmpty {
			continue
		}
		p := NewPieceFromFEN(s[pos])
		if p.IsNone() {
			return o, fmt.Errorf("%w: unknown symbol '%c' on %s", ErrInvalidSnapshot, s[pos], position.Pos(pos))
		}
		o[pos] = p
	}
	return o, nil
}
