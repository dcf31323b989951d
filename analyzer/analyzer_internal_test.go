package analyzer

import (
	"testing"

	"github.com/daystram/sankit/board"
)

func mustPosition(t *testing.T, opts ...PositionOption) *Position {
	t.Helper()
	pos, err := NewPosition(opts...)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return pos
}

func mustBoards(t *testing.T, placement string) (board.Bitboard, board.Offset) {
	t.Helper()
	off, err := board.ParsePlacement(placement)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return off.Bitboard(), off
}
