package analyzer

import (
	"testing"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

func TestIsReachable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		placement string
		from, to  position.Pos
		special   board.Special
		want      bool
	}{
		{
			name:      "empty origin",
			placement: "8/8/8/8/8/8/8/8",
			from:      position.E2,
			to:        position.E4,
			special:   board.SpecialNone(),
			want:      false,
		},
		{
			name:      "own piece on destination",
			placement: "8/8/8/8/8/8/8/R2Q4",
			from:      position.A1,
			to:        position.D1,
			special:   board.SpecialNone(),
			want:      false,
		},
		{
			name:      "capture",
			placement: "8/8/8/8/8/8/8/R2q4",
			from:      position.A1,
			to:        position.D1,
			special:   board.SpecialNone(),
			want:      true,
		},
		{
			name:      "blocked slider",
			placement: "8/8/8/8/8/8/8/R1nq4",
			from:      position.A1,
			to:        position.D1,
			special:   board.SpecialNone(),
			want:      false,
		},
		{
			name:      "en passant",
			placement: "8/8/8/3pP3/8/8/8/8",
			from:      position.E5,
			to:        position.D6,
			special:   board.SpecialEnPassant(position.D6),
			want:      true,
		},
		{
			name:      "en passant tag does not excuse own piece for a rook",
			placement: "8/8/3N4/8/8/8/8/3R4",
			from:      position.D1,
			to:        position.D6,
			special:   board.SpecialEnPassant(position.D6),
			want:      false,
		},
		{
			name:      "en passant tag ignored for a knight",
			placement: "8/8/8/8/8/8/8/1N6",
			from:      position.B1,
			to:        position.C3,
			special:   board.SpecialEnPassant(position.C3),
			want:      true,
		},
		{
			name:      "castling onto own rook square",
			placement: "8/8/8/8/8/8/8/5KR1",
			from:      position.F1,
			to:        position.G1,
			special:   board.SpecialCastling(position.FileG),
			want:      true,
		},
		{
			name:      "castling tag ignored for a rook",
			placement: "8/8/8/8/8/8/8/4K2R",
			from:      position.H1,
			to:        position.G1,
			special:   board.SpecialCastling(position.FileH),
			want:      true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bb, _ := mustBoards(t, tt.placement)
			got, attacks := IsReachable(&bb, tt.from, tt.to, tt.special)
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v\n%s", got, tt.want, attacks.Dump())
			}
		})
	}
}
