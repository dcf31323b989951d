package analyzer

import (
	"testing"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

func TestIsPinned(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		placement  string
		pinned     position.Pos
		behind     position.Pos
		side       board.Side
		want       bool
		wantPinner position.Pos
	}{
		{
			name:       "bishop pinned on file by rook",
			placement:  "4r3/8/8/8/8/8/4B3/4K3",
			pinned:     position.E2,
			behind:     position.E1,
			side:       board.SideWhite,
			want:       true,
			wantPinner: position.E8,
		},
		{
			name:       "bishop on file against bishop",
			placement:  "4b3/8/8/8/8/8/4B3/4K3",
			pinned:     position.E2,
			behind:     position.E1,
			side:       board.SideWhite,
			want:       false,
			wantPinner: position.PosNone,
		},
		{
			name:       "own bishop beyond on diagonal",
			placement:  "8/8/8/8/8/2n5/8/b5K1",
			pinned:     position.C3,
			behind:     position.E5,
			side:       board.SideBlack,
			want:       false,
			wantPinner: position.PosNone,
		},
		{
			name:       "black knight pinned by queen on diagonal",
			placement:  "8/8/8/4k3/8/2n5/8/Q7",
			pinned:     position.C3,
			behind:     position.E5,
			side:       board.SideBlack,
			want:       true,
			wantPinner: position.A1,
		},
		{
			name:       "blocker between king and piece",
			placement:  "4r3/8/8/8/8/4N3/4B3/4K3",
			pinned:     position.E3,
			behind:     position.E1,
			side:       board.SideWhite,
			want:       false,
			wantPinner: position.PosNone,
		},
		{
			name:       "own piece beyond",
			placement:  "4R3/8/8/8/8/8/4B3/4K3",
			pinned:     position.E2,
			behind:     position.E1,
			side:       board.SideWhite,
			want:       false,
			wantPinner: position.PosNone,
		},
		{
			name:       "rank pin westwards",
			placement:  "8/8/8/8/8/8/8/q2NK3",
			pinned:     position.D1,
			behind:     position.E1,
			side:       board.SideWhite,
			want:       true,
			wantPinner: position.A1,
		},
		{
			name:       "no shared line",
			placement:  "8/8/8/8/8/8/8/1N2K3",
			pinned:     position.B1,
			behind:     position.C3,
			side:       board.SideWhite,
			want:       false,
			wantPinner: position.PosNone,
		},
		{
			name:       "same square",
			placement:  "8/8/8/8/8/8/8/4K3",
			pinned:     position.E1,
			behind:     position.E1,
			side:       board.SideWhite,
			want:       false,
			wantPinner: position.PosNone,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bb, off := mustBoards(t, tt.placement)
			got, pinner := IsPinned(&bb, &off, tt.pinned, tt.behind, tt.side)
			if got != tt.want || pinner != tt.wantPinner {
				t.Errorf("unexpected result: got=%v,%v want=%v,%v", got, pinner, tt.want, tt.wantPinner)
			}
		})
	}
}
