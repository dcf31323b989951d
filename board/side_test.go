package board

import (
	"testing"

	"github.com/daystram/sankit/position"
)

func TestSideRanks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		side          Side
		wantName      string
		wantOpposite  Side
		wantHome      position.Pos
		wantLast      position.Pos
		wantEnPassant position.Pos
	}{
		{SideWhite, "White", SideBlack, position.Rank1, position.Rank8, position.Rank5},
		{SideBlack, "Black", SideWhite, position.Rank8, position.Rank1, position.Rank4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.wantName, func(t *testing.T) {
			t.Parallel()
			if got := tt.side.String(); got != tt.wantName {
				t.Errorf("unexpected name: got=%v want=%v", got, tt.wantName)
			}
			if got := tt.side.Opposite(); got != tt.wantOpposite {
				t.Errorf("unexpected opposite: got=%v want=%v", got, tt.wantOpposite)
			}
			if got := tt.side.HomeRank(); got != tt.wantHome {
				t.Errorf("unexpected home rank: got=%v want=%v", got, tt.wantHome)
			}
			if got := tt.side.LastRank(); got != tt.wantLast {
				t.Errorf("unexpected last rank: got=%v want=%v", got, tt.wantLast)
			}
			if got := tt.side.EnPassantRank(); got != tt.wantEnPassant {
				t.Errorf("unexpected en passant rank: got=%v want=%v", got, tt.wantEnPassant)
			}
		})
	}
	if got := Side(2).String(); got != "" {
		t.Errorf("unexpected name: %q", got)
	}
}
