package analyzer

import (
	"testing"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

func TestNewCommonality(t *testing.T) {
	t.Parallel()
	tests := []struct {
		candidates []position.Pos
		want       Commonality
	}{
		{[]position.Pos{position.B1, position.D5}, 0},
		{[]position.Pos{position.A1, position.A5}, CommonFile},
		{[]position.Pos{position.A1, position.H1}, CommonRank},
		{[]position.Pos{position.A1, position.A5, position.E1}, CommonFile | CommonRank},
		{[]position.Pos{position.C3}, 0},
	}
	for _, tt := range tests {
		if got := NewCommonality(tt.candidates); got != tt.want {
			t.Errorf("NewCommonality(%v) = %s, want %s", tt.candidates, got, tt.want)
		}
	}
}

func TestResolveAmbiguity(t *testing.T) {
	t.Parallel()
	_, off := mustBoards(t, "8/8/8/3N4/8/8/8/1N6")
	two := []position.Pos{position.B1, position.D5}
	one := []position.Pos{position.B1}

	tests := []struct {
		name       string
		candidates []position.Pos
		hint       Hint
		fromHint   position.Pos
		wantAmbig  bool
		wantFrom   position.Pos
	}{
		{"two candidates without hint", two, HintNone, position.PosNone, true, position.PosNone},
		{"file picks b1", two, HintFile, position.NewPos(position.FileB, position.Rank1), false, position.B1},
		{"rank picks d5", two, HintRank, position.NewPos(position.FileA, position.Rank5), false, position.D5},
		{"square picks d5", two, HintSquare, position.D5, false, position.D5},
		{"file matching neither", two, HintFile, position.NewPos(position.FileE, position.Rank1), true, position.PosNone},
		{"square not a candidate", two, HintSquare, position.E4, true, position.PosNone},
		{"single candidate without hint", one, HintNone, position.PosNone, false, position.B1},
		{"single candidate with matching file", one, HintFile, position.NewPos(position.FileB, position.Rank1), false, position.B1},
		{"single candidate contradicted by file", one, HintFile, position.NewPos(position.FileA, position.Rank1), true, position.PosNone},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mv := NewMove(0)
			mv.Piece, mv.To = board.WhiteKnight, position.C3
			mv.Hint, mv.FromHint = tt.hint, tt.fromHint
			if got := ResolveAmbiguity(&off, tt.candidates, &mv); got != tt.wantAmbig {
				t.Fatalf("ResolveAmbiguity() = %v, want %v", got, tt.wantAmbig)
			}
			if mv.From != tt.wantFrom {
				t.Errorf("From = %s, want %s", mv.From, tt.wantFrom)
			}
		})
	}
}

func TestResolveAmbiguitySquareOccupant(t *testing.T) {
	t.Parallel()
	var empty board.Offset
	mv := NewMove(0)
	mv.Piece, mv.To = board.WhiteKnight, position.C3
	mv.Hint, mv.FromHint = HintSquare, position.B1
	if !ResolveAmbiguity(&empty, []position.Pos{position.B1}, &mv) {
		t.Error("square hint on an empty square was accepted")
	}
}
