package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notation string
		want     Pos
		wantErr  error
	}{
		{notation: "a1", want: A1},
		{notation: "e4", want: E4},
		{notation: "c6", want: C6},
		{notation: "h8", want: H8},
		{notation: "", wantErr: ErrInvalidNotation},
		{notation: "f", wantErr: ErrInvalidNotation},
		{notation: "E4", wantErr: ErrInvalidNotation},
		{notation: "i2", wantErr: ErrInvalidNotation},
		{notation: "b9", wantErr: ErrInvalidNotation},
		{notation: "g0", wantErr: ErrInvalidNotation},
		{notation: "e4+", wantErr: ErrInvalidNotation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.notation, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNewPos(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y Pos
		want Pos
	}{
		{name: "a1", x: FileA, y: Rank1, want: A1},
		{name: "d4", x: FileD, y: Rank4, want: D4},
		{name: "h8", x: FileH, y: Rank8, want: H8},
		{name: "file off board", x: 8, y: Rank1, want: PosNone},
		{name: "rank off board", x: FileA, y: -1, want: PosNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewPos(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if got.Valid() && (got.X() != tt.x || got.Y() != tt.y) {
				t.Errorf("unexpected components: got=(%d,%d) want=(%d,%d)", got.X(), got.Y(), tt.x, tt.y)
			}
		})
	}
}

func TestPosNotation(t *testing.T) {
	t.Parallel()
	for p := A1; p <= H8; p++ {
		got, err := NewPosFromNotation(p.Notation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != p {
			t.Errorf("unexpected result: got=%v want=%v", got, p)
		}
		if p.X().NotationComponentX()+p.Y().NotationComponentY() != p.Notation() {
			t.Errorf("unexpected components for %v", p)
		}
	}
	if PosNone.Notation() != "" {
		t.Errorf("unexpected notation for PosNone: %q", PosNone.Notation())
	}
	if _, err := NewFileFromNotation('i'); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidNotation)
	}
	if _, err := NewRankFromNotation('0'); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidNotation)
	}
}
