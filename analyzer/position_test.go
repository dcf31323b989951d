package analyzer

import (
	"errors"
	"testing"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

func TestNewPositionDefaults(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t)
	if got := pos.Placement(); got != board.StartingPlacement {
		t.Errorf("Placement() = %s, want %s", got, board.StartingPlacement)
	}
	if got := pos.CastleRights().String(); got != "HAha" {
		t.Errorf("CastleRights() = %s, want HAha", got)
	}
	if pos.EnPassant() != position.PosNone || pos.HalfMoveClock() != 0 || pos.Halfmove() != 0 {
		t.Errorf("unexpected counters: ep=%s clock=%d halfmove=%d", pos.EnPassant(), pos.HalfMoveClock(), pos.Halfmove())
	}
	if pos.Turn() != board.SideWhite {
		t.Errorf("Turn() = %s, want white", pos.Turn())
	}
	if bb := pos.Bitboard(); !bb.Consistent() || bb.Count() != 32 {
		t.Error("starting bitboard is inconsistent")
	}
}

func TestNewPositionOptions(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t,
		WithPlacement("4k3/8/8/3pP3/8/8/8/4K3"),
		WithCastleRights("----"),
		WithEnPassant("d6"),
		WithHalfMoveClock(7),
		WithHalfmove(41),
	)
	if pos.EnPassant() != position.D6 {
		t.Errorf("EnPassant() = %s, want d6", pos.EnPassant())
	}
	if pos.HalfMoveClock() != 7 || pos.Halfmove() != 41 || pos.Turn() != board.SideBlack {
		t.Errorf("unexpected counters: clock=%d halfmove=%d turn=%s", pos.HalfMoveClock(), pos.Halfmove(), pos.Turn())
	}
	if pos.CastleRights().IsSideAllowed(board.SideWhite) || pos.CastleRights().IsSideAllowed(board.SideBlack) {
		t.Error("castling allowed without rights")
	}
}

func TestNewPositionFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen          string
		wantRights   string
		wantEP       position.Pos
		wantClock    int
		wantHalfmove int
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "HAha", position.PosNone, 0, 0},
		{"rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2", "HAha", position.D3, 0, 3},
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 30", "H--a", position.PosNone, 12, 58},
		{"1r2k1r1/8/8/8/8/8/8/1R2K1R1 w KQkq - 0 1", "GBgb", position.PosNone, 0, 0},
		{"rk2r3/8/8/8/8/8/8/RK2R3 w EAea - 0 1", "EAea", position.PosNone, 0, 0},
		{"4k3/8/8/8/8/8/8/4K3 b - - 3 9", "----", position.PosNone, 3, 17},
	}
	for _, tt := range tests {
		pos, err := NewPosition(WithFEN(tt.fen))
		if err != nil {
			t.Errorf("NewPosition(%q) unexpected error: %v", tt.fen, err)
			continue
		}
		if got := pos.CastleRights().String(); got != tt.wantRights {
			t.Errorf("NewPosition(%q) rights = %s, want %s", tt.fen, got, tt.wantRights)
		}
		if pos.EnPassant() != tt.wantEP || pos.HalfMoveClock() != tt.wantClock || pos.Halfmove() != tt.wantHalfmove {
			t.Errorf("NewPosition(%q) = ep %s clock %d halfmove %d", tt.fen, pos.EnPassant(), pos.HalfMoveClock(), pos.Halfmove())
		}
	}
}

func TestNewPositionInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		opts []PositionOption
		want error
	}{
		{"short rank", []PositionOption{WithPlacement("rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")}, board.ErrInvalidFEN},
		{"unknown piece", []PositionOption{WithPlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX")}, board.ErrInvalidFEN},
		{"bad rights", []PositionOption{WithCastleRights("KQkq")}, board.ErrInvalidCastleRights},
		{"en passant off rank", []PositionOption{WithEnPassant("e4")}, board.ErrInvalidFEN},
		{"en passant off board", []PositionOption{WithEnPassant("i3")}, board.ErrInvalidFEN},
		{"negative clock", []PositionOption{WithHalfMoveClock(-1)}, board.ErrInvalidFEN},
		{"missing fen fields", []PositionOption{WithFEN("4k3/8/8/8/8/8/8/4K3 w - -")}, board.ErrInvalidFEN},
		{"bad turn", []PositionOption{WithFEN("4k3/8/8/8/8/8/8/4K3 x - - 0 1")}, board.ErrInvalidFEN},
		{"right without rook", []PositionOption{WithFEN("4k3/8/8/8/8/8/8/4K3 w K - 0 1")}, board.ErrInvalidFEN},
		{"zero fullmove", []PositionOption{WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 0")}, board.ErrInvalidFEN},
	}
	for _, tt := range tests {
		if _, err := NewPosition(tt.opts...); !errors.Is(err, tt.want) {
			t.Errorf("%s: NewPosition() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestInsufficientMaterial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		placement string
		want      bool
	}{
		{"4k3/8/8/8/8/8/8/4K3", true},
		{"4k3/8/8/8/8/8/8/4KB2", true},
		{"4k3/8/8/8/8/8/8/4KN2", true},
		{"4k3/8/8/8/8/8/8/4KR2", false},
		{"4k3/8/8/8/8/8/4P3/4K3", false},
		{"4kb2/8/8/8/8/8/8/4KB2", false},
		{board.StartingPlacement, false},
	}
	for _, tt := range tests {
		pos := mustPosition(t, WithPlacement(tt.placement))
		if got := pos.insufficientMaterial(); got != tt.want {
			t.Errorf("insufficientMaterial(%s) = %v, want %v", tt.placement, got, tt.want)
		}
	}
}
