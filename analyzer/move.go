package analyzer

import (
	"strings"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

// Hint is the granularity of the source square given in the notation.
type Hint uint8

const (
	HintNone Hint = iota
	HintFile
	HintRank
	HintSquare
)

func (h Hint) String() string {
	switch h {
	case HintFile:
		return "file"
	case HintRank:
		return "rank"
	case HintSquare:
		return "square"
	default:
		return "none"
	}
}

type KingStatus uint8

const (
	KingStatusNone KingStatus = iota
	KingStatusCheck
	KingStatusCheckmate
	KingStatusStalemate
)

func (s KingStatus) String() string {
	switch s {
	case KingStatusCheck:
		return "check"
	case KingStatusCheckmate:
		return "checkmate"
	case KingStatusStalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// IsTerminal reports whether no further move may follow.
func (s KingStatus) IsTerminal() bool {
	return s == KingStatusCheckmate || s == KingStatusStalemate
}

// Move is one halfmove of a sequence. The tokenizer fills Halfmove, Piece, To, Hint,
// FromHint, Promotion and Castle; the analyzer completes the rest.
type Move struct {
	Halfmove int

	// Piece is the moving piece. PieceNone marks a null move, which is skipped.
	Piece board.Piece
	From  position.Pos
	To    position.Pos

	// FromHint carries the file in X for HintFile, the rank in Y for HintRank, or the
	// full square for HintSquare.
	Hint     Hint
	FromHint position.Pos

	Promotion board.Kind
	Captured  board.Kind
	Castle    board.CastleDirection
	EnPassant bool

	StatusBefore         KingStatus
	StatusBeforeComputed bool
	StatusAfter          KingStatus
	StatusAfterComputed  bool

	SnapshotBefore string
	SnapshotAfter  string

	// EnPassantTarget, HalfMoveClock and CastleRights describe the position the
	// following move is played from.
	EnPassantTarget position.Pos
	HalfMoveClock   int
	CastleRights    board.CastleRights
}

// NewMove returns a blank record for halfmove.
func NewMove(halfmove int) Move {
	return Move{
		Halfmove:        halfmove,
		From:            position.PosNone,
		To:              position.PosNone,
		FromHint:        position.PosNone,
		SnapshotBefore:  board.EmptySnapshot(),
		SnapshotAfter:   board.EmptySnapshot(),
		EnPassantTarget: position.PosNone,
		CastleRights:    board.CastleRights{'-', '-', '-', '-'},
	}
}

func (m *Move) IsNull() bool {
	return m.Piece.IsNone()
}

// Side returns the side to move in this halfmove.
func (m *Move) Side() board.Side {
	if m.IsNull() {
		return board.Side(m.Halfmove & 1)
	}
	return m.Piece.Side()
}

// String renders the move in long algebraic form, e.g. "Ng1-f3", "e7xd8=Q" or "O-O".
func (m *Move) String() string {
	if m.IsNull() {
		return "--"
	}
	if m.Castle != board.CastleDirectionUnknown {
		if m.Castle.IsRight() {
			return "O-O"
		}
		return "O-O-O"
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(m.Piece.SymbolAlgebra())
	switch {
	case m.From.Valid():
		_, _ = builder.WriteString(m.From.Notation())
	case m.Hint == HintFile:
		_, _ = builder.WriteString(m.FromHint.X().NotationComponentX())
	case m.Hint == HintRank:
		_, _ = builder.WriteString(m.FromHint.Y().NotationComponentY())
	case m.Hint == HintSquare:
		_, _ = builder.WriteString(m.FromHint.Notation())
	}
	if m.Captured != board.KindNone {
		_, _ = builder.WriteRune('x')
	} else if m.From.Valid() {
		_, _ = builder.WriteRune('-')
	}
	_, _ = builder.WriteString(m.To.Notation())
	if m.Promotion != board.KindNone {
		_, _ = builder.WriteRune('=')
		_ = builder.WriteByte(m.Promotion.Symbol())
	}
	switch {
	case m.StatusAfter == KingStatusCheckmate:
		_, _ = builder.WriteRune('#')
	case m.StatusAfter == KingStatusCheck:
		_, _ = builder.WriteRune('+')
	}
	return builder.String()
}

// Sequence is an ordered list of moves addressed by index.
type Sequence struct {
	moves []Move
}

func NewSequence(mvs ...Move) *Sequence {
	return &Sequence{moves: mvs}
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.moves)
}

// At returns the move at i, or nil when out of range.
func (s *Sequence) At(i int) *Move {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return &s.moves[i]
}

func (s *Sequence) Prev(i int) *Move {
	return s.At(i - 1)
}

func (s *Sequence) Next(i int) *Move {
	return s.At(i + 1)
}

// Append adds mv at the end and returns its stored record.
func (s *Sequence) Append(mv Move) *Move {
	s.moves = append(s.moves, mv)
	return &s.moves[len(s.moves)-1]
}

// Moves returns the stored records.
func (s *Sequence) Moves() []Move {
	if s == nil {
		return nil
	}
	return s.moves
}
