package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

// Position is the state a move is played from. Both board representations always
// describe the same placement.
type Position struct {
	bitboard      board.Bitboard
	offset        board.Offset
	castleRights  board.CastleRights
	enPassant     position.Pos
	halfMoveClock int
	halfmove      int
}

type positionConfig struct {
	placement     string
	castleRights  string
	enPassant     string
	halfMoveClock int
	halfmove      int
	fen           string
}

type PositionOption func(*positionConfig)

// WithPlacement sets the xFEN piece placement field.
func WithPlacement(placement string) PositionOption {
	return func(cfg *positionConfig) {
		cfg.placement = placement
	}
}

// WithCastleRights sets the rook files allowed to castle, e.g. "HAha" or "-A--".
func WithCastleRights(rights string) PositionOption {
	return func(cfg *positionConfig) {
		cfg.castleRights = rights
	}
}

// WithEnPassant sets the en passant target square in algebraic notation, or "-".
func WithEnPassant(target string) PositionOption {
	return func(cfg *positionConfig) {
		cfg.enPassant = target
	}
}

func WithHalfMoveClock(clock int) PositionOption {
	return func(cfg *positionConfig) {
		cfg.halfMoveClock = clock
	}
}

// WithHalfmove sets the index of the first halfmove; even indexes are played by white.
func WithHalfmove(halfmove int) PositionOption {
	return func(cfg *positionConfig) {
		cfg.halfmove = halfmove
	}
}

// WithFEN reads a complete (x)FEN record and overrides every other option.
// KQkq castling letters resolve to the outermost rook on the respective side.
func WithFEN(fen string) PositionOption {
	return func(cfg *positionConfig) {
		cfg.fen = fen
	}
}

func NewPosition(opts ...PositionOption) (*Position, error) {
	cfg := &positionConfig{
		placement:    board.StartingPlacement,
		castleRights: board.DefaultCastleRights.String(),
		enPassant:    "-",
	}
	for _, f := range opts {
		f(cfg)
	}

	placement := cfg.placement
	if fields := strings.Fields(cfg.fen); len(fields) > 0 {
		placement = fields[0]
	}
	offset, err := board.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	if cfg.fen != "" {
		if err := parseFENFields(cfg, &offset); err != nil {
			return nil, err
		}
	}
	rights, err := board.ParseCastleRights(cfg.castleRights)
	if err != nil {
		return nil, err
	}
	ep := position.PosNone
	if cfg.enPassant != "-" && cfg.enPassant != "" {
		if ep, err = position.NewPosFromNotation(cfg.enPassant); err != nil {
			return nil, fmt.Errorf("%w: invalid en passant target: %v", board.ErrInvalidFEN, err)
		}
		if ep.Y() != position.Rank3 && ep.Y() != position.Rank6 {
			return nil, fmt.Errorf("%w: invalid en passant target %s", board.ErrInvalidFEN, ep)
		}
	}
	if cfg.halfMoveClock < 0 || cfg.halfmove < 0 {
		return nil, fmt.Errorf("%w: negative move counter", board.ErrInvalidFEN)
	}

	return &Position{
		bitboard:      offset.Bitboard(),
		offset:        offset,
		castleRights:  rights,
		enPassant:     ep,
		halfMoveClock: cfg.halfMoveClock,
		halfmove:      cfg.halfmove,
	}, nil
}

func parseFENFields(cfg *positionConfig, offset *board.Offset) error {
	segments := strings.Fields(cfg.fen)
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", board.ErrInvalidFEN)
	}

	var turn int
	switch segments[1] {
	case "w":
	case "b":
		turn = 1
	default:
		return fmt.Errorf("%w: invalid turn", board.ErrInvalidFEN)
	}

	rights := []byte("----")
	if segments[2] != "-" {
		if len(segments[2]) > 4 {
			return fmt.Errorf("%w: invalid castling rights", board.ErrInvalidFEN)
		}
		for _, e := range []byte(segments[2]) {
			s := board.SideWhite
			if e >= 'a' {
				s = board.SideBlack
			}
			var d board.CastleDirection
			var f position.Pos
			switch e | 0x20 {
			case 'k':
				d, f = board.NewCastleDirection(s, true), outerRook(offset, s, true)
			case 'q':
				d, f = board.NewCastleDirection(s, false), outerRook(offset, s, false)
			default:
				x, err := position.NewFileFromNotation(e | 0x20)
				if err != nil {
					return fmt.Errorf("%w: invalid castling rights", board.ErrInvalidFEN)
				}
				bb := offset.Bitboard()
				king := bb.King(s)
				d, f = board.NewCastleDirection(s, king.Valid() && x > king.X()), x
			}
			if f == position.PosNone {
				return fmt.Errorf("%w: no rook for castling right '%c'", board.ErrInvalidFEN, e)
			}
			letter := byte('A' + f)
			if s == board.SideBlack {
				letter |= 0x20
			}
			rights[d-1] = letter
		}
	}
	cfg.castleRights = string(rights)
	cfg.enPassant = segments[3]

	clock, err := strconv.Atoi(segments[4])
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", board.ErrInvalidFEN)
	}
	fullmove, err := strconv.Atoi(segments[5])
	if err != nil || fullmove < 1 {
		return fmt.Errorf("%w: invalid full move clock", board.ErrInvalidFEN)
	}
	cfg.halfMoveClock = clock
	cfg.halfmove = (fullmove-1)*2 + turn
	return nil
}

// outerRook finds the rook of s furthest from its king on the home rank, on the king
// side when right is set.
func outerRook(offset *board.Offset, s board.Side, right bool) position.Pos {
	bb := offset.Bitboard()
	king := bb.King(s)
	if !king.Valid() {
		return position.PosNone
	}
	rooks := bb.Get(board.NewPiece(s, board.KindRook)) & board.RankMask(king.Y())
	if right {
		rooks &= board.Ray(board.DirectionE, king)
		if sq := rooks.MS1B(); sq.Valid() {
			return sq.X()
		}
		return position.PosNone
	}
	rooks &= board.Ray(board.DirectionW, king)
	if sq := rooks.LS1B(); sq.Valid() {
		return sq.X()
	}
	return position.PosNone
}

func (p *Position) Bitboard() board.Bitboard {
	return p.bitboard
}

func (p *Position) Offset() board.Offset {
	return p.offset
}

func (p *Position) CastleRights() board.CastleRights {
	return p.castleRights
}

func (p *Position) EnPassant() position.Pos {
	return p.enPassant
}

func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Halfmove is the index of the next halfmove to be played.
func (p *Position) Halfmove() int {
	return p.halfmove
}

// Turn is the side to play the next halfmove.
func (p *Position) Turn() board.Side {
	return board.Side(p.halfmove & 1)
}

func (p *Position) Placement() string {
	return p.offset.Placement()
}

func (p *Position) Snapshot() string {
	return p.offset.Snapshot()
}

func (p *Position) Draw(highlight ...position.Pos) string {
	return p.offset.Draw(highlight...)
}

// replace substitutes the board pair with the placement of offset.
func (p *Position) replace(offset board.Offset) {
	p.offset = offset
	p.bitboard = offset.Bitboard()
}

// insufficientMaterial reports bare kings, or kings with a single minor piece.
func (p *Position) insufficientMaterial() bool {
	switch p.bitboard.Count() {
	case 0, 1, 2:
		return true
	case 3:
		for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
			if p.bitboard.Get(board.NewPiece(s, board.KindBishop))|p.bitboard.Get(board.NewPiece(s, board.KindKnight)) != 0 {
				return true
			}
		}
	}
	return false
}
