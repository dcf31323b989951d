package board

import (
	"errors"
	"fmt"

	"github.com/daystram/sankit/position"
)

var (
	// ErrInvalidCastleRights represents a malformed castling rights string.
	ErrInvalidCastleRights = errors.New("invalid castling rights")

	// DefaultCastleRights is the castling rights string of the standard initial position.
	DefaultCastleRights = CastleRights{'H', 'A', 'h', 'a'}
)

const castleRightsUnavailable = '-'

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

// NewCastleDirection returns the king side (right) or queen side (left) direction of s.
func NewCastleDirection(s Side, right bool) CastleDirection {
	switch {
	case s == SideWhite && right:
		return CastleDirectionWhiteRight
	case s == SideWhite:
		return CastleDirectionWhiteLeft
	case right:
		return CastleDirectionBlackRight
	default:
		return CastleDirectionBlackLeft
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

func (d CastleDirection) Side() Side {
	if d.IsWhite() {
		return SideWhite
	}
	return SideBlack
}

// KingTarget is the square the king lands on.
func (d CastleDirection) KingTarget() position.Pos {
	if d == CastleDirectionUnknown {
		return position.PosNone
	}
	return position.NewPos(posCastling[d][0], d.Side().HomeRank())
}

// RookTarget is the square the rook lands on.
func (d CastleDirection) RookTarget() position.Pos {
	if d == CastleDirectionUnknown {
		return position.PosNone
	}
	return position.NewPos(posCastling[d][1], d.Side().HomeRank())
}

// CastleRights holds, per direction, the file letter of the participating rook or '-'.
type CastleRights [4]byte

// ParseCastleRights decodes a 4-character rights string such as "HAha" or "H--a".
func ParseCastleRights(s string) (CastleRights, error) {
	var c CastleRights
	if len(s) != len(c) {
		return c, fmt.Errorf("%w: want 4 characters, got %q", ErrInvalidCastleRights, s)
	}
	for i := range c {
		e := s[i]
		lo, hi := byte('A'), byte('H')
		if i >= 2 {
			lo, hi = 'a', 'h'
		}
		if e != castleRightsUnavailable && (e < lo || e > hi) {
			return c, fmt.Errorf("%w: unexpected '%c' at %d", ErrInvalidCastleRights, e, i)
		}
		c[i] = e
	}
	return c, nil
}

func (c CastleRights) String() string {
	return string(c[:])
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	if d == CastleDirectionUnknown {
		return false
	}
	return c[d-1] != castleRightsUnavailable
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	return c.IsAllowed(NewCastleDirection(s, true)) || c.IsAllowed(NewCastleDirection(s, false))
}

// RookFile returns the file of the rook that castles in direction d.
func (c CastleRights) RookFile(d CastleDirection) (position.Pos, bool) {
	if !c.IsAllowed(d) {
		return position.PosNone, false
	}
	return position.Pos((c[d-1] | 0x20) - 'a'), true
}

// Revoke marks d unavailable. Rights are never restored.
func (c *CastleRights) Revoke(d CastleDirection) {
	if d == CastleDirectionUnknown {
		return
	}
	c[d-1] = castleRightsUnavailable
}

func (c *CastleRights) RevokeSide(s Side) {
	c.Revoke(NewCastleDirection(s, true))
	c.Revoke(NewCastleDirection(s, false))
}

// RevokeRookAt revokes the direction whose rook starts on pos, if pos is on the home rank of s.
func (c *CastleRights) RevokeRookAt(s Side, pos position.Pos) {
	if !pos.Valid() || pos.Y() != s.HomeRank() {
		return
	}
	for _, d := range []CastleDirection{NewCastleDirection(s, true), NewCastleDirection(s, false)} {
		if f, ok := c.RookFile(d); ok && f == pos.X() {
			c.Revoke(d)
		}
	}
}
