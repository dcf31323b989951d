package board

import (
	"github.com/daystram/sankit/position"
)

// Side is the color bit of a piece code.
type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

var sideNames = [...]string{SideWhite: "White", SideBlack: "Black"}

func (s Side) String() string {
	if int(s) >= len(sideNames) {
		return ""
	}
	return sideNames[s]
}

func (s Side) Opposite() Side {
	return s ^ 1
}

// Forward returns the rank step a pawn of this side advances by.
func (s Side) Forward() int8 {
	if s == SideBlack {
		return -1
	}
	return 1
}

// HomeRank is the rank the king and rooks of s start on.
func (s Side) HomeRank() position.Pos {
	if s == SideBlack {
		return position.Rank8
	}
	return position.Rank1
}

// LastRank is the rank pawns of s promote on.
func (s Side) LastRank() position.Pos {
	return s.Opposite().HomeRank()
}

// EnPassantRank is the rank a pawn of s captures en passant from.
func (s Side) EnPassantRank() position.Pos {
	if s == SideBlack {
		return position.Rank4
	}
	return position.Rank5
}
