package board

import (
	"github.com/daystram/sankit/position"
)

func FileMask(x position.Pos) Bitmap {
	if x < 0 || x >= Width {
		return 0
	}
	return maskCol[x]
}

func RankMask(y position.Pos) Bitmap {
	if y < 0 || y >= Height {
		return 0
	}
	return maskRow[y]
}

func KnightReach(pos position.Pos) Bitmap {
	if !pos.Valid() {
		return 0
	}
	return maskKnight[pos]
}

func KingReach(pos position.Pos) Bitmap {
	if !pos.Valid() {
		return 0
	}
	return maskKing[pos]
}

// PawnReach is every square a pawn of side s may move to from pos on some board:
// the push, the double push from its starting rank, and both diagonals.
func PawnReach(s Side, pos position.Pos) Bitmap {
	if s > SideBlack || !pos.Valid() {
		return 0
	}
	return maskPawn[s][pos]
}

// Ray excludes pos itself.
func Ray(d Direction, pos position.Pos) Bitmap {
	if d >= directionCount || !pos.Valid() {
		return 0
	}
	return maskRay[d][pos]
}

// CastlePath returns the squares that must be vacant for the king on kingFile and the
// rook on rookFile to castle in direction d. The king and rook squares are excluded.
// It returns Full when the files coincide or the rook stands on the wrong side of the
// king, and 0 for out of range arguments.
func CastlePath(d CastleDirection, kingFile, rookFile position.Pos) Bitmap {
	if d == CastleDirectionUnknown || d > CastleDirectionBlackLeft {
		return 0
	}
	if kingFile <= 0 || kingFile >= Width-1 || rookFile < 0 || rookFile >= Width {
		return 0
	}
	queenSide := 0
	if !d.IsRight() {
		queenSide = 1
	}
	return maskCastlePath[d.Side()][queenSide][kingFile][rookFile]
}
