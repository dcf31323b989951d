package board

import (
	"github.com/daystram/sankit/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	// StartingPlacement is the xFEN placement field of the standard initial position.
	StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

// Direction is one of the eight compass directions a ray travels in.
type Direction uint8

const (
	DirectionN Direction = iota
	DirectionNE
	DirectionE
	DirectionSE
	DirectionS
	DirectionSW
	DirectionW
	DirectionNW

	directionCount
)

// Increasing reports whether squares along the ray grow in index.
func (d Direction) Increasing() bool {
	return d == DirectionN || d == DirectionNE || d == DirectionE || d == DirectionNW
}

// IsDiagonal reports whether the ray is diagonal.
func (d Direction) IsDiagonal() bool {
	return d&1 == 1
}

var (
	maskCol = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell   [TotalCells]Bitmap
	maskKnight [TotalCells]Bitmap
	maskKing   [TotalCells]Bitmap
	maskPawn   [2][TotalCells]Bitmap
	maskRay    [directionCount][TotalCells]Bitmap

	// maskCastlePath is indexed by side, queen side (1) or king side (0), king file and rook file.
	maskCastlePath [2][2][Width][Width]Bitmap

	// posCastling holds the king and rook destination files per direction.
	posCastling = [4 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {position.FileG, position.FileF},
		CastleDirectionWhiteLeft:  {position.FileC, position.FileD},
		CastleDirectionBlackRight: {position.FileG, position.FileF},
		CastleDirectionBlackLeft:  {position.FileC, position.FileD},
	}

	rayStep = [directionCount][2]position.Pos{
		DirectionN:  {0, 1},
		DirectionNE: {1, 1},
		DirectionE:  {1, 0},
		DirectionSE: {1, -1},
		DirectionS:  {0, -1},
		DirectionSW: {-1, -1},
		DirectionW:  {-1, 0},
		DirectionNW: {-1, 1},
	}
)

func init() {
	initMask()
	initRay()
	initPawn()
	initCastlePath()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := Bitmap(0)
		mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[7])))
		mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[0])))
		mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[7])))
		mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[0])))
		mask |= ShiftE(ShiftE(ShiftN(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[7])))
		mask |= ShiftE(ShiftE(ShiftS(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[0])))
		mask |= ShiftW(ShiftW(ShiftN(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[7])))
		mask |= ShiftW(ShiftW(ShiftS(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[0])))
		maskKnight[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := Bitmap(0)
		mask |= ShiftN(cell &^ maskRow[7])
		mask |= ShiftNE(cell &^ maskRow[7] &^ maskCol[7])
		mask |= ShiftE(cell &^ maskCol[7])
		mask |= ShiftSE(cell &^ maskRow[0] &^ maskCol[7])
		mask |= ShiftS(cell &^ maskRow[0])
		mask |= ShiftSW(cell &^ maskRow[0] &^ maskCol[0])
		mask |= ShiftW(cell &^ maskCol[0])
		mask |= ShiftNW(cell &^ maskRow[7] &^ maskCol[0])
		maskKing[pos] = mask
	}
}

func initRay() {
	for d := Direction(0); d < directionCount; d++ {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			mask := Bitmap(0)
			x, y := pos.X()+rayStep[d][0], pos.Y()+rayStep[d][1]
			for next := position.NewPos(x, y); next != position.PosNone; next = position.NewPos(x, y) {
				mask |= maskCell[next]
				x, y = x+rayStep[d][0], y+rayStep[d][1]
			}
			maskRay[d][pos] = mask
		}
	}
}

func initPawn() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]

		maskPawn[SideWhite][pos] = Union(
			ShiftN(cell&^maskRow[7]),
			ShiftNE(cell&^maskRow[7]&^maskCol[7]),
			ShiftNW(cell&^maskRow[7]&^maskCol[0]),
			ShiftN(ShiftN(cell&maskRow[1])),
		)
		maskPawn[SideBlack][pos] = Union(
			ShiftS(cell&^maskRow[0]),
			ShiftSE(cell&^maskRow[0]&^maskCol[7]),
			ShiftSW(cell&^maskRow[0]&^maskCol[0]),
			ShiftS(ShiftS(cell&maskRow[6])),
		)
	}
}

func initCastlePath() {
	for _, s := range []Side{SideWhite, SideBlack} {
		row := maskRow[s.HomeRank()]
		for queenSide := 0; queenSide < 2; queenSide++ {
			d := NewCastleDirection(s, queenSide == 0)
			kingTo, rookTo := posCastling[d][0], posCastling[d][1]
			for kingFile := position.Pos(0); kingFile < Width; kingFile++ {
				for rookFile := position.Pos(0); rookFile < Width; rookFile++ {
					switch {
					case kingFile == 0 || kingFile == Width-1:
						continue
					case kingFile == rookFile,
						queenSide == 0 && rookFile < kingFile,
						queenSide == 1 && rookFile > kingFile:
						maskCastlePath[s][queenSide][kingFile][rookFile] = Full
						continue
					}
					path := fileSpan(kingFile, kingTo) | fileSpan(rookFile, rookTo)
					path &^= maskCol[kingFile] | maskCol[rookFile]
					maskCastlePath[s][queenSide][kingFile][rookFile] = path & row
				}
			}
		}
	}
}

// fileSpan returns every file between a and b inclusive, across all ranks.
func fileSpan(a, b position.Pos) Bitmap {
	if a > b {
		a, b = b, a
	}
	var mask Bitmap
	for f := a; f <= b; f++ {
		mask |= maskCol[f]
	}
	return mask
}
