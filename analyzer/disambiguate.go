package analyzer

import (
	"golang.org/x/exp/slices"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

// Commonality records which components the candidate squares share.
type Commonality uint8

const (
	CommonRank Commonality = 1 << iota
	CommonFile
)

// NewCommonality compares every pair of candidates.
func NewCommonality(candidates []position.Pos) Commonality {
	var c Commonality
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[i].X() == candidates[j].X() {
				c |= CommonFile
			}
			if candidates[i].Y() == candidates[j].Y() {
				c |= CommonRank
			}
		}
	}
	return c
}

func (c Commonality) String() string {
	switch c {
	case CommonFile | CommonRank:
		return "file and rank"
	case CommonFile:
		return "file"
	case CommonRank:
		return "rank"
	default:
		return "nothing"
	}
}

// ResolveAmbiguity picks the candidate the hint of mv designates and stores it in
// mv.From. It reports true when the hint does not designate exactly one candidate, or
// contradicts the only one.
func ResolveAmbiguity(off *board.Offset, candidates []position.Pos, mv *Move) bool {
	matches := make([]position.Pos, 0, len(candidates))
	for _, sq := range candidates {
		if matchesHint(sq, mv) {
			matches = append(matches, sq)
		}
	}
	if len(matches) != 1 {
		return true
	}
	from := matches[0]
	if mv.Hint == HintSquare && (!slices.Contains(candidates, mv.FromHint) || off.At(from) != mv.Piece) {
		return true
	}
	mv.From = from
	return false
}

func matchesHint(sq position.Pos, mv *Move) bool {
	switch mv.Hint {
	case HintFile:
		return sq.X() == mv.FromHint.X()
	case HintRank:
		return sq.Y() == mv.FromHint.Y()
	case HintSquare:
		return sq == mv.FromHint
	default:
		return true
	}
}
