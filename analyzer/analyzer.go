package analyzer

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Analyzer walks a move sequence once, left to right, and enriches every record.
type Analyzer struct {
	logger func(...any)
}

type Option func(*Analyzer)

// WithLogger installs a logger receiving one line per analyzed halfmove.
func WithLogger(logger func(...any)) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, f := range opts {
		f(a)
	}
	if a.logger == nil {
		a.logger = func(...any) {}
	}
	return a
}

// Analyze validates seq from start and returns the position after the last move.
// start is left untouched. The first failing move stops the walk; the error is a
// *MoveError wrapping one of the package sentinels.
func (a *Analyzer) Analyze(start *Position, seq *Sequence) (*Position, error) {
	if start == nil {
		return nil, ErrMissingStartingPosition
	}
	if seq.Len() == 0 {
		return nil, ErrEmptyMoveSequence
	}
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		if start.bitboard.King(s) == position.PosNone {
			return nil, fmt.Errorf("%w: %s king missing", ErrMissingStartingPosition, s)
		}
	}

	pos := *start
	for i := 0; i < seq.Len(); i++ {
		mv := seq.At(i)
		if mv.IsNull() {
			if err := endedBefore(&pos, mv, kingStatus(&pos.bitboard, &pos.offset, pos.Turn(), pos.enPassant)); err != nil {
				a.logger(fmt.Sprintf("[%d] %v", mv.Halfmove, err))
				return nil, err
			}
			pos.enPassant = position.PosNone
			pos.halfmove++
			a.logger(fmt.Sprintf("[%d] null move", mv.Halfmove))
			continue
		}
		if err := a.step(&pos, mv, seq.Next(i)); err != nil {
			a.logger(fmt.Sprintf("[%d] %v", mv.Halfmove, err))
			return nil, err
		}
		a.logger(fmt.Sprintf("[%d] %s %s status=%s", mv.Halfmove, mv.Piece.Side(), mv, mv.StatusAfter))
	}
	return &pos, nil
}

func (a *Analyzer) step(pos *Position, mv, next *Move) error {
	side := mv.Piece.Side()
	if side != pos.Turn() {
		return moveErrorf(mv, ErrIllegalMove, "%s to move", pos.Turn())
	}

	if !mv.StatusBeforeComputed {
		mv.StatusBefore = kingStatus(&pos.bitboard, &pos.offset, side, pos.enPassant)
		mv.StatusBeforeComputed = true
	}
	if err := endedBefore(pos, mv, mv.StatusBefore); err != nil {
		return err
	}

	mv.SnapshotBefore = pos.Snapshot()

	if err := resolve(pos, mv); err != nil {
		return err
	}
	out, err := play(pos, mv)
	if err != nil {
		return err
	}
	pos.replace(out.offset)
	mv.Captured, mv.EnPassant = out.captured, out.enPassant

	rights := pos.castleRights
	switch {
	case mv.Castle != board.CastleDirectionUnknown, mv.Piece.Kind() == board.KindKing:
		rights.RevokeSide(side)
	case mv.Piece.Kind() == board.KindRook:
		rights.RevokeRookAt(side, mv.From)
	}
	if out.captured == board.KindRook {
		rights.RevokeRookAt(side.Opposite(), mv.To)
	}
	pos.castleRights = rights

	pos.enPassant = position.PosNone
	if mv.Piece.Kind() == board.KindPawn && (mv.To.Y()-mv.From.Y() == 2 || mv.From.Y()-mv.To.Y() == 2) {
		pos.enPassant = position.NewPos(mv.From.X(), (mv.From.Y()+mv.To.Y())/2)
	}
	if mv.Piece.Kind() == board.KindPawn || out.captured != board.KindNone {
		pos.halfMoveClock = 0
	} else {
		pos.halfMoveClock++
	}
	pos.halfmove++
	mv.EnPassantTarget, mv.HalfMoveClock, mv.CastleRights = pos.enPassant, pos.halfMoveClock, pos.castleRights

	mv.SnapshotAfter = pos.Snapshot()

	opponent := side.Opposite()
	mv.StatusAfter = kingStatus(&pos.bitboard, &pos.offset, opponent, pos.enPassant)
	mv.StatusAfterComputed = true
	if next != nil && !next.IsNull() && next.Piece.Side() == opponent {
		next.StatusBefore, next.StatusBeforeComputed = mv.StatusAfter, true
	}
	return nil
}

// endedBefore rejects mv, null moves included, once the game is over: status is the
// king status of the side to move.
func endedBefore(pos *Position, mv *Move, status KingStatus) error {
	if status.IsTerminal() {
		return moveErrorf(mv, ErrMovesAfterGameEnd, "%s already reached", status)
	}
	if pos.insufficientMaterial() {
		return moveErrorf(mv, ErrMovesAfterGameEnd, "insufficient material")
	}
	return nil
}

// resolve fills mv.From, and mv.To for castling, from the hints of mv.
func resolve(pos *Position, mv *Move) error {
	side := mv.Piece.Side()
	if mv.Castle != board.CastleDirectionUnknown {
		if mv.Piece.Kind() != board.KindKing || mv.Castle.Side() != side {
			return moveErrorf(mv, ErrIllegalMove, "castling by %s", mv.Piece)
		}
		rookFile, ok := pos.castleRights.RookFile(mv.Castle)
		if !ok {
			return moveErrorf(mv, ErrIllegalMove, "no castling right")
		}
		to := mv.Castle.KingTarget()
		rookSq := position.NewPos(rookFile, to.Y())
		if pos.offset.At(rookSq) != board.NewPiece(side, board.KindRook) {
			return moveErrorf(mv, ErrIllegalMove, "no rook on %s", rookSq)
		}
		king := pos.bitboard.King(side)
		if ok, _ := IsReachable(&pos.bitboard, king, to, board.SpecialCastling(rookFile)); !ok {
			return moveErrorf(mv, ErrIllegalMove, "castling path obstructed")
		}
		mv.From, mv.To = king, to
		return nil
	}

	if !mv.To.Valid() {
		return moveErrorf(mv, ErrIllegalMove, "missing destination")
	}
	isPawn := mv.Piece.Kind() == board.KindPawn
	lastRank := side.LastRank()
	switch {
	case isPawn && mv.To.Y() == lastRank && mv.Promotion == board.KindNone:
		return moveErrorf(mv, ErrIllegalMove, "promotion piece required")
	case mv.Promotion != board.KindNone && (!isPawn || mv.To.Y() != lastRank):
		return moveErrorf(mv, ErrIllegalMove, "promotion outside the last rank")
	case mv.Promotion != board.KindNone && !slices.Contains(board.PawnPromoteCandidates, mv.Promotion):
		return moveErrorf(mv, ErrIllegalMove, "cannot promote to %s", mv.Promotion)
	}

	special := board.SpecialNone()
	if isPawn {
		special = board.SpecialEnPassant(pos.enPassant)
	}
	king := pos.bitboard.King(side)
	var candidates []position.Pos
	for _, sq := range pos.bitboard.Get(mv.Piece).Squares() {
		if ok, _ := IsReachable(&pos.bitboard, sq, mv.To, special); !ok {
			continue
		}
		if mv.Piece.Kind() != board.KindKing {
			if pinned, pinner := IsPinned(&pos.bitboard, &pos.offset, sq, king, side); pinned && !onPinLine(king, pinner, mv.To) {
				continue
			}
			if (mv.StatusBefore == KingStatusCheck || (isPawn && mv.To == pos.enPassant)) &&
				!safeAfter(pos.offset, side, sq, mv.To, pos.enPassant) {
				continue
			}
		}
		candidates = append(candidates, sq)
	}
	if len(candidates) == 0 {
		return moveErrorf(mv, ErrIllegalMove, "no %s can reach %s", mv.Piece.Kind(), mv.To)
	}
	if ResolveAmbiguity(&pos.offset, candidates, mv) {
		return moveErrorf(mv, ErrAmbiguousMove, "candidates %v share %s, hint %s", candidates, NewCommonality(candidates), mv.Hint)
	}
	return nil
}
