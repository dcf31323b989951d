package analyzer

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMoveSequence       = errors.New("empty move sequence")
	ErrMissingStartingPosition = errors.New("missing starting position")
	ErrIllegalMove             = errors.New("illegal move")
	ErrAmbiguousMove           = errors.New("ambiguous move")
	ErrMovesAfterGameEnd       = errors.New("moves after game end")
)

// MoveError reports the halfmove at which analysis stopped.
type MoveError struct {
	Halfmove int
	Err      error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("halfmove %d: %v", e.Halfmove, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveErrorf(mv *Move, sentinel error, format string, a ...any) error {
	return &MoveError{
		Halfmove: mv.Halfmove,
		Err:      fmt.Errorf("%w: %s: %s", sentinel, mv, fmt.Sprintf(format, a...)),
	}
}
