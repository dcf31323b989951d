package san

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"

	"github.com/daystram/sankit/analyzer"
	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

var ErrInvalidSAN = errors.New("invalid san")

var (
	resultTokens   = []string{"1-0", "0-1", "1/2-1/2", "*"}
	nullTokens     = []string{".", "--"}
	kingSideTokens = []string{"OO", "O-O", "0-0"}
	queenTokens    = []string{"OOO", "O-O-O", "0-0-0"}
)

type config struct {
	firstHalfmove int
}

type Option func(*config)

// WithFirstHalfmove sets the index of the first token; even indexes are played by white.
func WithFirstHalfmove(halfmove int) Option {
	return func(cfg *config) {
		cfg.firstHalfmove = halfmove
	}
}

// Tokenize reads whitespace separated short SAN moves into a sequence of partially
// filled records. Move numbers and game results are skipped.
func Tokenize(input string, opts ...Option) (*analyzer.Sequence, error) {
	cfg := &config{}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.firstHalfmove < 0 {
		return nil, fmt.Errorf("%w: negative first halfmove", ErrInvalidSAN)
	}

	seq := analyzer.NewSequence()
	halfmove := cfg.firstHalfmove
	for i := 0; i < len(input); {
		if isSpace(input[i]) {
			i++
			continue
		}
		start := i
		for i < len(input) && !isSpace(input[i]) {
			i++
		}
		tok := skipMoveNumber(input[start:i])
		if tok == "" || slices.Contains(resultTokens, tok) {
			continue
		}
		mv, err := lex(tok, halfmove)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at offset %d: %v", ErrInvalidSAN, input[start:i], start, err)
		}
		seq.Append(mv)
		halfmove++
	}
	return seq, nil
}

func isSpace(c byte) bool {
	return c < unicode.MaxASCII && unicode.IsSpace(rune(c))
}

// skipMoveNumber drops a "12." or "12..." prefix.
func skipMoveNumber(tok string) string {
	digits := strings.TrimLeftFunc(tok, unicode.IsDigit)
	if len(digits) == len(tok) || !strings.HasPrefix(digits, ".") {
		return tok
	}
	return strings.TrimLeft(digits, ".")
}

// stripDecorations removes capture, check, promotion and annotation marks.
func stripDecorations(tok string) string {
	tok = strings.TrimSuffix(tok, "e.p.")
	return strings.Map(func(r rune) rune {
		switch r {
		case 'x', ':', '+', '#', '=', '!', '?':
			return -1
		}
		return r
	}, tok)
}

type state uint8

const (
	stateStart state = iota
	statePiece
	stateFile
	stateRank
	stateSquare
	stateDestFile
	stateDest
	statePromotion
)

// lex runs the move state machine over a single token.
func lex(tok string, halfmove int) (analyzer.Move, error) {
	side := board.Side(halfmove & 1)
	mv := analyzer.NewMove(halfmove)

	if slices.Contains(nullTokens, tok) {
		return mv, nil
	}
	bare := stripDecorations(tok)
	switch {
	case slices.Contains(kingSideTokens, bare):
		mv.Piece, mv.Castle = board.NewPiece(side, board.KindKing), board.NewCastleDirection(side, true)
		return mv, nil
	case slices.Contains(queenTokens, bare):
		mv.Piece, mv.Castle = board.NewPiece(side, board.KindKing), board.NewCastleDirection(side, false)
		return mv, nil
	}

	kind := board.KindPawn
	var (
		st           = stateStart
		file, rank   = position.PosNone, position.PosNone
		hintX, hintY = position.PosNone, position.PosNone
		promotion    = board.KindNone
	)
	for i := 0; i < len(bare); i++ {
		c := bare[i]
		x, errX := position.NewFileFromNotation(c)
		y, errY := position.NewRankFromNotation(c)
		isFile, isRank := errX == nil, errY == nil
		isPiece := c >= 'A' && c <= 'Z' && board.NewKindFromSymbol(c) != board.KindNone && c != 'P'

		switch {
		case st == stateStart && isPiece:
			kind, st = board.NewKindFromSymbol(c), statePiece
		case st == stateStart && isFile, st == statePiece && isFile:
			file, st = x, stateFile
		case st == statePiece && isRank:
			hintY, st = y, stateRank
		case st == stateFile && isRank:
			rank, st = y, stateSquare
		case st == stateFile && isFile, st == stateRank && isFile:
			if st == stateFile {
				hintX = file
			}
			file, st = x, stateDestFile
		case st == stateSquare && isFile:
			hintX, hintY = file, rank
			file, rank, st = x, position.PosNone, stateDestFile
		case st == stateDestFile && isRank:
			rank, st = y, stateDest
		case (st == stateSquare || st == stateDest) && isPiece && kind == board.KindPawn:
			promotion, st = board.NewKindFromSymbol(c), statePromotion
		default:
			return mv, fmt.Errorf("unexpected '%c'", c)
		}
	}
	if st != stateSquare && st != stateDest && st != statePromotion {
		return mv, errors.New("incomplete move")
	}

	mv.Piece = board.NewPiece(side, kind)
	mv.To = position.NewPos(file, rank)
	mv.Promotion = promotion
	switch {
	case kind == board.KindPawn && promotion != board.KindNone && (rank == position.Rank8 || rank == position.Rank1):
		if hintX == position.PosNone {
			hintX = file
		}
		mv.Hint, mv.FromHint = analyzer.HintSquare, position.NewPos(hintX, rank-position.Pos(side.Forward()))
	case kind == board.KindPawn && hintY != position.PosNone:
		mv.Hint, mv.FromHint = analyzer.HintSquare, position.NewPos(hintX, hintY)
	case kind == board.KindPawn && hintX != position.PosNone:
		mv.Hint, mv.FromHint = analyzer.HintFile, position.NewPos(hintX, position.Rank1)
	case kind == board.KindPawn:
		mv.Hint, mv.FromHint = analyzer.HintFile, position.NewPos(file, position.Rank1)
	case hintX != position.PosNone && hintY != position.PosNone:
		mv.Hint, mv.FromHint = analyzer.HintSquare, position.NewPos(hintX, hintY)
	case hintX != position.PosNone:
		mv.Hint, mv.FromHint = analyzer.HintFile, position.NewPos(hintX, position.Rank1)
	case hintY != position.PosNone:
		mv.Hint, mv.FromHint = analyzer.HintRank, position.NewPos(position.FileA, hintY)
	}
	return mv, nil
}
