package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/sankit/analyzer"
	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/san"
)

// Result counts games by outcome, and the moves of every valid game by kind.
type Result struct {
	Games      uint64
	Valid      uint64
	Halfmoves  uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
	Stalemates uint64

	Invalid   uint64
	Illegal   uint64
	Ambiguous uint64
	AfterEnd  uint64
}

// ReadGames returns the non-empty lines of r that do not start with '#'.
func ReadGames(r io.Reader) ([]string, error) {
	var games []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		games = append(games, line)
	}
	return games, scanner.Err()
}

// Validate analyzes every game, one per line. A line is either plain movetext played
// from the initial position, or an (x)FEN record followed by ';' and the movetext.
// Per-game lines are sent to out when verbose, followed by a summary line.
func Validate(games []string, parallel, verbose bool, out chan string) Result {
	var r Result
	start := time.Now()
	if parallel {
		var wg sync.WaitGroup
		for i, game := range games {
			i, game := i, game
			wg.Add(1)
			go func() {
				defer wg.Done()
				validateGame(i, game, verbose, out, &r)
			}()
		}
		wg.Wait()
	} else {
		for i, game := range games {
			validateGame(i, game, verbose, out, &r)
		}
	}
	elapsed := time.Since(start).Seconds()

	var rate int
	if elapsed > 0 {
		rate = int(float64(r.Halfmoves) / elapsed)
	}
	out <- message.NewPrinter(language.English).
		Sprintf("games=%d valid=%d halfmoves=%d rate=%dhm/s cap=%d enp=%d cas=%d pro=%d chk=%d mate=%d stale=%d "+
			"invalid=%d illegal=%d ambiguous=%d ended=%d (%.3fs elapsed)",
			r.Games, r.Valid, r.Halfmoves, rate, r.Captures, r.EnPassants, r.Castles, r.Promotions, r.Checks,
			r.Checkmates, r.Stalemates, r.Invalid, r.Illegal, r.Ambiguous, r.AfterEnd, elapsed)
	return r
}

func validateGame(i int, game string, verbose bool, out chan string, r *Result) {
	atomic.AddUint64(&r.Games, 1)
	start, seq, err := prepare(game)
	if err == nil {
		_, err = analyzer.New().Analyze(start, seq)
	}

	switch {
	case err == nil:
		atomic.AddUint64(&r.Valid, 1)
	case errors.Is(err, analyzer.ErrIllegalMove):
		atomic.AddUint64(&r.Illegal, 1)
	case errors.Is(err, analyzer.ErrAmbiguousMove):
		atomic.AddUint64(&r.Ambiguous, 1)
	case errors.Is(err, analyzer.ErrMovesAfterGameEnd):
		atomic.AddUint64(&r.AfterEnd, 1)
	default:
		atomic.AddUint64(&r.Invalid, 1)
	}
	if err != nil {
		if verbose {
			out <- fmt.Sprintf("game %d: %v", i+1, err)
		}
		return
	}

	moves := seq.Moves()
	for j := range moves {
		mv := &moves[j]
		if mv.IsNull() {
			continue
		}
		atomic.AddUint64(&r.Halfmoves, 1)
		if mv.Captured != board.KindNone {
			atomic.AddUint64(&r.Captures, 1)
		}
		if mv.EnPassant {
			atomic.AddUint64(&r.EnPassants, 1)
		}
		if mv.Castle != board.CastleDirectionUnknown {
			atomic.AddUint64(&r.Castles, 1)
		}
		if mv.Promotion != board.KindNone {
			atomic.AddUint64(&r.Promotions, 1)
		}
		switch mv.StatusAfter {
		case analyzer.KingStatusCheck:
			atomic.AddUint64(&r.Checks, 1)
		case analyzer.KingStatusCheckmate:
			atomic.AddUint64(&r.Checkmates, 1)
		case analyzer.KingStatusStalemate:
			atomic.AddUint64(&r.Stalemates, 1)
		}
	}
	if verbose {
		out <- fmt.Sprintf("game %d: ok halfmoves=%d", i+1, len(moves))
	}
}

// prepare splits an optional (x)FEN prefix off the movetext of game.
func prepare(game string) (*analyzer.Position, *analyzer.Sequence, error) {
	var opts []analyzer.PositionOption
	movetext := game
	if i := strings.IndexByte(game, ';'); i >= 0 {
		opts = append(opts, analyzer.WithFEN(strings.TrimSpace(game[:i])))
		movetext = game[i+1:]
	}
	start, err := analyzer.NewPosition(opts...)
	if err != nil {
		return nil, nil, err
	}
	seq, err := san.Tokenize(movetext, san.WithFirstHalfmove(start.Halfmove()))
	if err != nil {
		return nil, nil, err
	}
	return start, seq, nil
}
