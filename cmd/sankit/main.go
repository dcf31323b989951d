package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"

	"github.com/daystram/sankit/analyzer"
	"github.com/daystram/sankit/session"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	verbose = flag.Bool("v", false, "log every analyzed halfmove")

	placement = flag.String("placement", "", "xFEN piece placement of the starting position")
	castling  = flag.String("castling", "", "castling rights of the starting position, e.g. HAha")
	enPassant = flag.String("ep", "", "en passant target square of the starting position")
	clock     = flag.Int("clock", 0, "half move clock of the starting position")
	halfmove  = flag.Int("halfmove", 0, "index of the first halfmove, odd when black moves first")
	fen       = flag.String("fen", "", "full (x)FEN record of the starting position, overrides the other position flags")

	drawBoard = flag.Bool("draw", false, "draw the final board")
	svgFile   = flag.String("svg", "", "write a diagram of the final board to this file")

	benchFile     = flag.String("bench", "", "validate every game of this file, one per line")
	benchParallel = flag.Bool("bench.parallel", true, "validate games concurrently in bench mode")

	sessionRun = flag.Bool("session", false, "run the line protocol on stdin and stdout")
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	if *sessionRun {
		return runSession()
	}
	if *benchFile != "" {
		return runBench(*benchFile, *benchParallel, *verbose)
	}
	if len(args) == 0 {
		return errors.New("no moves given")
	}

	start, err := analyzer.NewPosition(positionOptions()...)
	if err != nil {
		return err
	}
	return validate(start, strings.Join(args, " "))
}

func positionOptions() []analyzer.PositionOption {
	if *fen != "" {
		return []analyzer.PositionOption{analyzer.WithFEN(*fen)}
	}
	opts := []analyzer.PositionOption{
		analyzer.WithHalfMoveClock(*clock),
		analyzer.WithHalfmove(*halfmove),
	}
	if *placement != "" {
		opts = append(opts, analyzer.WithPlacement(*placement))
	}
	if *castling != "" {
		opts = append(opts, analyzer.WithCastleRights(*castling))
	}
	if *enPassant != "" {
		opts = append(opts, analyzer.WithEnPassant(*enPassant))
	}
	return opts
}

func runSession() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return session.NewInterface(stdin, stdout).Run(ctx)
}
