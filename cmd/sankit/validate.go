package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/sankit/analyzer"
	"github.com/daystram/sankit/bench"
	"github.com/daystram/sankit/render"
	"github.com/daystram/sankit/san"
)

func validate(start *analyzer.Position, moves string) error {
	seq, err := san.Tokenize(moves, san.WithFirstHalfmove(start.Halfmove()))
	if err != nil {
		return err
	}

	var opts []analyzer.Option
	if *verbose {
		opts = append(opts, analyzer.WithLogger(log.Println))
	}
	begin := time.Now()
	end, err := analyzer.New(opts...).Analyze(start, seq)
	elapsed := time.Since(begin)

	analyzed := seq.Len()
	var moveErr *analyzer.MoveError
	switch {
	case errors.As(err, &moveErr):
		analyzed = moveErr.Halfmove - seq.At(0).Halfmove
	case err != nil:
		analyzed = 0
	}
	for j := 0; j < analyzed; j++ {
		printMove(seq.At(j))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, message.NewPrinter(language.English).
		Sprintf("%d halfmoves valid (%.3fms elapsed)", seq.Len(), float64(elapsed.Microseconds())/1000))
	fmt.Fprintf(stdout, "placement %s\n", end.Placement())
	fmt.Fprintf(stdout, "snapshot %s\n", end.Snapshot())

	last := seq.At(seq.Len() - 1)
	if *drawBoard {
		if last.IsNull() {
			fmt.Fprintln(stdout, end.Draw())
		} else {
			fmt.Fprintln(stdout, end.Draw(last.From, last.To))
		}
	}
	if *svgFile != "" {
		return writeSVG(*svgFile, end.Snapshot(), last)
	}
	return nil
}

func printMove(mv *analyzer.Move) {
	if mv.IsNull() {
		fmt.Fprintf(stdout, "%4d %-5s --\n", mv.Halfmove, mv.Side())
		return
	}
	ep := "-"
	if mv.EnPassantTarget.Valid() {
		ep = mv.EnPassantTarget.Notation()
	}
	fmt.Fprintf(stdout, "%4d %-5s %-10s cap=%-6s pro=%-6s ep=%-5v status=%-9s rights=%s target=%s clock=%d\n",
		mv.Halfmove, mv.Side(), mv.String(), mv.Captured, mv.Promotion, mv.EnPassant,
		mv.StatusAfter, mv.CastleRights, ep, mv.HalfMoveClock)
}

func writeSVG(path, snapshot string, last *analyzer.Move) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var opts []render.Option
	if !last.IsNull() {
		opts = append(opts, render.WithHighlight(last.From, last.To))
	}
	if err := render.SVG(f, snapshot, opts...); err != nil {
		return err
	}
	return f.Close()
}

func runBench(path string, parallel, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	games, err := bench.ReadGames(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		for s := range out {
			fmt.Fprintln(stdout, s)
		}
		close(done)
	}()
	res := bench.Validate(games, parallel, verbose, out)
	close(out)
	<-done

	if res.Valid != res.Games {
		return fmt.Errorf("%d of %d games invalid", res.Games-res.Valid, res.Games)
	}
	return nil
}
