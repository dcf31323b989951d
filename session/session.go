package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/daystram/sankit/analyzer"
	"github.com/daystram/sankit/bench"
	"github.com/daystram/sankit/position"
	"github.com/daystram/sankit/render"
	"github.com/daystram/sankit/san"
)

var (
	SessionName = "sankit"

	defaultOptions = options{
		debug:         false,
		parallelBench: true,
	}
)

type options struct {
	debug         bool
	parallelBench bool
}

// Interface runs the line protocol: one command per input line, responses on out.
type Interface struct {
	in  io.Reader
	out io.Writer

	position *analyzer.Position
	last     *analyzer.Move
	options  options
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

// Run serves commands until quit, end of input or cancellation of ctx.
func (i *Interface) Run(ctx context.Context) error {
	i.reset(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); args[0] {
		case "hello":
			i.commandHello(ctx)
		case "new":
			i.reset(ctx)
		case "isready":
			i.commandReady(ctx)
		case "setoption":
			i.commandSetOption(ctx, args[1:])
		case "position":
			i.commandPosition(ctx, args[1:])
		case "moves":
			i.commandMoves(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "snapshot":
			i.commandSnapshot(ctx)
		case "svg":
			i.commandSVG(ctx, args[1:])
		case "bench":
			i.commandBench(ctx, args[1:])
		case "quit":
			return nil
		default:
			i.errorf("unknown command %q", args[0])
		}
	}
	return scanner.Err()
}

func (i *Interface) commandHello(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", SessionName))
	i.println(fmt.Sprintf("option Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option Parallel type check default %v", defaultOptions.parallelBench))
	i.println("hellook")
}

func (i *Interface) commandReady(_ context.Context) {
	if i.position != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		i.errorf("usage: setoption name <name> value <value>")
		return
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		i.errorf("invalid value %q", args[3])
		return
	}
	switch name := strings.ToLower(args[1]); name {
	case "debug":
		i.options.debug = value
	case "parallel":
		i.options.parallelBench = value
	default:
		i.errorf("unknown option %q", args[1])
	}
}

// commandPosition accepts "startpos", "fen <fen>" or
// "placement <xfen> [castling] [en passant] [clock] [halfmove]".
func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		i.errorf("usage: position startpos | fen <fen> | placement <xfen> [castling] [ep] [clock] [halfmove]")
		return
	}

	var opts []analyzer.PositionOption
	switch args[0] {
	case "startpos":
	case "fen":
		opts = append(opts, analyzer.WithFEN(strings.Join(args[1:], " ")))
	case "placement":
		if len(args) < 2 {
			i.errorf("missing placement")
			return
		}
		opts = append(opts, analyzer.WithPlacement(args[1]))
		if len(args) > 2 {
			opts = append(opts, analyzer.WithCastleRights(args[2]))
		}
		if len(args) > 3 {
			opts = append(opts, analyzer.WithEnPassant(args[3]))
		}
		for j, f := range []func(int) analyzer.PositionOption{analyzer.WithHalfMoveClock, analyzer.WithHalfmove} {
			if len(args) <= 4+j {
				break
			}
			n, err := strconv.Atoi(args[4+j])
			if err != nil {
				i.errorf("invalid counter %q", args[4+j])
				return
			}
			opts = append(opts, f(n))
		}
	default:
		i.errorf("unknown position %q", args[0])
		return
	}

	pos, err := analyzer.NewPosition(opts...)
	if err != nil {
		i.errorf("%v", err)
		return
	}
	i.position, i.last = pos, nil
}

// commandMoves validates the moves from the current position and advances it when
// every move is accepted.
func (i *Interface) commandMoves(_ context.Context, args []string) {
	seq, err := san.Tokenize(strings.Join(args, " "), san.WithFirstHalfmove(i.position.Halfmove()))
	if err != nil {
		i.errorf("%v", err)
		return
	}

	opts := []analyzer.Option{}
	if i.options.debug {
		opts = append(opts, analyzer.WithLogger(func(a ...any) {
			i.println(append([]any{"info"}, a...)...)
		}))
	}
	end, err := analyzer.New(opts...).Analyze(i.position, seq)
	if err != nil {
		i.errorf("%v", err)
		return
	}
	for _, mv := range seq.Moves() {
		i.println(fmt.Sprintf("move %d %s", mv.Halfmove, mv.String()))
	}
	i.position, i.last = end, seq.At(seq.Len()-1)
	ep := "-"
	if end.EnPassant().Valid() {
		ep = end.EnPassant().Notation()
	}
	i.println(fmt.Sprintf("ok %s %s %d", end.CastleRights(), ep, end.HalfMoveClock()))
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.position.Draw(i.highlight()...))
}

func (i *Interface) commandSnapshot(_ context.Context) {
	i.println(fmt.Sprintf("snapshot %s", i.position.Snapshot()))
}

func (i *Interface) commandSVG(_ context.Context, args []string) {
	if len(args) != 1 {
		i.errorf("usage: svg <file>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		i.errorf("%v", err)
		return
	}
	defer f.Close()

	if err := render.SVG(f, i.position.Snapshot(), render.WithHighlight(i.highlight()...)); err != nil {
		i.errorf("%v", err)
		return
	}
	i.println(fmt.Sprintf("svg %s", args[0]))
}

func (i *Interface) commandBench(_ context.Context, args []string) {
	if len(args) != 1 {
		i.errorf("usage: bench <file>")
		return
	}
	f, err := os.Open(args[0])
	if err != nil {
		i.errorf("%v", err)
		return
	}
	games, err := bench.ReadGames(f)
	_ = f.Close()
	if err != nil {
		i.errorf("%v", err)
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		for s := range out {
			i.println(s)
		}
		close(done)
	}()
	_ = bench.Validate(games, i.options.parallelBench, i.options.debug, out)
	close(out)
	<-done
}

func (i *Interface) highlight() []position.Pos {
	if i.last == nil || i.last.IsNull() {
		return nil
	}
	return []position.Pos{i.last.From, i.last.To}
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
}

func (i *Interface) errorf(format string, a ...any) {
	i.println("error " + fmt.Sprintf(format, a...))
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
