package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/sankit/board"
	"github.com/daystram/sankit/position"
)

const (
	defaultSquareSize = 48

	styleLight     = "fill:#eeeed2"
	styleDark      = "fill:#769656"
	styleHighlight = "fill:#f6f669"
	styleLabel     = "font-family:sans-serif;fill:#333333;text-anchor:middle"
)

type config struct {
	squareSize int
	flip       bool
	title      string
	highlight  board.Bitmap
}

type Option func(*config)

// WithSquareSize sets the edge length of one square in pixels.
func WithSquareSize(size int) Option {
	return func(cfg *config) {
		cfg.squareSize = size
	}
}

// WithFlip draws the board from black's side.
func WithFlip(flip bool) Option {
	return func(cfg *config) {
		cfg.flip = flip
	}
}

func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithHighlight colours the given squares, e.g. the source and destination of the last move.
func WithHighlight(squares ...position.Pos) Option {
	return func(cfg *config) {
		for _, pos := range squares {
			cfg.highlight.Set(pos)
		}
	}
}

// SVG writes a diagram of the a1..h8 snapshot string to w.
func SVG(w io.Writer, snapshot string, opts ...Option) error {
	off, err := board.ParseSnapshot(snapshot)
	if err != nil {
		return err
	}
	cfg := &config{squareSize: defaultSquareSize}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.squareSize <= 0 {
		return fmt.Errorf("invalid square size %d", cfg.squareSize)
	}

	s := cfg.squareSize
	margin := s / 2
	size := margin + int(board.Width)*s

	canvas := svg.New(w)
	canvas.Start(size, size+margin)
	if cfg.title != "" {
		canvas.Title(cfg.title)
	}
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		col, row := int(pos.X()), int(board.Height-1-pos.Y())
		if cfg.flip {
			col, row = int(board.Width-1-pos.X()), int(pos.Y())
		}
		x, y := margin+col*s, row*s

		style := styleLight
		switch {
		case cfg.highlight.Has(pos):
			style = styleHighlight
		case pos.X()%2^pos.Y()%2 == 0:
			style = styleDark
		}
		canvas.Rect(x, y, s, s, style)

		if p := off.At(pos); !p.IsNone() {
			canvas.Text(x+s/2, y+s*4/5, p.SymbolUnicode(false),
				fmt.Sprintf("font-size:%dpx;text-anchor:middle", s*4/5))
		}
		if col == 0 {
			canvas.Text(margin/2, y+s/2+margin/4, pos.Y().NotationComponentY(),
				fmt.Sprintf("%s;font-size:%dpx", styleLabel, margin/2))
		}
		if row == int(board.Height)-1 {
			canvas.Text(x+s/2, size+margin/2, pos.X().NotationComponentX(),
				fmt.Sprintf("%s;font-size:%dpx", styleLabel, margin/2))
		}
	}
	canvas.End()
	return nil
}
