package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/sankit/position"
)

var (
	drawLabel     = color.New(color.Bold)
	drawDark      = color.New(color.FgBlack, color.BgGreen)
	drawLight     = color.New(color.FgBlack, color.BgHiWhite)
	drawHighlight = color.New(color.FgBlack, color.BgHiYellow)
)

// Draw renders the board rank 8 first, with the given squares highlighted.
func (o Offset) Draw(highlight ...position.Pos) string {
	var marked Bitmap
	for _, pos := range highlight {
		marked.Set(pos)
	}
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			pos := y*Width + x
			sym := o[pos].SymbolUnicode(false)
			if o[pos].IsNone() {
				sym = " "
			}
			c := drawLight
			switch {
			case marked.Has(pos):
				c = drawHighlight
			case x%2^y%2 == 0:
				c = drawDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawLabel.Sprint(fmt.Sprintf(" %s ", x.NotationComponentX())))
	}
	return builder.String()
}
