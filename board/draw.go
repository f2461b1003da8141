package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

var (
	colorLight  = color.New(color.FgBlack, color.BgHiWhite)
	colorDark   = color.New(color.FgBlack, color.BgGreen)
	colorMarked = color.New(color.FgBlack, color.BgHiYellow)
	colorLabel  = color.New(color.Bold)
)

// Draw renders b for a terminal. Squares in marks show their annotation glyph on a
// highlighted background when empty, and keep their piece otherwise.
func Draw(bounds Bounds, b Board, marks map[position.Pos]MoveType) string {
	builder := strings.Builder{}
	bounds.Each(func(p position.Pos) {
		if p.Col == bounds.MinCol {
			_, _ = builder.WriteString(colorLabel.Sprintf("%4s ", position.NotationComponentRow(p.Row)))
		}
		sym := " "
		if piece, ok := b[p]; ok {
			sym = piece.SymbolUnicode()
		}
		c := colorLight
		if (p.Row+p.Col)%2 == 0 {
			c = colorDark
		}
		if t, ok := marks[p]; ok {
			c = colorMarked
			if sym == " " {
				sym = string(t.Glyph())
			}
		}
		_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		if p.Col == bounds.MaxCol {
			_, _ = builder.WriteRune('\n')
		}
	})
	_, _ = builder.WriteString("     ")
	for col := int(bounds.MinCol); col <= int(bounds.MaxCol); col++ {
		_, _ = builder.WriteString(colorLabel.Sprint(fmt.Sprintf("%-3s", " "+position.NotationComponentCol(uint8(col)))))
	}
	return builder.String()
}
