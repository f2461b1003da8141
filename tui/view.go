package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	lightStyle    = lipgloss.NewStyle().Background(lipgloss.Color("180"))
	darkStyle     = lipgloss.NewStyle().Background(lipgloss.Color("94"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("33"))
	targetStyle   = lipgloss.NewStyle().Background(lipgloss.Color("71"))
	markedStyle   = lipgloss.NewStyle().Background(lipgloss.Color("167"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("librechess  to move:%s  status:%s  promotion:%s  mode:%s",
		m.g.Turn(), m.g.Status(), m.promotion.Name(), modeStr))

	boardView := RenderBoard(m.g, m.sel, m.cursor, m.orientation)

	logHeight := max(5, m.height-m.g.Bounds.Rows()-8)
	logStart := max(0, len(m.log.lines)-logHeight)
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(strings.Join(m.log.lines[logStart:], "\n"))

	inputLine := "press i to enter a move or command"
	if m.m == modeInput {
		inputLine = m.input.View()
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + boardView + "\n" + logBox + "\n" + inputBox + "\n"
}

// RenderBoard draws the board with the selection state: the selected piece, its targets,
// the marked empty squares and the cursor. Each square is two cells wide.
func RenderBoard(g *game.Game, sel *game.Selection, cursor position.Pos, orientation board.Side) string {
	bounds := g.Bounds
	targets := sel.Targets(g)

	var rows []position.Pos
	for row := int(bounds.MaxRow); row >= int(bounds.MinRow); row-- {
		rows = append(rows, position.MustNew(row, 0))
	}
	var cols []uint8
	for col := int(bounds.MinCol); col <= int(bounds.MaxCol); col++ {
		cols = append(cols, uint8(col))
	}
	if orientation == board.SideBlack {
		reverse(rows)
		reverse(cols)
	}

	labelWidth := len(position.NotationComponentRow(bounds.MaxRow))
	var b strings.Builder
	for _, r := range rows {
		_, _ = b.WriteString(labelStyle.Render(fmt.Sprintf("%*s ", labelWidth, position.NotationComponentRow(r.Row))))
		for _, col := range cols {
			p := position.Pos{Row: r.Row, Col: col}
			_, _ = b.WriteString(squareStyle(p, sel, targets, cursor).Render(squareText(g.Board, p)))
		}
		_, _ = b.WriteString("\n")
	}
	_, _ = b.WriteString(strings.Repeat(" ", labelWidth+1))
	for _, col := range cols {
		_, _ = b.WriteString(labelStyle.Render(fmt.Sprintf("%-2s", position.NotationComponentCol(col))))
	}
	_, _ = b.WriteString("\n")
	return b.String()
}

func squareText(b board.Board, p position.Pos) string {
	if piece, ok := b[p]; ok {
		return piece.SymbolUnicode() + " "
	}
	return "  "
}

func squareStyle(p position.Pos, sel *game.Selection, targets game.PieceMoves, cursor position.Pos) lipgloss.Style {
	if p == cursor {
		return cursorStyle
	}
	if sel.Piece != nil && *sel.Piece == p {
		return selectedStyle
	}
	if _, ok := targets[p]; ok {
		return targetStyle
	}
	if _, ok := sel.Squares[p]; ok {
		return markedStyle
	}
	if (p.Row+p.Col)%2 == 0 {
		return darkStyle
	}
	return lightStyle
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
