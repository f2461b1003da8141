package game

import (
	"fmt"
	"strings"

	"github.com/joao-arthur/libre-chess-sub000/board"
)

// FEN returns the current position as a FEN record. Castling availability is derived from
// history, and the en passant square is set after any pawn double step.
func (g *Game) FEN() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(board.MarshalFEN(g.Bounds, g.Board))

	if g.Turn() == board.SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	var rights string
	for _, s := range board.Sides {
		short, long := castlingRights(g.Board, g.History, s)
		if short {
			rights += board.Piece{Type: board.PieceKing, Side: s}.SymbolFEN()
		}
		if long {
			rights += board.Piece{Type: board.PieceQueen, Side: s}.SymbolFEN()
		}
	}
	if rights == "" {
		rights = "-"
	}
	_, _ = builder.WriteString(rights)
	_, _ = builder.WriteRune(' ')

	enPassant := "-"
	if last, ok := g.History.Last(); ok && last.Mov.Piece.Type == board.PiecePawn {
		if dRow := int(last.Mov.To.Row) - int(last.Mov.From.Row); dRow == 2 || dRow == -2 {
			if passed, ok := last.Mov.From.Rel(dRow/2, 0); ok {
				enPassant = strings.ToLower(passed.Notation())
			}
		}
	}
	_, _ = builder.WriteString(enPassant)

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", halfMoveClock(g.History), len(g.History)/2+1))
	return builder.String()
}

// halfMoveClock counts the moves since the last capture or pawn move.
func halfMoveClock(h board.History) int {
	var n int
	for i := len(h) - 1; i >= 0; i-- {
		mv := h[i]
		if mv.Mov.Piece.Type == board.PiecePawn || mv.Type == board.MoveTypeCapture || mv.Type == board.MoveTypeEnPassant {
			break
		}
		n++
	}
	return n
}
