package game

import (
	"fmt"
	"strings"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// ParseMove reads a move written as two squares with an optional promotion letter,
// e.g. "E2E4", "e7e8q". A missing promotion letter yields board.PieceUnknown.
func ParseMove(s string) (from, to position.Pos, promotion board.PieceType, err error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	var parts []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (isDigit(s[i-1]) && !isDigit(s[i])) {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	if len(parts) < 2 || len(parts) > 3 {
		return from, to, board.PieceUnknown, fmt.Errorf("%w: %q", position.ErrInvalidNotation, s)
	}
	if from, err = position.NewPosFromNotation(parts[0]); err != nil {
		return from, to, board.PieceUnknown, fmt.Errorf("%w: %q", err, s)
	}
	if to, err = position.NewPosFromNotation(parts[1]); err != nil {
		return from, to, board.PieceUnknown, fmt.Errorf("%w: %q", err, s)
	}
	if len(parts) == 2 {
		return from, to, board.PieceUnknown, nil
	}
	switch parts[2] {
	case "Q":
		promotion = board.PieceQueen
	case "R":
		promotion = board.PieceRook
	case "B":
		promotion = board.PieceBishop
	case "N":
		promotion = board.PieceKnight
	default:
		return from, to, board.PieceUnknown, fmt.Errorf("%w: %q", position.ErrInvalidNotation, s)
	}
	return from, to, promotion, nil
}

// MoveNotation plays a move written as accepted by ParseMove.
func (g *Game) MoveNotation(s string) (board.GameMove, error) {
	from, to, promotion, err := ParseMove(s)
	if err != nil {
		return board.GameMove{}, err
	}
	var opts []MoveOption
	if promotion != board.PieceUnknown {
		opts = append(opts, WithPromotion(promotion))
	}
	return g.Move(from, to, opts...)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
