package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
)

// IsInCheck reports whether the king of the side to move is a target in any opposing
// player's cached moves. The opposing cache must hold attack moves computed for b.
func IsInCheck(b board.Board, players Players, h board.History) bool {
	turn := Turn(h)
	kingPos, ok := b.King(turn)
	if !ok {
		return false
	}
	for s, p := range players {
		if s == turn {
			continue
		}
		for _, mvs := range p.Moves {
			if _, ok := mvs[kingPos]; ok {
				return true
			}
		}
	}
	return false
}

// GivesCheck reports whether playing mv on b leaves the opposing king attacked.
func GivesCheck(b board.Board, bounds board.Bounds, mv board.GameMove) bool {
	side := mv.Mov.Piece.Side
	bb := b.Clone()
	play(bb, bounds, mv)
	kingPos, ok := bb.King(side.Opposite())
	if !ok {
		return false
	}
	return isAttacked(bb, bounds, side, kingPos)
}
