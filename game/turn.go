package game

import "github.com/joao-arthur/libre-chess-sub000/board"

// Turn returns the side to move: White after an even number of moves, Black otherwise.
func Turn(h board.History) board.Side {
	if len(h)%2 == 0 {
		return board.SideWhite
	}
	return board.SideBlack
}
