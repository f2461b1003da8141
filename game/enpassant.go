package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// EnPassantMoves returns the en passant captures of the pawn at from. Only the most recent
// history entry is consulted: it must be an enemy pawn double-step landing on a column
// adjacent to from, on from's row.
func EnPassantMoves(b board.Board, bounds board.Bounds, h board.History, from position.Pos) []board.GameMove {
	piece, ok := b[from]
	if !ok || piece.Type != board.PiecePawn || from.Row != bounds.EnPassantRow(piece.Side) {
		return nil
	}
	last, ok := h.Last()
	if !ok {
		return nil
	}
	enemy := last.Mov
	if enemy.Piece.Type != board.PiecePawn || enemy.Piece.Side == piece.Side {
		return nil
	}
	dRow, dCol := position.Distance(enemy.From, enemy.To)
	if position.Abs(dRow) != 2 || dCol != 0 || enemy.To.Row != from.Row {
		return nil
	}
	if position.Abs(int(enemy.To.Col)-int(from.Col)) != 1 {
		return nil
	}
	// the square the enemy pawn passed through
	to, ok := enemy.To.Rel(piece.Side.Forward(), 0)
	if !ok || !bounds.Contains(to) || !b.IsEmpty(to) {
		return nil
	}
	if target, ok := b[enemy.To]; !ok || target != enemy.Piece {
		return nil
	}
	return []board.GameMove{board.NewGameMove(piece, from, to, board.MoveTypeEnPassant)}
}
