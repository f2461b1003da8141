package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// play applies the board effects of mv to b, including the pawn removed by en passant and
// the rook moved by castling. It returns the captured piece and the square it stood on.
func play(b board.Board, bounds board.Bounds, mv board.GameMove) (board.Piece, position.Pos, bool) {
	from, to := mv.Mov.From, mv.Mov.To
	switch {
	case mv.Type == board.MoveTypeEnPassant:
		piece, _ := b.Remove(from)
		b.Set(to, piece)
		behind := position.Pos{Row: from.Row, Col: to.Col}
		captured, ok := b.Remove(behind)
		return captured, behind, ok

	case mv.Type.IsCastling():
		kingDest, rookDest, ok := CastlingDestinations(bounds, mv.Type, from.Row)
		if !ok {
			return board.Piece{}, position.Pos{}, false
		}
		king, _ := b.Remove(from)
		rook, _ := b.Remove(to)
		b.Set(kingDest, king)
		b.Set(rookDest, rook)
		return board.Piece{}, position.Pos{}, false

	case mv.Type.IsPromotion():
		pawn, _ := b.Remove(from)
		captured, ok := b.Set(to, board.Piece{Type: mv.Type.PromotionPiece(), Side: pawn.Side})
		return captured, to, ok

	default:
		piece, _ := b.Remove(from)
		captured, ok := b.Set(to, piece)
		return captured, to, ok
	}
}
