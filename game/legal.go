package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// LegalMoves returns every move side s may play. Candidates are the pseudo-legal moves of
// each piece without Menace entries, plus en passant and castling. Each candidate is played
// on a copy of b and dropped when it leaves the king of s attacked.
func LegalMoves(b board.Board, bounds board.Bounds, h board.History, players Players, s board.Side) PlayerMoves {
	result := make(PlayerMoves)
	for from, piece := range b {
		if piece.Side != s {
			continue
		}
		mvs := make(PieceMoves)
		for _, mv := range candidateMoves(b, bounds, h, players, from) {
			if isKingSafeAfter(b, bounds, mv) {
				mvs[mv.Mov.To] = mv.Type
			}
		}
		if len(mvs) > 0 {
			result[from] = mvs
		}
	}
	return result
}

func candidateMoves(b board.Board, bounds board.Bounds, h board.History, players Players, from position.Pos) []board.GameMove {
	piece := b[from]
	var mvs []board.GameMove
	for to, t := range PseudoLegalMoves(b, bounds, from) {
		if t == board.MoveTypeMenace {
			continue
		}
		mvs = append(mvs, board.NewGameMove(piece, from, to, t))
	}
	switch piece.Type {
	case board.PiecePawn:
		mvs = append(mvs, EnPassantMoves(b, bounds, h, from)...)
	case board.PieceKing:
		mvs = append(mvs, CastlingMoves(b, bounds, h, players, from)...)
	}
	return mvs
}

func isKingSafeAfter(b board.Board, bounds board.Bounds, mv board.GameMove) bool {
	side := mv.Mov.Piece.Side
	bb := b.Clone()
	play(bb, bounds, mv)
	kingPos, ok := bb.King(side)
	if !ok {
		return true
	}
	return !isAttacked(bb, bounds, side.Opposite(), kingPos)
}
