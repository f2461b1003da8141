package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// AttackMoves is PseudoLegalMoves restricted to squares the piece attacks: pawns attack
// both forward diagonals (Capture when an enemy stands there, Menace otherwise) and never
// their push squares.
func AttackMoves(b board.Board, bounds board.Bounds, from position.Pos) PieceMoves {
	piece, ok := b[from]
	if !ok {
		return nil
	}
	if piece.Type != board.PiecePawn {
		return PseudoLegalMoves(b, bounds, from)
	}
	mvs := make(PieceMoves)
	for _, dCol := range []int{-1, 1} {
		to, ok := from.Rel(piece.Side.Forward(), dCol)
		if !ok || !bounds.Contains(to) {
			continue
		}
		t, _ := classify(b, piece, to)
		if t == board.MoveTypeDefault {
			t = board.MoveTypeMenace
		}
		mvs[to] = t
	}
	return mvs
}

// AttackMovesOfSide collects the attack moves of every piece of side s.
func AttackMovesOfSide(b board.Board, bounds board.Bounds, s board.Side) PlayerMoves {
	result := make(PlayerMoves)
	for from, piece := range b {
		if piece.Side != s {
			continue
		}
		if mvs := AttackMoves(b, bounds, from); len(mvs) > 0 {
			result[from] = mvs
		}
	}
	return result
}

// isAttacked reports whether any piece of side by attacks target on b.
func isAttacked(b board.Board, bounds board.Bounds, by board.Side, target position.Pos) bool {
	for from, piece := range b {
		if piece.Side != by {
			continue
		}
		if _, ok := AttackMoves(b, bounds, from)[target]; ok {
			return true
		}
	}
	return false
}
