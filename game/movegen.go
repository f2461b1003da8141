package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

type offset struct {
	dRow, dCol int
}

var (
	lateralDirections  = []offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirections      = append(append([]offset{}, lateralDirections...), diagonalDirections...)
	knightOffsets      = []offset{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
)

// PseudoLegalMoves generates the moves of the piece at from by its movement pattern alone,
// ignoring history and whether the mover's king is left attacked. Menace entries mark
// friendly pieces the piece protects. An empty square yields nil.
func PseudoLegalMoves(b board.Board, bounds board.Bounds, from position.Pos) PieceMoves {
	piece, ok := b[from]
	if !ok {
		return nil
	}
	switch piece.Type {
	case board.PiecePawn:
		return pawnMoves(b, bounds, from, piece)
	case board.PieceBishop:
		return slide(b, bounds, from, piece, diagonalDirections)
	case board.PieceKnight:
		return jump(b, bounds, from, piece, knightOffsets)
	case board.PieceRook:
		return slide(b, bounds, from, piece, lateralDirections)
	case board.PieceQueen:
		return slide(b, bounds, from, piece, allDirections)
	case board.PieceKing:
		return jump(b, bounds, from, piece, allDirections)
	default:
		return nil
	}
}

// classify returns the type of landing on to, and whether to is occupied.
func classify(b board.Board, piece board.Piece, to position.Pos) (board.MoveType, bool) {
	target, ok := b[to]
	switch {
	case !ok:
		return board.MoveTypeDefault, false
	case target.Side == piece.Side:
		return board.MoveTypeMenace, true
	default:
		return board.MoveTypeCapture, true
	}
}

func slide(b board.Board, bounds board.Bounds, from position.Pos, piece board.Piece, dirs []offset) PieceMoves {
	mvs := make(PieceMoves)
	for _, d := range dirs {
		for step := 1; ; step++ {
			to, ok := from.Rel(d.dRow*step, d.dCol*step)
			if !ok || !bounds.Contains(to) {
				break
			}
			t, blocked := classify(b, piece, to)
			mvs[to] = t
			if blocked {
				break
			}
		}
	}
	return mvs
}

func jump(b board.Board, bounds board.Bounds, from position.Pos, piece board.Piece, offsets []offset) PieceMoves {
	mvs := make(PieceMoves)
	for _, o := range offsets {
		to, ok := from.Rel(o.dRow, o.dCol)
		if !ok || !bounds.Contains(to) {
			continue
		}
		t, _ := classify(b, piece, to)
		mvs[to] = t
	}
	return mvs
}

func pawnMoves(b board.Board, bounds board.Bounds, from position.Pos, piece board.Piece) PieceMoves {
	mvs := make(PieceMoves)
	fwd := piece.Side.Forward()

	steps := 1
	if from.Row == bounds.PawnStartRow(piece.Side) {
		steps = 2
	}
	for step := 1; step <= steps; step++ {
		to, ok := from.Rel(fwd*step, 0)
		if !ok || !bounds.Contains(to) || !b.IsEmpty(to) {
			break
		}
		mvs[to] = pawnLanding(bounds, piece, to, board.MoveTypeDefault)
	}

	for _, dCol := range []int{-1, 1} {
		to, ok := from.Rel(fwd, dCol)
		if !ok || !bounds.Contains(to) {
			continue
		}
		if t, _ := classify(b, piece, to); t == board.MoveTypeCapture {
			mvs[to] = pawnLanding(bounds, piece, to, board.MoveTypeCapture)
		}
	}
	return mvs
}

func pawnLanding(bounds board.Bounds, piece board.Piece, to position.Pos, t board.MoveType) board.MoveType {
	if to.Row == bounds.PromotionRow(piece.Side) {
		return board.MoveTypePromotionToQueen
	}
	return t
}
