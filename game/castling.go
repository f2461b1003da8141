package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// CastlingDestinations returns where the king and rook land for a castling of type t on row.
// Columns are fixed relative to the bounds: the king lands next to the edge square on the
// short side and two squares in from the edge on the long side, with the rook beside it.
func CastlingDestinations(bounds board.Bounds, t board.MoveType, row uint8) (king, rook position.Pos, ok bool) {
	switch t {
	case board.MoveTypeShortCastling:
		if bounds.Cols() < 3 {
			return position.Pos{}, position.Pos{}, false
		}
		return position.Pos{Row: row, Col: bounds.MaxCol - 1}, position.Pos{Row: row, Col: bounds.MaxCol - 2}, true
	case board.MoveTypeLongCastling:
		if bounds.Cols() < 4 {
			return position.Pos{}, position.Pos{}, false
		}
		return position.Pos{Row: row, Col: bounds.MinCol + 2}, position.Pos{Row: row, Col: bounds.MinCol + 3}, true
	default:
		return position.Pos{}, position.Pos{}, false
	}
}

// CastlingMoves returns the castling moves of the king at kingPos, one per eligible rook.
// The move's target is the rook's square. Safety of the king's path is judged against the
// opponent's cached moves in players.
func CastlingMoves(b board.Board, bounds board.Bounds, h board.History, players Players, kingPos position.Pos) []board.GameMove {
	king, ok := b[kingPos]
	if !ok || king.Type != board.PieceKing {
		return nil
	}
	if hasMoved(h, king, kingPos) {
		return nil
	}

	var attacked map[position.Pos]struct{}
	if opponent, ok := players[king.Side.Opposite()]; ok {
		attacked = opponent.Moves.Targets()
	}

	var mvs []board.GameMove
	for _, rookPos := range b.Positions() {
		rook := b[rookPos]
		if rook.Type != board.PieceRook || rook.Side != king.Side || rookPos.Row != kingPos.Row || rookPos == kingPos {
			continue
		}
		t := board.MoveTypeLongCastling
		if rookPos.Col > kingPos.Col {
			t = board.MoveTypeShortCastling
		}
		if canCastle(b, bounds, h, attacked, kingPos, rookPos, t) {
			mvs = append(mvs, board.NewGameMove(king, kingPos, rookPos, t))
		}
	}
	return mvs
}

func canCastle(b board.Board, bounds board.Bounds, h board.History, attacked map[position.Pos]struct{}, kingPos, rookPos position.Pos, t board.MoveType) bool {
	if hasMoved(h, b[rookPos], rookPos) {
		return false
	}

	lo, hi := minCol(kingPos, rookPos)+1, maxCol(kingPos, rookPos)
	for col := lo; col < hi; col++ {
		if !b.IsEmpty(position.Pos{Row: kingPos.Row, Col: col}) {
			return false
		}
	}

	kingDest, rookDest, ok := CastlingDestinations(bounds, t, kingPos.Row)
	if !ok {
		return false
	}
	if !pathClear(b, kingPos, kingDest, kingPos, rookPos) || !pathClear(b, rookPos, rookDest, kingPos, rookPos) {
		return false
	}

	for col := int(minCol(kingPos, kingDest)); col <= int(maxCol(kingPos, kingDest)); col++ {
		if _, ok := attacked[position.Pos{Row: kingPos.Row, Col: uint8(col)}]; ok {
			return false
		}
	}
	return true
}

// pathClear reports whether every square between from and dest on their row, both ends
// included, is empty or holds one of the castling pieces.
func pathClear(b board.Board, from, dest, kingPos, rookPos position.Pos) bool {
	for col := int(minCol(from, dest)); col <= int(maxCol(from, dest)); col++ {
		p := position.Pos{Row: from.Row, Col: uint8(col)}
		if p != kingPos && p != rookPos && !b.IsEmpty(p) {
			return false
		}
	}
	return true
}

// hasMoved reports whether piece, now at p, appears as a moved piece in h. Kings are
// unique per side so any move of the king counts; other pieces count when they left or
// reached p.
func hasMoved(h board.History, piece board.Piece, p position.Pos) bool {
	for _, mv := range h {
		if mv.Mov.Piece != piece {
			continue
		}
		if piece.Type == board.PieceKing || mv.Mov.From == p || mv.Mov.To == p {
			return true
		}
	}
	return false
}

// castlingRights reports, per castling type, whether the king of s and some rook on that
// side of it have never moved.
func castlingRights(b board.Board, h board.History, s board.Side) (short, long bool) {
	kingPos, ok := b.King(s)
	if !ok || hasMoved(h, b[kingPos], kingPos) {
		return false, false
	}
	for _, p := range b.Positions() {
		piece := b[p]
		if piece.Type != board.PieceRook || piece.Side != s || p.Row != kingPos.Row || hasMoved(h, piece, p) {
			continue
		}
		if p.Col > kingPos.Col {
			short = true
		} else {
			long = true
		}
	}
	return short, long
}

func minCol(a, b position.Pos) uint8 {
	if a.Col < b.Col {
		return a.Col
	}
	return b.Col
}

func maxCol(a, b position.Pos) uint8 {
	if a.Col > b.Col {
		return a.Col
	}
	return b.Col
}
