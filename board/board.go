package board

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

// Board is a sparse mapping of occupied squares. An absent key is an empty square.
type Board map[position.Pos]Piece

func NewBoard() Board {
	return make(Board)
}

func (b Board) Get(p position.Pos) (Piece, bool) {
	piece, ok := b[p]
	return piece, ok
}

// Set places piece at p and returns whatever it displaced.
func (b Board) Set(p position.Pos, piece Piece) (Piece, bool) {
	prev, ok := b[p]
	b[p] = piece
	return prev, ok
}

func (b Board) Remove(p position.Pos) (Piece, bool) {
	prev, ok := b[p]
	delete(b, p)
	return prev, ok
}

func (b Board) IsEmpty(p position.Pos) bool {
	_, ok := b[p]
	return !ok
}

func (b Board) Clone() Board {
	bb := make(Board, len(b))
	for p, piece := range b {
		bb[p] = piece
	}
	return bb
}

// King returns the square of the first king of side s.
func (b Board) King(s Side) (position.Pos, bool) {
	for _, p := range b.Positions() {
		if piece := b[p]; piece.Type == PieceKing && piece.Side == s {
			return p, true
		}
	}
	return position.Pos{}, false
}

// Positions returns the occupied squares in row-major order.
func (b Board) Positions() []position.Pos {
	ps := maps.Keys(b)
	sort.Slice(ps, func(i, j int) bool { return position.Less(ps[i], ps[j]) })
	return ps
}

// Mode is the starting configuration of a match.
type Mode struct {
	Bounds       Bounds
	InitialBoard Board
}

var (
	StandardBounds = Bounds{MinRow: 0, MinCol: 0, MaxRow: 7, MaxCol: 7}

	standardRows = []string{
		"♜♞♝♛♚♝♞♜",
		"♟♟♟♟♟♟♟♟",
		"        ",
		"        ",
		"        ",
		"        ",
		"♙♙♙♙♙♙♙♙",
		"♖♘♗♕♔♗♘♖",
	}
)

func StandardChess() Mode {
	return Mode{
		Bounds:       StandardBounds,
		InitialBoard: MustUnmarshalRows(StandardBounds, standardRows...),
	}
}
