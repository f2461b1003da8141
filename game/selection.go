package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// Selection is the transient interaction state of a front-end: either one selected piece
// or a set of highlighted empty squares.
type Selection struct {
	Piece   *position.Pos
	Squares map[position.Pos]struct{}
}

func NewSelection() *Selection {
	return &Selection{Squares: make(map[position.Pos]struct{})}
}

func (s *Selection) Clear() {
	s.Piece = nil
	s.Squares = make(map[position.Pos]struct{})
}

// Targets returns the cached moves of the selected piece.
func (s *Selection) Targets(g *Game) PieceMoves {
	if s.Piece == nil {
		return nil
	}
	return g.Players[g.Turn()].Moves[*s.Piece]
}

// Toggle applies a click on p. When the click completes a move of the selected piece, the
// move is played on g and returned with true.
func (s *Selection) Toggle(g *Game, p position.Pos, opts ...MoveOption) (board.GameMove, bool, error) {
	if s.Squares == nil {
		s.Squares = make(map[position.Pos]struct{})
	}

	if s.Piece != nil {
		if _, ok := s.Targets(g)[p]; ok {
			mv, err := g.Move(*s.Piece, p, opts...)
			if err != nil {
				return board.GameMove{}, false, err
			}
			s.Clear()
			return mv, true, nil
		}
		if *s.Piece == p {
			s.Piece = nil
			return board.GameMove{}, false, nil
		}
	}

	if piece, ok := g.Board[p]; ok {
		if piece.Side == g.Turn() {
			s.Clear()
			s.Piece = &p
		} else {
			s.Clear()
		}
		return board.GameMove{}, false, nil
	}

	if _, ok := s.Squares[p]; ok {
		delete(s.Squares, p)
	} else {
		s.Squares[p] = struct{}{}
		s.Piece = nil
	}
	return board.GameMove{}, false, nil
}
