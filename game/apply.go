package game

import (
	"fmt"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

type moveConfig struct {
	promotion board.PieceType
}

type MoveOption func(*moveConfig)

// WithPromotion selects the piece a promoting pawn becomes. It has no effect on other moves.
func WithPromotion(p board.PieceType) MoveOption {
	return func(cfg *moveConfig) {
		cfg.promotion = p
	}
}

// Move plays the cached legal move from -> to for the side to move and returns it as
// recorded in history. A rejected request leaves the game untouched.
func (g *Game) Move(from, to position.Pos, opts ...MoveOption) (board.GameMove, error) {
	cfg := &moveConfig{
		promotion: board.PieceQueen,
	}
	for _, f := range opts {
		f(cfg)
	}

	mv, err := g.resolve(from, to, cfg)
	if err != nil {
		g.logger("rejected", from, to, err)
		return board.GameMove{}, err
	}

	turn := g.Turn()
	captured, capturedPos, ok := play(g.Board, g.Bounds, mv)
	if ok {
		p := g.Players[turn]
		p.Captures = append(p.Captures, Capture{Piece: captured, At: len(g.History)})
		delete(g.Players[turn.Opposite()].Moves, capturedPos)
	}
	g.History = append(g.History, mv)
	g.refresh()
	return mv, nil
}

func (g *Game) resolve(from, to position.Pos, cfg *moveConfig) (board.GameMove, error) {
	piece, ok := g.Board[from]
	if !ok {
		return board.GameMove{}, fmt.Errorf("%w: %s", ErrNoSuchPiece, from)
	}
	turn := g.Turn()
	if piece.Side != turn {
		return board.GameMove{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, turn)
	}
	t, ok := g.Players[turn].Moves[from][to]
	if !ok {
		return board.GameMove{}, fmt.Errorf("%w: %s%s", ErrIllegalTarget, from, to)
	}
	if t.IsPromotion() {
		if t, ok = board.NewPromotionMoveType(cfg.promotion); !ok {
			return board.GameMove{}, fmt.Errorf("%w: %s", ErrInvalidPromotion, cfg.promotion)
		}
	}
	return board.NewGameMove(piece, from, to, t), nil
}
