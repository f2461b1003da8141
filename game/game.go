package game

import (
	"fmt"

	"github.com/joao-arthur/libre-chess-sub000/board"
)

func DefaultLogger(a ...any) {}

type gameConfig struct {
	history board.History
	logger  func(...any)
}

type GameOption func(*gameConfig)

// WithHistory replays h move by move on top of the mode's initial board.
func WithHistory(h board.History) GameOption {
	return func(cfg *gameConfig) {
		cfg.history = h
	}
}

func WithLogger(logger func(...any)) GameOption {
	return func(cfg *gameConfig) {
		cfg.logger = logger
	}
}

// Game is a match in progress. It is owned by a single caller and changes only through Move.
type Game struct {
	Board   board.Board
	Bounds  board.Bounds
	Players Players
	History board.History

	logger func(...any)
}

func NewGame(mode board.Mode, opts ...GameOption) (*Game, error) {
	cfg := &gameConfig{
		logger: DefaultLogger,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = DefaultLogger
	}

	g := &Game{
		Board:   mode.InitialBoard.Clone(),
		Bounds:  mode.Bounds,
		Players: newPlayers(),
		logger:  cfg.logger,
	}
	g.refresh()

	for i, mv := range cfg.history {
		var opts []MoveOption
		if mv.Type.IsPromotion() {
			opts = append(opts, WithPromotion(mv.Type.PromotionPiece()))
		}
		played, err := g.Move(mv.Mov.From, mv.Mov.To, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d %s: %v", ErrInvalidHistory, i+1, mv, err)
		}
		if played.Type != mv.Type {
			return nil, fmt.Errorf("%w: move %d %s: played as %s", ErrInvalidHistory, i+1, mv, played.Type)
		}
	}
	if len(cfg.history) > 0 {
		g.logger("replayed", len(cfg.history), "moves")
	}
	return g, nil
}

// Turn returns the side to move.
func (g *Game) Turn() board.Side {
	return Turn(g.History)
}

func (g *Game) Clone() *Game {
	return &Game{
		Board:   g.Board.Clone(),
		Bounds:  g.Bounds,
		Players: g.Players.Clone(),
		History: g.History.Clone(),
		logger:  g.logger,
	}
}

// refresh rebuilds both move caches: attack moves for the side that just moved, then legal
// moves for the side to move, which depend on the former for castling.
func (g *Game) refresh() {
	turn := g.Turn()
	g.Players[turn.Opposite()].Moves = AttackMovesOfSide(g.Board, g.Bounds, turn.Opposite())
	g.Players[turn].Moves = LegalMoves(g.Board, g.Bounds, g.History, g.Players, turn)
}
