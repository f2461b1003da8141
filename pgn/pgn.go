package pgn

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
)

var ErrUnsupportedBounds = errors.New("unsupported bounds")

type exportConfig struct {
	tags [][2]string
}

type ExportOption func(*exportConfig)

// WithTag adds a tag pair to the exported header.
func WithTag(key, value string) ExportOption {
	return func(cfg *exportConfig) {
		cfg.tags = append(cfg.tags, [2]string{key, value})
	}
}

// Export replays h from mode and writes it as PGN. Only 8x8 boards are supported; a
// starting board other than the standard one is recorded through the FEN tag.
func Export(mode board.Mode, h board.History, opts ...ExportOption) (string, error) {
	cfg := &exportConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if mode.Bounds != board.StandardBounds {
		return "", fmt.Errorf("%w: %d x %d", ErrUnsupportedBounds, mode.Bounds.Rows(), mode.Bounds.Cols())
	}

	g, err := game.NewGame(mode)
	if err != nil {
		return "", err
	}

	var (
		gameOpts []func(*chess.Game)
		tags     = cfg.tags
	)
	if board.MarshalFEN(mode.Bounds, mode.InitialBoard) != board.MarshalFEN(board.StandardBounds, board.StandardChess().InitialBoard) {
		fen := g.FEN()
		opt, err := chess.FEN(fen)
		if err != nil {
			return "", err
		}
		gameOpts = append(gameOpts, opt)
		tags = append(tags, [2]string{"SetUp", "1"}, [2]string{"FEN", fen})
	}
	cg := chess.NewGame(gameOpts...)
	for _, tag := range tags {
		cg.AddTagPair(tag[0], tag[1])
	}

	for i, mv := range h {
		played, err := g.Move(mv.Mov.From, mv.Mov.To, game.WithPromotion(mv.Type.PromotionPiece()))
		if err != nil {
			return "", fmt.Errorf("%w: move %d %s: %v", game.ErrInvalidHistory, i+1, mv, err)
		}
		m, err := chess.UCINotation{}.Decode(cg.Position(), uci(g.Bounds, played))
		if err != nil {
			return "", fmt.Errorf("move %d %s: %w", i+1, played, err)
		}
		if err := cg.Move(m); err != nil {
			return "", fmt.Errorf("move %d %s: %w", i+1, played, err)
		}
	}
	return cg.String(), nil
}

// uci writes mv in standard UCI form, with castling as the king's two-square move.
func uci(bounds board.Bounds, mv board.GameMove) string {
	if !mv.Type.IsCastling() {
		return mv.UCI()
	}
	kingDest, _, _ := game.CastlingDestinations(bounds, mv.Type, mv.Mov.From.Row)
	return board.NewGameMove(mv.Mov.Piece, mv.Mov.From, kingDest, board.MoveTypeDefault).UCI()
}
