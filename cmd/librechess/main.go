package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
	"github.com/joao-arthur/libre-chess-sub000/pgn"
	"github.com/joao-arthur/libre-chess-sub000/tui"
)

const (
	exitOK = iota
	exitErr
)

var (
	fen   = flag.String("fen", getenv("LIBRECHESS_FEN", ""), "FEN record of the starting position, white to move; defaults to the standard setup")
	moves = flag.String("moves", getenv("LIBRECHESS_MOVES", ""), "space-separated moves played from the starting position, e.g. \"e2e4 e7e5\"")

	movegenDraw = flag.Bool("draw", getenvb("LIBRECHESS_DRAW", false), "draw the annotation grid of every legal move")

	stepRun   = flag.Bool("step", getenvb("LIBRECHESS_STEP", false), "run step mode")
	stepLimit = flag.Int("step.limit", getenvi("LIBRECHESS_STEP_LIMIT", 500), "maximum plies in step mode")
	stepSeed  = flag.Int64("step.seed", int64(getenvi("LIBRECHESS_STEP_SEED", 1)), "random seed in step mode")

	perftDepth    = flag.Int("perft", getenvi("LIBRECHESS_PERFT", 0), "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", getenvb("LIBRECHESS_PERFT_PARALLEL", true), "search root moves concurrently in perft mode")
	perftVerbose  = flag.Bool("perft.verbose", getenvb("LIBRECHESS_PERFT_VERBOSE", false), "print node counts per root move in perft mode")

	verifyGames = flag.Int("verify", getenvi("LIBRECHESS_VERIFY", 0), "cross-check the move generator over the given number of random games")
	verifyPlies = flag.Int("verify.plies", getenvi("LIBRECHESS_VERIFY_PLIES", 200), "maximum plies per game in verify mode")
	verifySeed  = flag.Int64("verify.seed", int64(getenvi("LIBRECHESS_VERIFY_SEED", 1)), "random seed in verify mode")

	pgnRun = flag.Bool("pgn", getenvb("LIBRECHESS_PGN", false), "print the played moves as PGN")

	playRun   = flag.Bool("play", getenvb("LIBRECHESS_PLAY", false), "run the interactive terminal board")
	playColor = flag.String("color", getenv("LIBRECHESS_COLOR", "white"), "side shown at the bottom in play mode: white or black")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	mode, err := newMode(*fen)
	if err != nil {
		return err
	}
	g, err := newGame(mode, *moves)
	if err != nil {
		return err
	}

	switch {
	case *playRun:
		return play(mode, g.History, *playColor)
	case *perftDepth > 0:
		return perft(g, *perftDepth, *perftParallel, *perftVerbose)
	case *verifyGames > 0:
		return verify(*verifySeed, *verifyGames, *verifyPlies)
	case *stepRun:
		return step(mode, *stepSeed, *stepLimit)
	case *pgnRun:
		out, err := pgn.Export(mode, g.History)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	default:
		return movegen(g, *movegenDraw)
	}
}

// newMode builds a standard 8x8 mode from a FEN record. Only the placement and side to move
// fields are read; the side to move must be White because turns follow history parity.
func newMode(fen string) (board.Mode, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return board.StandardChess(), nil
	}
	if len(fields) > 1 && fields[1] != "w" {
		return board.Mode{}, fmt.Errorf("%w: side to move %q, only w is supported", board.ErrInvalidFEN, fields[1])
	}
	b, err := board.UnmarshalFEN(board.StandardBounds, fields[0])
	if err != nil {
		return board.Mode{}, err
	}
	return board.Mode{Bounds: board.StandardBounds, InitialBoard: b}, nil
}

func newGame(mode board.Mode, moves string) (*game.Game, error) {
	g, err := game.NewGame(mode, game.WithLogger(log.Println))
	if err != nil {
		return nil, err
	}
	for _, mv := range strings.Fields(moves) {
		if _, err := g.MoveNotation(mv); err != nil {
			return nil, fmt.Errorf("move %s: %w", mv, err)
		}
	}
	return g, nil
}

func play(mode board.Mode, h board.History, color string) error {
	orientation := board.SideWhite
	switch strings.ToLower(strings.TrimSpace(color)) {
	case "white", "w":
	case "black", "b":
		orientation = board.SideBlack
	default:
		return fmt.Errorf("invalid color %q; valid: white, black", color)
	}
	return tui.Run(mode, tui.WithHistory(h), tui.WithOrientation(orientation))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
