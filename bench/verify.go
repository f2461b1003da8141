package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

var ErrMismatch = errors.New("move generator mismatch")

// Verify plays random games from the standard starting position and checks, at every ply,
// that the legal moves agree with dragontoothmg on (from, to) squares. Castling is compared
// by the king's destination and promotions by their squares only.
func Verify(seed int64, games, plies int, logger func(...any)) error {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < games; i++ {
		g, err := game.NewGame(board.StandardChess())
		if err != nil {
			return err
		}
		ref := dragontoothmg.ParseFen(dragontoothmg.Startpos)
		for ply := 0; ply < plies; ply++ {
			got := squarePairs(g)
			want := referencePairs(&ref)
			if diff := compare(got, want); diff != "" {
				return fmt.Errorf("%w: game %d ply %d after %v: %s", ErrMismatch, i, ply, g.History, diff)
			}
			if len(got) == 0 {
				break
			}

			mvs := g.Players[g.Turn()].Moves.GameMoves(g.Board)
			mv := mvs[r.Intn(len(mvs))]
			if _, err := g.Move(mv.Mov.From, mv.Mov.To); err != nil {
				return err
			}
			if !applyReference(&ref, pairOf(g.Bounds, mv)) {
				return fmt.Errorf("%w: game %d ply %d: %v not found in reference", ErrMismatch, i, ply, mv)
			}
		}
		if logger != nil {
			logger("verified game", i+1, "plies", len(g.History), "status", g.Status())
		}
	}
	return nil
}

type squarePair struct {
	from, to uint8
}

func squareIndex(p position.Pos) uint8 {
	return p.Row*8 + p.Col
}

func pairOf(bounds board.Bounds, mv board.GameMove) squarePair {
	to := mv.Mov.To
	if mv.Type.IsCastling() {
		to, _, _ = game.CastlingDestinations(bounds, mv.Type, mv.Mov.From.Row)
	}
	return squarePair{from: squareIndex(mv.Mov.From), to: squareIndex(to)}
}

func squarePairs(g *game.Game) map[squarePair]struct{} {
	pairs := make(map[squarePair]struct{})
	for _, mv := range g.Players[g.Turn()].Moves.GameMoves(g.Board) {
		pairs[pairOf(g.Bounds, mv)] = struct{}{}
	}
	return pairs
}

func referencePairs(ref *dragontoothmg.Board) map[squarePair]struct{} {
	pairs := make(map[squarePair]struct{})
	for _, mv := range ref.GenerateLegalMoves() {
		pairs[squarePair{from: mv.From(), to: mv.To()}] = struct{}{}
	}
	return pairs
}

func applyReference(ref *dragontoothmg.Board, p squarePair) bool {
	for _, mv := range ref.GenerateLegalMoves() {
		if mv.From() != p.from || mv.To() != p.to {
			continue
		}
		if promote := mv.Promote(); promote != dragontoothmg.Nothing && promote != dragontoothmg.Queen {
			continue
		}
		ref.Apply(mv)
		return true
	}
	return false
}

func compare(got, want map[squarePair]struct{}) string {
	var missing, extra []string
	for p := range want {
		if _, ok := got[p]; !ok {
			missing = append(missing, p.String())
		}
	}
	for p := range got {
		if _, ok := want[p]; !ok {
			extra = append(extra, p.String())
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return ""
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return fmt.Sprintf("missing=%v extra=%v", missing, extra)
}

func (p squarePair) String() string {
	from := position.Pos{Row: p.from / 8, Col: p.from % 8}
	to := position.Pos{Row: p.to / 8, Col: p.to % 8}
	return from.Notation() + to.Notation()
}
