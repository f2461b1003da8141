package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
)

// Counts are perft totals. Every counter except Nodes refers to the moves played at the
// last ply.
type Counts struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft counts the move sequences of the given depth from g. Promotions count once per
// candidate piece. When out is not nil, a summary line is sent to it, preceded by one line
// per root move if verbose.
func Perft(g *game.Game, depth int, parallel, verbose bool, out chan string) Counts {
	var c Counts
	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(g, depth, true, verbose, out, &c)
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/end.Sub(start).Seconds()), c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, end.Sub(start).Seconds())
	}
	return c
}

type perftFunc func(g *game.Game, d int, root, verbose bool, out chan string, c *Counts) uint64

func runPerft(g *game.Game, d int, root, verbose bool, out chan string, c *Counts) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range expandedMoves(g) {
		var child uint64
		if d == 1 {
			child = 1
			c.tally(g, mv, false)
		} else {
			child = runPerft(playClone(g, mv), d-1, false, verbose, out, c)
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(g *game.Game, d int, root, verbose bool, out chan string, c *Counts) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range expandedMoves(g) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d == 1 {
				child = 1
				c.tally(g, mv, true)
			} else {
				child = runPerftParallel(playClone(g, mv), d-1, false, verbose, out, c)
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// expandedMoves lists the legal moves of the side to move, one per promotion piece.
func expandedMoves(g *game.Game) []board.GameMove {
	var mvs []board.GameMove
	for _, mv := range g.Players[g.Turn()].Moves.GameMoves(g.Board) {
		if !mv.Type.IsPromotion() {
			mvs = append(mvs, mv)
			continue
		}
		for _, p := range board.PawnPromoteCandidates {
			t, _ := board.NewPromotionMoveType(p)
			mvs = append(mvs, board.NewGameMove(mv.Mov.Piece, mv.Mov.From, mv.Mov.To, t))
		}
	}
	return mvs
}

func playClone(g *game.Game, mv board.GameMove) *game.Game {
	gg := g.Clone()
	if _, err := gg.Move(mv.Mov.From, mv.Mov.To, game.WithPromotion(mv.Type.PromotionPiece())); err != nil {
		panic(fmt.Sprintf("bench: generated move rejected: %v: %v", mv, err))
	}
	return gg
}

func (c *Counts) tally(g *game.Game, mv board.GameMove, concurrent bool) {
	add := func(n *uint64) {
		if concurrent {
			atomic.AddUint64(n, 1)
		} else {
			*n++
		}
	}
	add(&c.Nodes)
	switch {
	case mv.Type == board.MoveTypeCapture:
		add(&c.Captures)
	case mv.Type == board.MoveTypeEnPassant:
		add(&c.Captures)
		add(&c.EnPassants)
	case mv.Type.IsCastling():
		add(&c.Castles)
	case mv.Type.IsPromotion():
		add(&c.Promotions)
		if !g.Board.IsEmpty(mv.Mov.To) {
			add(&c.Captures)
		}
	}
	if game.GivesCheck(g.Board, g.Bounds, mv) {
		add(&c.Checks)
	}
}
