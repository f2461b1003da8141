package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
)

func step(mode board.Mode, seed int64, limit int) error {
	log.Println("============ step")
	var (
		timesApply  []time.Duration
		timesStatus []time.Duration
	)
	g, err := game.NewGame(mode)
	if err != nil {
		return err
	}
	r := rand.New(rand.NewSource(seed))
stepLoop:
	for ply := 0; ply < limit; ply++ {
		mvs := g.Players[g.Turn()].Moves.GameMoves(g.Board)
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: status=%s", g.Status())
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 := time.Now()
		played, err := g.Move(mv.Mov.From, mv.Mov.To)
		t2 := time.Now()
		if err != nil {
			return err
		}
		timesApply = append(timesApply, t2.Sub(t1))

		t1 = time.Now()
		st := g.Status()
		t2 = time.Now()
		timesStatus = append(timesStatus, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, played.Mov.Piece.Side, played)
		fmt.Println(board.Draw(g.Bounds, g.Board, nil))
		fmt.Println(g.FEN())
		switch {
		case !st.IsRunning():
			break stepLoop
		case st == game.StatusCheck:
			<-time.After(100 * time.Millisecond)
			fallthrough
		default:
			<-time.After(10 * time.Millisecond)
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		if len(ds) == 0 {
			return 0
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(g.Status())
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("status:", avg(timesStatus))
	return nil
}
