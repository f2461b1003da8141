package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
)

func movegen(g *game.Game, draw bool) error {
	log.Println("============ movegen")
	fmt.Println("to move:", g.Turn())
	fmt.Println(board.Draw(g.Bounds, g.Board, nil))
	fmt.Println(g.FEN())
	fmt.Println(g.Status())
	dumpMoves(g)

	if draw {
		mvs := g.Players[g.Turn()].Moves
		for _, from := range g.Board.Positions() {
			if len(mvs[from]) == 0 {
				continue
			}
			pieceMoves := game.PlayerMoves{from: mvs[from]}.GameMoves(g.Board)
			fmt.Println(from, g.Board[from])
			fmt.Println(board.Draw(g.Bounds, g.Board, mvs[from]))
			fmt.Print(board.MarshalMoves(g.Bounds, pieceMoves))
		}
	}
	return nil
}

func dumpMoves(g *game.Game) {
	mvs := g.Players[g.Turn()].Moves.GameMoves(g.Board)
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.Mov.Piece.Side, mv.Mov.Piece.Type, mv.Mov.From, mv.Mov.To, mv.Type)
	}
}
