package main

import (
	"log"
	"sync"

	"github.com/joao-arthur/libre-chess-sub000/bench"
	"github.com/joao-arthur/libre-chess-sub000/game"
)

func perft(g *game.Game, depth int, parallel, verbose bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)

	out := make(chan string)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range out {
			log.Println(line)
		}
	}()
	bench.Perft(g, depth, parallel, verbose, out)
	close(out)
	wg.Wait()
	return nil
}

func verify(seed int64, games, plies int) error {
	log.Printf("============ verify: %d games\n", games)
	return bench.Verify(seed, games, plies, log.Println)
}
