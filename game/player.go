package game

import (
	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

// PieceMoves maps a target square to its classification.
type PieceMoves map[position.Pos]board.MoveType

// PlayerMoves maps an origin square to the moves available from it.
type PlayerMoves map[position.Pos]PieceMoves

// Capture is a piece taken by a player, with the history length at the time of capture.
type Capture struct {
	Piece board.Piece
	At    int
}

// Player holds a side's captures and its move cache. For the side to move the cache holds
// legal moves; for the other side it holds attack moves.
type Player struct {
	Side     board.Side
	Captures []Capture
	Moves    PlayerMoves
}

type Players map[board.Side]*Player

func newPlayers() Players {
	return Players{
		board.SideWhite: {Side: board.SideWhite, Moves: PlayerMoves{}},
		board.SideBlack: {Side: board.SideBlack, Moves: PlayerMoves{}},
	}
}

func (ps Players) Clone() Players {
	c := make(Players, len(ps))
	for s, p := range ps {
		captures := make([]Capture, len(p.Captures))
		copy(captures, p.Captures)
		c[s] = &Player{Side: p.Side, Captures: captures, Moves: p.Moves.Clone()}
	}
	return c
}

func (m PlayerMoves) Clone() PlayerMoves {
	c := make(PlayerMoves, len(m))
	for from, mvs := range m {
		cc := make(PieceMoves, len(mvs))
		for to, t := range mvs {
			cc[to] = t
		}
		c[from] = cc
	}
	return c
}

// Targets returns every square appearing as a target in m.
func (m PlayerMoves) Targets() map[position.Pos]struct{} {
	targets := make(map[position.Pos]struct{})
	for _, mvs := range m {
		for to := range mvs {
			targets[to] = struct{}{}
		}
	}
	return targets
}

// Count returns the total number of moves in m.
func (m PlayerMoves) Count() int {
	var n int
	for _, mvs := range m {
		n += len(mvs)
	}
	return n
}

// GameMoves expands m into classified moves in a stable order.
func (m PlayerMoves) GameMoves(b board.Board) []board.GameMove {
	var out []board.GameMove
	for _, from := range sortedPositions(m) {
		piece := b[from]
		for _, to := range sortedPositions(m[from]) {
			out = append(out, board.NewGameMove(piece, from, to, m[from][to]))
		}
	}
	return out
}
