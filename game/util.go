package game

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

func sortedPositions[V any](m map[position.Pos]V) []position.Pos {
	ps := maps.Keys(m)
	sort.Slice(ps, func(i, j int) bool { return position.Less(ps[i], ps[j]) })
	return ps
}
