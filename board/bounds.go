package board

import (
	"errors"
	"fmt"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

var (
	ErrInvalidBounds = errors.New("invalid bounds")
)

// Bounds is the inclusive rectangle of active squares.
type Bounds struct {
	MinRow, MinCol uint8
	MaxRow, MaxCol uint8
}

func NewBounds(minRow, minCol, maxRow, maxCol uint8) (Bounds, error) {
	if minRow > maxRow || minCol > maxCol {
		return Bounds{}, fmt.Errorf("%w: min must not exceed max", ErrInvalidBounds)
	}
	return Bounds{MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCol}, nil
}

func (b Bounds) Contains(p position.Pos) bool {
	return p.Row >= b.MinRow && p.Row <= b.MaxRow && p.Col >= b.MinCol && p.Col <= b.MaxCol
}

func (b Bounds) Rows() int {
	return int(b.MaxRow) - int(b.MinRow) + 1
}

func (b Bounds) Cols() int {
	return int(b.MaxCol) - int(b.MinCol) + 1
}

// PawnStartRow is the row pawns of side s may double-step from.
func (b Bounds) PawnStartRow(s Side) uint8 {
	if s == SideBlack {
		return b.MaxRow - 1
	}
	return b.MinRow + 1
}

// PromotionRow is the far row for pawns of side s.
func (b Bounds) PromotionRow(s Side) uint8 {
	if s == SideBlack {
		return b.MinRow
	}
	return b.MaxRow
}

// EnPassantRow is the row a pawn of side s must stand on to capture en passant.
func (b Bounds) EnPassantRow(s Side) uint8 {
	if s == SideBlack {
		return b.MinRow + 3
	}
	return b.MaxRow - 3
}

// Each calls f for every square, top row first, left to right.
func (b Bounds) Each(f func(p position.Pos)) {
	for row := int(b.MaxRow); row >= int(b.MinRow); row-- {
		for col := int(b.MinCol); col <= int(b.MaxCol); col++ {
			f(position.Pos{Row: uint8(row), Col: uint8(col)})
		}
	}
}
