package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidLength    = errors.New("invalid length")
)

// Unmarshal parses a board written as one line per row, highest row first.
// A single trailing newline is accepted.
func Unmarshal(bounds Bounds, s string) (Board, error) {
	return UnmarshalRows(bounds, splitRows(s)...)
}

func UnmarshalRows(bounds Bounds, rows ...string) (Board, error) {
	if err := validateGrid(bounds, rows, func(r rune) bool {
		_, ok := NewPieceFromSymbol(r)
		return ok
	}); err != nil {
		return nil, err
	}
	b := NewBoard()
	eachCell(bounds, rows, func(p position.Pos, r rune) {
		if piece, ok := NewPieceFromSymbol(r); ok {
			b[p] = piece
		}
	})
	return b, nil
}

func MustUnmarshalRows(bounds Bounds, rows ...string) Board {
	b, err := UnmarshalRows(bounds, rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Marshal writes b in the textual form read by Unmarshal, each row newline-terminated.
func Marshal(bounds Bounds, b Board) string {
	builder := strings.Builder{}
	bounds.Each(func(p position.Pos) {
		if piece, ok := b[p]; ok {
			_, _ = builder.WriteString(piece.SymbolUnicode())
		} else {
			_, _ = builder.WriteRune(' ')
		}
		if p.Col == bounds.MaxCol {
			_, _ = builder.WriteRune('\n')
		}
	})
	return builder.String()
}

func splitRows(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// validateGrid checks characters first, then the row count and every row's rune count.
func validateGrid(bounds Bounds, rows []string, allowed func(r rune) bool) error {
	for _, row := range rows {
		for _, r := range row {
			if r != ' ' && !allowed(r) {
				return fmt.Errorf("%w: unexpected symbol '%s'", ErrInvalidCharacter, string(r))
			}
		}
	}
	if len(rows) != bounds.Rows() {
		return fmt.Errorf("%w: got %d rows, bounds require %d", ErrInvalidLength, len(rows), bounds.Rows())
	}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != bounds.Cols() {
			return fmt.Errorf("%w: row %d has %d cells, bounds require %d", ErrInvalidLength, i, n, bounds.Cols())
		}
	}
	return nil
}

func eachCell(bounds Bounds, rows []string, f func(p position.Pos, r rune)) {
	for i, row := range rows {
		rowIdx := bounds.MaxRow - uint8(i)
		col := bounds.MinCol
		for _, r := range row {
			f(position.Pos{Row: rowIdx, Col: col}, r)
			col++
		}
	}
}
