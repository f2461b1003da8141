package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

var (
	// ErrInvalidFEN represents an invalid FEN error.
	ErrInvalidFEN = errors.New("invalid FEN")

	fenSymbols = map[rune]PieceType{
		'p': PiecePawn,
		'b': PieceBishop,
		'n': PieceKnight,
		'r': PieceRook,
		'q': PieceQueen,
		'k': PieceKing,
	}
)

func (p Piece) SymbolFEN() string {
	s := p.Type.SymbolAlgebra()
	if p.Type == PiecePawn {
		s = "P"
	}
	if p.Side == SideBlack {
		return strings.ToLower(s)
	}
	return s
}

// UnmarshalFEN reads the piece placement field of a FEN record, highest row first.
// Runs of empty squares may span several digits, so boards wider than nine columns work.
func UnmarshalFEN(bounds Bounds, placement string) (Board, error) {
	rows := strings.Split(placement, "/")
	if len(rows) != bounds.Rows() {
		return nil, fmt.Errorf("%w: got %d rows want %d", ErrInvalidFEN, len(rows), bounds.Rows())
	}

	b := NewBoard()
	for i, row := range rows {
		y := int(bounds.MaxRow) - i
		x := int(bounds.MinCol)
		for ptr := 0; ptr < len(row); {
			cell := rune(row[ptr])
			if unicode.IsDigit(cell) {
				end := ptr
				for end < len(row) && unicode.IsDigit(rune(row[end])) {
					end++
				}
				skip, err := strconv.Atoi(row[ptr:end])
				if err != nil || skip == 0 {
					return nil, fmt.Errorf("%w: invalid skip %q", ErrInvalidFEN, row[ptr:end])
				}
				x += skip
				ptr = end
				continue
			}
			t, ok := fenSymbols[unicode.ToLower(cell)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x > int(bounds.MaxCol) {
				return nil, fmt.Errorf("%w: row %d overflows", ErrInvalidFEN, i+1)
			}
			s := SideWhite
			if unicode.IsLower(cell) {
				s = SideBlack
			}
			b[position.MustNew(y, x)] = Piece{Type: t, Side: s}
			x++
			ptr++
		}
		if x != int(bounds.MaxCol)+1 {
			return nil, fmt.Errorf("%w: row %d has %d cells want %d", ErrInvalidFEN, i+1, x-int(bounds.MinCol), bounds.Cols())
		}
	}
	return b, nil
}

// MarshalFEN writes the piece placement field of a FEN record.
func MarshalFEN(bounds Bounds, b Board) string {
	builder := strings.Builder{}
	var skip int
	bounds.Each(func(p position.Pos) {
		if piece, ok := b[p]; ok {
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(piece.SymbolFEN())
		} else {
			skip++
		}
		if p.Col == bounds.MaxCol {
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			if p.Row != bounds.MinRow {
				_, _ = builder.WriteRune('/')
			}
		}
	})
	return builder.String()
}
