package position

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxComponentScalar is the maximum row or column index the position system supports.
	MaxComponentScalar = math.MaxUint8

	alphabetLen = 26
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a zero-indexed (row, column) pair. Row 0 is rank "1", column 0 is file "A".
type Pos struct {
	Row, Col uint8
}

// New returns the position at the given indexes, or false if either one does not fit.
func New(row, col int) (Pos, bool) {
	if !inComponentRange(row) || !inComponentRange(col) {
		return Pos{}, false
	}
	return Pos{Row: uint8(row), Col: uint8(col)}, true
}

// MustNew is New for indexes already known to be valid.
func MustNew(row, col int) Pos {
	p, ok := New(row, col)
	if !ok {
		panic("position: index out of range: row=" + strconv.Itoa(row) + " col=" + strconv.Itoa(col))
	}
	return p
}

// Rel returns the position offset by the given deltas. It fails closed when the
// result would leave the representable range; board bounds are not considered.
func (p Pos) Rel(dRow, dCol int) (Pos, bool) {
	return New(int(p.Row)+dRow, int(p.Col)+dCol)
}

func (p Pos) MustRel(dRow, dCol int) Pos {
	rel, ok := p.Rel(dRow, dCol)
	if !ok {
		panic("position: relative offset out of range from " + p.Notation())
	}
	return rel
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return Pos{}, err
	}
	return Pos{Row: row, Col: col}, nil
}

// MustNewPosFromNotation is NewPosFromNotation for literals known to be valid.
func MustNewPosFromNotation(n string) Pos {
	p, err := NewPosFromNotation(n)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	return NotationComponentCol(p.Col) + NotationComponentRow(p.Row)
}

// NotationComponentCol encodes a column with bijective base-26 letters: A..Z, AA..AZ, ...
func NotationComponentCol(col uint8) string {
	var buf []byte
	for n := int(col) + 1; n > 0; n = (n - 1) / alphabetLen {
		buf = append([]byte{byte('A' + (n-1)%alphabetLen)}, buf...)
	}
	return string(buf)
}

func NotationComponentRow(row uint8) string {
	return strconv.Itoa(int(row) + 1)
}

func notationToRowCol(n string) (uint8, uint8, error) {
	n = strings.ToUpper(strings.TrimSpace(n))
	split := strings.IndexFunc(n, func(r rune) bool { return r < 'A' || r > 'Z' })
	if split <= 0 || split == len(n) {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[:split])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[split:])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func notationToCol(s string) (uint8, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*alphabetLen + int(s[i]-'A') + 1
		if n-1 > MaxComponentScalar {
			return 0, ErrInvalidNotation
		}
	}
	return uint8(n - 1), nil
}

func notationToRow(s string) (uint8, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidNotation
		}
	}
	r, err := strconv.Atoi(s)
	if err != nil || r < 1 || r-1 > MaxComponentScalar {
		return 0, ErrInvalidNotation
	}
	return uint8(r - 1), nil
}
