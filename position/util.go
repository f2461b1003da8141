package position

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the row and column deltas going from a to b.
func Distance(a, b Pos) (int, int) {
	return int(b.Row) - int(a.Row), int(b.Col) - int(a.Col)
}

// Less orders positions row-major, lowest row first.
func Less(a, b Pos) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func inComponentRange[T constraints.Integer](v T) bool {
	return v >= 0 && int64(v) <= MaxComponentScalar
}
