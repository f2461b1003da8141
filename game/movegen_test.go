package game

import (
	"testing"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

func movesFromGrid(t *testing.T, rows ...string) PieceMoves {
	t.Helper()
	grid := ""
	for _, row := range rows {
		grid += row + "\n"
	}
	mvs, err := board.UnmarshalMoves(board.StandardBounds, grid)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	result := make(PieceMoves, len(mvs))
	for _, mv := range mvs {
		result[mv.Mov.To] = mv.Type
	}
	return result
}

func assertPieceMoves(t *testing.T, got, want PieceMoves) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("unexpected move count: got=%d want=%d (got=%v)", len(got), len(want), got)
	}
	for to, wt := range want {
		if gt, ok := got[to]; !ok || gt != wt {
			t.Errorf("unexpected move to %v: got=%v want=%v", to, gt, wt)
		}
	}
}

func TestPseudoLegalMovesKnightAlone(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	b.Set(pos("D4"), board.Piece{Type: board.PieceKnight, Side: board.SideWhite})
	got := PseudoLegalMoves(b, board.StandardBounds, pos("D4"))
	want := PieceMoves{}
	for _, n := range []string{"E6", "F5", "F3", "E2", "C2", "B3", "B5", "C6"} {
		want[pos(n)] = board.MoveTypeDefault
	}
	assertPieceMoves(t, got, want)
}

func TestPseudoLegalMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		board []string
		from  string
		want  []string
	}{
		{
			name: "rook stops at first piece",
			board: []string{
				"        ",
				"        ",
				"   ♙    ",
				"        ",
				"   ♖ ♟  ",
				"        ",
				"        ",
				"        ",
			},
			from: "D4",
			want: []string{
				"        ",
				"        ",
				"   ◌    ",
				"   ○    ",
				"○○○♖○◎  ",
				"   ○    ",
				"   ○    ",
				"   ○    ",
			},
		},
		{
			name: "bishop",
			board: []string{
				"        ",
				"        ",
				"     ♙  ",
				"        ",
				"   ♝    ",
				"        ",
				" ♛      ",
				"        ",
			},
			from: "D4",
			want: []string{
				"        ",
				"○       ",
				" ○   ◎  ",
				"  ○ ○   ",
				"   ♝    ",
				"  ○ ○   ",
				" ◌   ○  ",
				"      ○ ",
			},
		},
		{
			name: "queen in corner",
			board: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"♙♙      ",
				"♕ ♘     ",
			},
			from: "A1",
			want: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"◌◌      ",
				"♕○◌     ",
			},
		},
		{
			name: "king",
			board: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"   ♟♙   ",
				"    ♔   ",
			},
			from: "E1",
			want: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"   ◎◌○  ",
				"   ○♔○  ",
			},
		},
		{
			name: "pawn start with captures",
			board: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"   ♜ ♘  ",
				"    ♙   ",
				"        ",
			},
			from: "E2",
			want: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"    ○   ",
				"   ◎○   ",
				"    ♙   ",
				"        ",
			},
		},
		{
			name: "pawn double step blocked",
			board: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"    ♞   ",
				"        ",
				"    ♙   ",
				"        ",
			},
			from: "E2",
			want: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"    ○   ",
				"    ♙   ",
				"        ",
			},
		},
		{
			name: "black pawn promotes",
			board: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				" ♟      ",
				"♖ ♖     ",
			},
			from: "B2",
			want: []string{
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				" ♟      ",
				"●●●     ",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := board.MustUnmarshalRows(board.StandardBounds, tt.board...)
			got := PseudoLegalMoves(b, board.StandardBounds, pos(tt.from))
			assertPieceMoves(t, got, movesFromGrid(t, tt.want...))
		})
	}
}

func TestPseudoLegalMovesWithinBounds(t *testing.T) {
	t.Parallel()
	bounds := board.Bounds{MinRow: 2, MinCol: 2, MaxRow: 6, MaxCol: 6}
	b := board.MustUnmarshalRows(bounds,
		"♜  ♞♚",
		"♟   ♟",
		"  ♕  ",
		"♙ ♘ ♗",
		"♖ ♔  ",
	)
	for _, from := range b.Positions() {
		for to := range PseudoLegalMoves(b, bounds, from) {
			if !bounds.Contains(to) {
				t.Errorf("move %v%v leaves bounds", from, to)
			}
		}
		for to := range AttackMoves(b, bounds, from) {
			if !bounds.Contains(to) {
				t.Errorf("attack %v%v leaves bounds", from, to)
			}
		}
	}
}

func TestPseudoLegalMovesSlidingRays(t *testing.T) {
	t.Parallel()
	g := newTestGame(t,
		"♜   ♚  ♜",
		"♟ ♟♟♛♟♝ ",
		"♝♞  ♟♞♟ ",
		"   ♙♘   ",
		" ♟  ♙   ",
		"  ♘  ♕ ♟",
		"♙♙♙♗♗♙♙♙",
		"♖   ♔  ♖",
	)
	for from, piece := range g.Board {
		var dirs []offset
		switch piece.Type {
		case board.PieceRook:
			dirs = lateralDirections
		case board.PieceBishop:
			dirs = diagonalDirections
		case board.PieceQueen:
			dirs = allDirections
		default:
			continue
		}
		mvs := PseudoLegalMoves(g.Board, g.Bounds, from)
		for _, d := range dirs {
			var terminal int
			for step := 1; ; step++ {
				to, ok := from.Rel(d.dRow*step, d.dCol*step)
				if !ok || !g.Bounds.Contains(to) {
					break
				}
				t2, emitted := mvs[to]
				if terminal > 0 {
					if emitted {
						t.Errorf("%v at %v: move %v past first occupied square", piece, from, to)
					}
					continue
				}
				if !emitted {
					t.Errorf("%v at %v: missing move %v", piece, from, to)
					break
				}
				if !g.Board.IsEmpty(to) {
					terminal++
					if t2 != board.MoveTypeCapture && t2 != board.MoveTypeMenace {
						t.Errorf("%v at %v: unexpected terminal type %v", piece, from, t2)
					}
				} else if t2 != board.MoveTypeDefault {
					t.Errorf("%v at %v: unexpected type %v on empty square", piece, from, t2)
				}
			}
		}
	}
}

func TestPawnDiagonalIffEnemy(t *testing.T) {
	t.Parallel()
	b := board.MustUnmarshalRows(board.StandardBounds,
		"        ",
		"        ",
		"        ",
		" ♟ ♙ ♙  ",
		"  ♙ ♙ ♟ ",
		"        ",
		"        ",
		"        ",
	)
	for from, piece := range b {
		if piece.Type != board.PiecePawn || piece.Side != board.SideWhite {
			continue
		}
		mvs := PseudoLegalMoves(b, board.StandardBounds, from)
		for _, dCol := range []int{-1, 1} {
			to := from.MustRel(1, dCol)
			target, occupied := b[to]
			enemy := occupied && target.Side == board.SideBlack
			if _, ok := mvs[to]; ok != enemy {
				t.Errorf("pawn %v diagonal %v: got=%v want=%v", from, to, ok, enemy)
			}
		}
	}
}

func TestAttackMovesPawn(t *testing.T) {
	t.Parallel()
	b := board.MustUnmarshalRows(board.StandardBounds,
		"        ",
		"        ",
		"        ",
		"   ♙ ♟  ",
		"    ♙   ",
		"        ",
		"        ",
		"        ",
	)
	got := AttackMoves(b, board.StandardBounds, pos("E4"))
	want := PieceMoves{
		pos("D5"): board.MoveTypeMenace,
		pos("F5"): board.MoveTypeCapture,
	}
	assertPieceMoves(t, got, want)
}

func TestAttackMovesOfSide(t *testing.T) {
	t.Parallel()
	b := board.StandardChess().InitialBoard
	got := AttackMovesOfSide(b, board.StandardBounds, board.SideBlack).Targets()
	for _, n := range []string{"A6", "H6", "C6", "F6", "D7", "E7"} {
		if _, ok := got[position.MustNewPosFromNotation(n)]; !ok {
			t.Errorf("square %s not attacked", n)
		}
	}
	for _, n := range []string{"A5", "E5", "E4"} {
		if _, ok := got[position.MustNewPosFromNotation(n)]; ok {
			t.Errorf("square %s unexpectedly attacked", n)
		}
	}
}
