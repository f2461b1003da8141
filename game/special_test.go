package game

import (
	"testing"

	"github.com/joao-arthur/libre-chess-sub000/board"
)

var (
	whitePawn = board.Piece{Type: board.PiecePawn, Side: board.SideWhite}
	blackPawn = board.Piece{Type: board.PiecePawn, Side: board.SideBlack}
	whiteKing = board.Piece{Type: board.PieceKing, Side: board.SideWhite}
	whiteRook = board.Piece{Type: board.PieceRook, Side: board.SideWhite}
)

func TestEnPassantMoves(t *testing.T) {
	t.Parallel()
	b := board.MustUnmarshalRows(board.StandardBounds,
		"        ",
		"        ",
		"        ",
		" ♟ ♟♙   ",
		"        ",
		"        ",
		"        ",
		"        ",
	)
	doubleStep := board.NewGameMove(blackPawn, pos("D7"), pos("D5"), board.MoveTypeDefault)
	tests := []struct {
		name string
		h    board.History
		want bool
	}{
		{
			name: "after double step",
			h:    board.History{board.NewGameMove(whitePawn, pos("E4"), pos("E5"), board.MoveTypeDefault), doubleStep},
			want: true,
		},
		{
			name: "after single step",
			h:    board.History{board.NewGameMove(blackPawn, pos("D6"), pos("D5"), board.MoveTypeDefault)},
		},
		{
			name: "double step not adjacent",
			h:    board.History{board.NewGameMove(blackPawn, pos("B7"), pos("B5"), board.MoveTypeDefault)},
		},
		{
			name: "one move later",
			h: board.History{
				doubleStep,
				board.NewGameMove(whitePawn, pos("H2"), pos("H3"), board.MoveTypeDefault),
				board.NewGameMove(blackPawn, pos("H7"), pos("H6"), board.MoveTypeDefault),
			},
		},
		{
			name: "empty history",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EnPassantMoves(b, board.StandardBounds, tt.h, pos("E5"))
			if !tt.want {
				if len(got) != 0 {
					t.Errorf("unexpected moves: got=%v want=none", got)
				}
				return
			}
			want := board.NewGameMove(whitePawn, pos("E5"), pos("D6"), board.MoveTypeEnPassant)
			if len(got) != 1 || got[0] != want {
				t.Errorf("unexpected moves: got=%v want=[%v]", got, want)
			}
		})
	}
}

func TestEnPassantMovesWrongRow(t *testing.T) {
	t.Parallel()
	b := board.MustUnmarshalRows(board.StandardBounds,
		"        ",
		"        ",
		"        ",
		"        ",
		"   ♟♙   ",
		"        ",
		"        ",
		"        ",
	)
	h := board.History{board.NewGameMove(blackPawn, pos("D6"), pos("D4"), board.MoveTypeDefault)}
	if got := EnPassantMoves(b, board.StandardBounds, h, pos("E4")); len(got) != 0 {
		t.Errorf("unexpected moves: got=%v want=none", got)
	}
}

func TestCastlingMoves(t *testing.T) {
	t.Parallel()
	kingMoved := board.History{
		board.NewGameMove(whiteKing, pos("E1"), pos("E2"), board.MoveTypeDefault),
		board.NewGameMove(blackPawn, pos("A7"), pos("A6"), board.MoveTypeDefault),
		board.NewGameMove(whiteKing, pos("E2"), pos("E1"), board.MoveTypeDefault),
		board.NewGameMove(blackPawn, pos("A6"), pos("A5"), board.MoveTypeDefault),
	}
	rookMoved := board.History{
		board.NewGameMove(whiteRook, pos("H1"), pos("H2"), board.MoveTypeDefault),
		board.NewGameMove(blackPawn, pos("A7"), pos("A6"), board.MoveTypeDefault),
		board.NewGameMove(whiteRook, pos("H2"), pos("H1"), board.MoveTypeDefault),
		board.NewGameMove(blackPawn, pos("A6"), pos("A5"), board.MoveTypeDefault),
	}
	tests := []struct {
		name      string
		top       string
		bottom    string
		h         board.History
		wantShort bool
		wantLong  bool
	}{
		{name: "free", top: "        ", bottom: "♖   ♔  ♖", wantShort: true, wantLong: true},
		{name: "short path attacked", top: "     ♜  ", bottom: "♖   ♔  ♖", wantLong: true},
		{name: "short destination attacked", top: "      ♜ ", bottom: "♖   ♔  ♖", wantLong: true},
		{name: "long path attacked", top: "   ♜    ", bottom: "♖   ♔  ♖", wantShort: true},
		{name: "rook square attacked", top: " ♜      ", bottom: "♖   ♔  ♖", wantShort: true, wantLong: true},
		{name: "in check", top: "    ♜   ", bottom: "♖   ♔  ♖"},
		{name: "long blocked", top: "        ", bottom: "♖♘  ♔  ♖", wantShort: true},
		{name: "short blocked by enemy", top: "        ", bottom: "♖   ♔♝ ♖", wantLong: true},
		{name: "king moved and returned", top: "        ", bottom: "♖   ♔  ♖", h: kingMoved},
		{name: "rook moved and returned", top: "        ", bottom: "♖   ♔  ♖", h: rookMoved, wantLong: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := board.MustUnmarshalRows(board.StandardBounds,
				tt.top,
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				tt.bottom,
			)
			players := newPlayers()
			players[board.SideBlack].Moves = AttackMovesOfSide(b, board.StandardBounds, board.SideBlack)

			var gotShort, gotLong bool
			for _, mv := range CastlingMoves(b, board.StandardBounds, tt.h, players, pos("E1")) {
				switch {
				case mv.Type == board.MoveTypeShortCastling && mv.Mov.To == pos("H1"):
					gotShort = true
				case mv.Type == board.MoveTypeLongCastling && mv.Mov.To == pos("A1"):
					gotLong = true
				default:
					t.Errorf("unexpected move: %v to %v", mv, mv.Mov.To)
				}
			}
			if gotShort != tt.wantShort {
				t.Errorf("unexpected short castling: got=%v want=%v", gotShort, tt.wantShort)
			}
			if gotLong != tt.wantLong {
				t.Errorf("unexpected long castling: got=%v want=%v", gotLong, tt.wantLong)
			}
		})
	}
}

func TestCastlingDestinationsCustomBounds(t *testing.T) {
	t.Parallel()
	bounds := board.Bounds{MinRow: 0, MinCol: 2, MaxRow: 9, MaxCol: 11}
	king, rook, ok := CastlingDestinations(bounds, board.MoveTypeShortCastling, 0)
	if !ok || king != pos("K1") || rook != pos("J1") {
		t.Errorf("unexpected short destinations: got=%v,%v", king, rook)
	}
	king, rook, ok = CastlingDestinations(bounds, board.MoveTypeLongCastling, 0)
	if !ok || king != pos("E1") || rook != pos("F1") {
		t.Errorf("unexpected long destinations: got=%v,%v", king, rook)
	}
	if _, _, ok := CastlingDestinations(bounds, board.MoveTypeDefault, 0); ok {
		t.Error("unexpected ok for non-castling move")
	}
}

func TestCastlingMovesPathBeyondRook(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		bottom string
		want   bool
	}{
		{name: "clear", bottom: " ♔♖     ", want: true},
		{name: "king path blocked", bottom: " ♔♖ ♘   "},
		{name: "king destination blocked", bottom: " ♔♖   ♘ "},
		{name: "rook destination blocked", bottom: " ♔♖  ♘  "},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := board.MustUnmarshalRows(board.StandardBounds,
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				"        ",
				tt.bottom,
			)
			got := CastlingMoves(b, board.StandardBounds, nil, newPlayers(), pos("B1"))
			if !tt.want {
				if len(got) != 0 {
					t.Errorf("unexpected moves: got=%v want=none", got)
				}
				return
			}
			want := board.NewGameMove(whiteKing, pos("B1"), pos("C1"), board.MoveTypeShortCastling)
			if len(got) != 1 || got[0] != want {
				t.Errorf("unexpected moves: got=%v want=[%v]", got, want)
			}
		})
	}
}
