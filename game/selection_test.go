package game

import (
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	t.Parallel()
	type click struct {
		at         string
		wantPiece  string
		wantSquare []string
		wantMoved  bool
	}
	tests := []struct {
		name   string
		moves  []string
		clicks []click
	}{
		{
			name: "select and deselect",
			clicks: []click{
				{at: "E2", wantPiece: "E2"},
				{at: "E2"},
			},
		},
		{
			name: "select and move",
			clicks: []click{
				{at: "E2", wantPiece: "E2"},
				{at: "E4", wantMoved: true},
			},
		},
		{
			name: "switch selection to another own piece",
			clicks: []click{
				{at: "E2", wantPiece: "E2"},
				{at: "G1", wantPiece: "G1"},
			},
		},
		{
			name:  "opponent piece clears",
			moves: []string{"E2E4"},
			clicks: []click{
				{at: "D7", wantPiece: "D7"},
				{at: "B1"},
			},
		},
		{
			name: "empty squares toggle",
			clicks: []click{
				{at: "E5", wantSquare: []string{"E5"}},
				{at: "D5", wantSquare: []string{"D5", "E5"}},
				{at: "E5", wantSquare: []string{"D5"}},
			},
		},
		{
			name: "piece clears empty squares",
			clicks: []click{
				{at: "E5", wantSquare: []string{"E5"}},
				{at: "D2", wantPiece: "D2"},
			},
		},
		{
			name: "empty square clears piece",
			clicks: []click{
				{at: "D2", wantPiece: "D2"},
				{at: "H5", wantSquare: []string{"H5"}},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newStandardGame(t, tt.moves...)
			s := NewSelection()
			for i, c := range tt.clicks {
				historyLen := len(g.History)
				_, moved, err := s.Toggle(g, pos(c.at))
				if err != nil {
					t.Fatalf("click %d: unexpected error: %v", i, err)
				}
				if moved != c.wantMoved {
					t.Errorf("click %d: unexpected moved: got=%v want=%v", i, moved, c.wantMoved)
				}
				if moved && len(g.History) != historyLen+1 {
					t.Errorf("click %d: unexpected history length: got=%d want=%d", i, len(g.History), historyLen+1)
				}
				switch {
				case c.wantPiece == "" && s.Piece != nil:
					t.Errorf("click %d: unexpected piece selection: got=%v", i, *s.Piece)
				case c.wantPiece != "" && (s.Piece == nil || *s.Piece != pos(c.wantPiece)):
					t.Errorf("click %d: unexpected piece selection: got=%v want=%s", i, s.Piece, c.wantPiece)
				}
				if len(s.Squares) != len(c.wantSquare) {
					t.Errorf("click %d: unexpected squares: got=%v want=%v", i, s.Squares, c.wantSquare)
				}
				for _, sq := range c.wantSquare {
					if _, ok := s.Squares[pos(sq)]; !ok {
						t.Errorf("click %d: square %s not selected", i, sq)
					}
				}
			}
		})
	}
}

func TestSelectionTargets(t *testing.T) {
	t.Parallel()
	g := newStandardGame(t)
	s := NewSelection()
	if got := s.Targets(g); len(got) != 0 {
		t.Errorf("unexpected targets: got=%v want=none", got)
	}
	if _, _, err := s.Toggle(g, pos("G1")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	got := s.Targets(g)
	if len(got) != 2 {
		t.Errorf("unexpected target count: got=%d want=2", len(got))
	}
	for _, n := range []string{"F3", "H3"} {
		if _, ok := got[pos(n)]; !ok {
			t.Errorf("missing target %s", n)
		}
	}
}
