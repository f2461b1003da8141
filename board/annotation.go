package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

const (
	GlyphDefault   = '○'
	GlyphCapture   = '◎'
	GlyphMenace    = '◌'
	GlyphEnPassant = '◍'
	GlyphCastling  = '✚'
	GlyphPromotion = '●'
)

func (t MoveType) Glyph() rune {
	switch {
	case t == MoveTypeDefault:
		return GlyphDefault
	case t == MoveTypeCapture:
		return GlyphCapture
	case t == MoveTypeMenace:
		return GlyphMenace
	case t == MoveTypeEnPassant:
		return GlyphEnPassant
	case t.IsCastling():
		return GlyphCastling
	case t.IsPromotion():
		return GlyphPromotion
	default:
		return ' '
	}
}

func isAnnotationGlyph(r rune) bool {
	switch r {
	case GlyphDefault, GlyphCapture, GlyphMenace, GlyphEnPassant, GlyphCastling, GlyphPromotion:
		return true
	default:
		return false
	}
}

// UnmarshalMoves reads a move-annotation grid: exactly one piece glyph marks the origin and
// every annotation glyph is a target. Castling targets are classified by their side of the
// origin and promotion targets as PromotionToQueen.
func UnmarshalMoves(bounds Bounds, s string) ([]GameMove, error) {
	rows := splitRows(s)
	if err := validateGrid(bounds, rows, func(r rune) bool {
		_, ok := NewPieceFromSymbol(r)
		return ok || isAnnotationGlyph(r)
	}); err != nil {
		return nil, err
	}

	var (
		origin position.Pos
		piece  Piece
		found  int
	)
	eachCell(bounds, rows, func(p position.Pos, r rune) {
		if pc, ok := NewPieceFromSymbol(r); ok {
			origin, piece = p, pc
			found++
		}
	})
	if found != 1 {
		return nil, fmt.Errorf("%w: expected exactly one piece, got %d", ErrInvalidCharacter, found)
	}

	var mvs []GameMove
	eachCell(bounds, rows, func(p position.Pos, r rune) {
		var t MoveType
		switch r {
		case GlyphDefault:
			t = MoveTypeDefault
		case GlyphCapture:
			t = MoveTypeCapture
		case GlyphMenace:
			t = MoveTypeMenace
		case GlyphEnPassant:
			t = MoveTypeEnPassant
		case GlyphCastling:
			t = MoveTypeLongCastling
			if p.Col > origin.Col {
				t = MoveTypeShortCastling
			}
		case GlyphPromotion:
			t = MoveTypePromotionToQueen
		default:
			return
		}
		mvs = append(mvs, NewGameMove(piece, origin, p, t))
	})
	sort.Slice(mvs, func(i, j int) bool { return position.Less(mvs[i].Mov.To, mvs[j].Mov.To) })
	return mvs, nil
}

func MustUnmarshalMoves(bounds Bounds, s string) []GameMove {
	mvs, err := UnmarshalMoves(bounds, s)
	if err != nil {
		panic(err)
	}
	return mvs
}

// MarshalMoves writes the annotation grid for moves sharing one origin.
func MarshalMoves(bounds Bounds, mvs []GameMove) string {
	targets := make(map[position.Pos]MoveType, len(mvs))
	origins := make(map[position.Pos]Piece, 1)
	for _, mv := range mvs {
		targets[mv.Mov.To] = mv.Type
		origins[mv.Mov.From] = mv.Mov.Piece
	}
	builder := strings.Builder{}
	bounds.Each(func(p position.Pos) {
		switch t, ok := targets[p]; {
		case ok:
			_, _ = builder.WriteRune(t.Glyph())
		default:
			if piece, ok := origins[p]; ok {
				_, _ = builder.WriteString(piece.SymbolUnicode())
			} else {
				_, _ = builder.WriteRune(' ')
			}
		}
		if p.Col == bounds.MaxCol {
			_, _ = builder.WriteRune('\n')
		}
	})
	return builder.String()
}
