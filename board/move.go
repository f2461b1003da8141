package board

import (
	"strings"

	"github.com/joao-arthur/libre-chess-sub000/position"
)

// MoveType classifies a generated move.
type MoveType uint8

const (
	MoveTypeUnknown MoveType = iota
	MoveTypeDefault
	MoveTypeCapture
	// MoveTypeMenace marks an attacked square that cannot be moved to; it only feeds attack maps.
	MoveTypeMenace
	MoveTypeEnPassant
	MoveTypeShortCastling
	MoveTypeLongCastling
	MoveTypePromotionToQueen
	MoveTypePromotionToRook
	MoveTypePromotionToBishop
	MoveTypePromotionToKnight
)

func (t MoveType) String() string {
	switch t {
	case MoveTypeDefault:
		return "Default"
	case MoveTypeCapture:
		return "Capture"
	case MoveTypeMenace:
		return "Menace"
	case MoveTypeEnPassant:
		return "EnPassant"
	case MoveTypeShortCastling:
		return "ShortCastling"
	case MoveTypeLongCastling:
		return "LongCastling"
	case MoveTypePromotionToQueen:
		return "PromotionToQueen"
	case MoveTypePromotionToRook:
		return "PromotionToRook"
	case MoveTypePromotionToBishop:
		return "PromotionToBishop"
	case MoveTypePromotionToKnight:
		return "PromotionToKnight"
	default:
		return ""
	}
}

func (t MoveType) IsCastling() bool {
	return t == MoveTypeShortCastling || t == MoveTypeLongCastling
}

func (t MoveType) IsPromotion() bool {
	return t.PromotionPiece() != PieceUnknown
}

// PromotionPiece returns the piece type a promotion variant produces.
func (t MoveType) PromotionPiece() PieceType {
	switch t {
	case MoveTypePromotionToQueen:
		return PieceQueen
	case MoveTypePromotionToRook:
		return PieceRook
	case MoveTypePromotionToBishop:
		return PieceBishop
	case MoveTypePromotionToKnight:
		return PieceKnight
	default:
		return PieceUnknown
	}
}

// NewPromotionMoveType is the inverse of PromotionPiece.
func NewPromotionMoveType(p PieceType) (MoveType, bool) {
	switch p {
	case PieceQueen:
		return MoveTypePromotionToQueen, true
	case PieceRook:
		return MoveTypePromotionToRook, true
	case PieceBishop:
		return MoveTypePromotionToBishop, true
	case PieceKnight:
		return MoveTypePromotionToKnight, true
	default:
		return MoveTypeUnknown, false
	}
}

// Mov describes a piece travelling between two squares, not yet classified.
type Mov struct {
	Piece    Piece
	From, To position.Pos
}

// GameMove is a classified move. For castling, Mov.To is the rook's square.
type GameMove struct {
	Mov  Mov
	Type MoveType
}

func NewGameMove(piece Piece, from, to position.Pos, t MoveType) GameMove {
	return GameMove{Mov: Mov{Piece: piece, From: from, To: to}, Type: t}
}

func (m GameMove) String() string {
	return m.Algebra()
}

func (m GameMove) Algebra() string {
	switch m.Type {
	case MoveTypeShortCastling:
		return "0-0"
	case MoveTypeLongCastling:
		return "0-0-0"
	}
	nt := m.Mov.Piece.Type.SymbolAlgebra()
	if m.Type == MoveTypeCapture || m.Type == MoveTypeEnPassant {
		if m.Mov.Piece.Type == PiecePawn {
			nt += position.NotationComponentCol(m.Mov.From.Col)
		} else {
			nt += m.Mov.From.Notation()
		}
		nt += "x"
	}
	nt += m.Mov.To.Notation()
	if p := m.Type.PromotionPiece(); p != PieceUnknown {
		nt += "=" + p.SymbolAlgebra()
	}
	if m.Type == MoveTypeEnPassant {
		nt += " e.p."
	}
	return nt
}

// UCI returns the move as lowercase origin and target squares followed by the promotion
// piece, e.g. "e7e8q". Castling is written as the king taking its own rook, "e1h1".
func (m GameMove) UCI() string {
	s := strings.ToLower(m.Mov.From.Notation() + m.Mov.To.Notation())
	if p := m.Type.PromotionPiece(); p != PieceUnknown {
		s += strings.ToLower(p.SymbolAlgebra())
	}
	return s
}

// History is the append-only sequence of played moves.
type History []GameMove

func (h History) Last() (GameMove, bool) {
	if len(h) == 0 {
		return GameMove{}, false
	}
	return h[len(h)-1], true
}

func (h History) Clone() History {
	hh := make(History, len(h))
	copy(hh, h)
	return hh
}
