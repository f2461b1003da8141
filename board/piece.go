package board

type PieceType uint8

const (
	PieceUnknown PieceType = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []PieceType{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p PieceType) String() string {
	return p.Name()
}

func (p PieceType) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p PieceType) SymbolAlgebra() string {
	switch p {
	case PieceBishop:
		return "B"
	case PieceKnight:
		return "N"
	case PieceRook:
		return "R"
	case PieceQueen:
		return "Q"
	case PieceKing:
		return "K"
	default:
		return ""
	}
}

// Piece is an immutable (type, side) value.
type Piece struct {
	Type PieceType
	Side Side
}

var unicodeSymbols = map[Piece]rune{
	{PieceRook, SideWhite}:   '♖',
	{PieceKnight, SideWhite}: '♘',
	{PieceBishop, SideWhite}: '♗',
	{PieceQueen, SideWhite}:  '♕',
	{PieceKing, SideWhite}:   '♔',
	{PiecePawn, SideWhite}:   '♙',
	{PieceRook, SideBlack}:   '♜',
	{PieceKnight, SideBlack}: '♞',
	{PieceBishop, SideBlack}: '♝',
	{PieceQueen, SideBlack}:  '♛',
	{PieceKing, SideBlack}:   '♚',
	{PiecePawn, SideBlack}:   '♟',
}

var piecesBySymbol = func() map[rune]Piece {
	m := make(map[rune]Piece, len(unicodeSymbols))
	for p, r := range unicodeSymbols {
		m[r] = p
	}
	return m
}()

func NewPieceFromSymbol(r rune) (Piece, bool) {
	p, ok := piecesBySymbol[r]
	return p, ok
}

func (p Piece) String() string {
	return p.SymbolUnicode()
}

func (p Piece) SymbolUnicode() string {
	r, ok := unicodeSymbols[p]
	if !ok {
		return ""
	}
	return string(r)
}
