package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists both playing sides, White first.
var Sides = []Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the row direction pawns of this side advance in.
func (s Side) Forward() int {
	if s == SideBlack {
		return -1
	}
	return 1
}
