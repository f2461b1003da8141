package game

type Status uint8

const (
	// StatusUnknown is when game status is unknown.
	StatusUnknown Status = iota

	// StatusRunning is when the side to move has moves and is not in check.
	StatusRunning

	// StatusCheck is when the King of the side to move is attacked.
	StatusCheck

	// StatusCheckmate is when the King of the side to move is attacked and no move helps.
	StatusCheckmate

	// StatusStalemate is when the side to move has no moves and King is not in check.
	StatusStalemate
)

func (s Status) IsRunning() bool {
	switch s {
	case StatusRunning, StatusCheck:
		return true
	default:
		return false
	}
}

func (s Status) IsOver() bool {
	switch s {
	case StatusCheckmate, StatusStalemate:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "StatusUnknown"
	case StatusRunning:
		return "StatusRunning"
	case StatusCheck:
		return "StatusCheck"
	case StatusCheckmate:
		return "StatusCheckmate"
	case StatusStalemate:
		return "StatusStalemate"
	default:
		return ""
	}
}

// Status reports the state of the side to move.
func (g *Game) Status() Status {
	check := IsInCheck(g.Board, g.Players, g.History)
	hasMoves := g.Players[g.Turn()].Moves.Count() > 0
	switch {
	case check && hasMoves:
		return StatusCheck
	case check:
		return StatusCheckmate
	case hasMoves:
		return StatusRunning
	default:
		return StatusStalemate
	}
}
