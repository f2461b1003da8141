package game

import "errors"

var (
	ErrNoSuchPiece      = errors.New("no such piece")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrIllegalTarget    = errors.New("illegal target")
	ErrInvalidPromotion = errors.New("invalid promotion")
	ErrInvalidHistory   = errors.New("invalid history")
)
