package cards

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidRank      = errors.New("invalid rank")
	ErrInvalidSuit      = errors.New("invalid suit")
	ErrInvalidPackCount = errors.New("invalid pack count")
	ErrCorruptDeck      = errors.New("corrupt deck")
)
