package game

import "errors"

var (
	ErrNoExit         = errors.New("no exit in that direction")
	ErrNoPreviousRoom = errors.New("no previous room")
	ErrHistoryEmpty   = errors.New("room history is empty")
	ErrAlreadyHolding = errors.New("already holding an item")
	ErrNotHolding     = errors.New("not holding anything")
	ErrItemNotFound   = errors.New("item not in room")
	ErrNotEaten       = errors.New("must eat a cookie first")
	ErrHungry         = errors.New("pickup limit reached")
	ErrNotCookie      = errors.New("held item is not a cookie")
	ErrNotBeamer      = errors.New("held item is not a beamer")
	ErrAlreadyCharged = errors.New("beamer already charged")
	ErrNotCharged     = errors.New("beamer not charged")
	ErrUnknownRoom    = errors.New("unknown room")
	ErrUnknownItem    = errors.New("unknown item")
	ErrNoStartRoom    = errors.New("start room is required")
)
