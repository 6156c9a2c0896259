package models

import "errors"

var (
	ErrNotPresent     = errors.New("item not present")
	ErrItemNotPresent = errors.New("item not present in room")
	ErrItemNotHeld    = errors.New("item not held")
	ErrUnknownRoom    = errors.New("unknown room")
	ErrDuplicateRoom  = errors.New("room already exists")
	ErrNoStartRoom    = errors.New("start room is not set")
)
