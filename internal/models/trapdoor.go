package models

// TrapDoor is a two-state fixture attached to a room. The zero value is closed.
type TrapDoor struct {
	open bool
}

func (t *TrapDoor) Open() {
	t.open = true
}

func (t *TrapDoor) Close() {
	t.open = false
}

func (t *TrapDoor) IsOpen() bool {
	return t.open
}
