package models

import (
	"fmt"
	"slices"
	"strings"
)

// RoomID identifies a room within a World.
type RoomID string

// Room represents one location in the world. Exits point at other rooms by ID;
// the World owns every Room.
type Room struct {
	ID          RoomID
	description string
	exits       map[string]RoomID // direction -> destination
	exitOrder   []string          // directions in the order they were first set
	items       []Item
	trapDoor    TrapDoor
}

// NewRoom creates a room with no exits, no items and a closed trap door.
// description reads like "in a lecture theater".
func NewRoom(id RoomID, description string) *Room {
	return &Room{
		ID:          id,
		description: description,
		exits:       make(map[string]RoomID),
	}
}

// SetExit records a one-way exit. Setting an existing direction again replaces
// its destination but keeps its place in the exit listing.
func (r *Room) SetExit(direction string, neighbor RoomID) {
	if _, ok := r.exits[direction]; !ok {
		r.exitOrder = append(r.exitOrder, direction)
	}
	r.exits[direction] = neighbor
}

// Exit returns the room reached by going in direction, if any.
func (r *Room) Exit(direction string) (RoomID, bool) {
	id, ok := r.exits[direction]
	return id, ok
}

// Exits returns the room's directions in listing order.
func (r *Room) Exits() []string {
	return slices.Clone(r.exitOrder)
}

func (r *Room) AddItem(item Item) {
	r.items = append(r.items, item)
}

func (r *Room) HasItem(item Item) bool {
	return indexOfItem(r.items, item) >= 0
}

// RemoveItem takes item out of the room, returning ErrNotPresent if the room
// does not hold it.
func (r *Room) RemoveItem(item Item) error {
	idx := indexOfItem(r.items, item)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotPresent, item.Name)
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}

// Items returns a copy of the room's items in insertion order.
func (r *Room) Items() []Item {
	return slices.Clone(r.items)
}

func (r *Room) TrapDoor() *TrapDoor {
	return &r.trapDoor
}

func (r *Room) ShortDescription() string {
	return r.description
}

// LongDescription describes the room in the form:
//
//	You are in the campus pub.
//	Exits: east
//	 - A toy gun that looks real.
//
// Item lines are only present when the room holds items.
func (r *Room) LongDescription() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s.\n", r.description)
	sb.WriteString("Exits:")
	for _, dir := range r.exitOrder {
		sb.WriteString(" " + dir)
	}
	for _, item := range r.items {
		sb.WriteString("\n - " + item.Description)
	}
	return sb.String()
}
