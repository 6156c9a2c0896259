package models

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
)

// World owns every room of a game for the lifetime of a session. It is built
// once at startup; afterwards only room items and trap doors change.
type World struct {
	rooms map[RoomID]*Room
	order []RoomID
	start RoomID
}

func NewWorld() *World {
	return &World{
		rooms: make(map[RoomID]*Room),
	}
}

// AddRoom creates a room in the world. The first room added becomes the start
// room until SetStart says otherwise.
func (w *World) AddRoom(id RoomID, description string) (*Room, error) {
	if _, ok := w.rooms[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRoom, id)
	}
	room := NewRoom(id, description)
	w.rooms[id] = room
	w.order = append(w.order, id)
	if w.start == "" {
		w.start = id
	}
	return room, nil
}

// Room returns the room with the given ID, or nil.
func (w *World) Room(id RoomID) *Room {
	return w.rooms[id]
}

// RoomIDs returns every room ID in the order the rooms were added.
func (w *World) RoomIDs() []RoomID {
	return slices.Clone(w.order)
}

func (w *World) SetStart(id RoomID) error {
	if _, ok := w.rooms[id]; !ok {
		return fmt.Errorf("start room %s: %w", id, ErrUnknownRoom)
	}
	w.start = id
	return nil
}

// Start returns the room a new player begins in, or nil for an empty world.
func (w *World) Start() *Room {
	return w.rooms[w.start]
}

// Connect adds a one-way exit from one room to another. Both rooms must exist.
func (w *World) Connect(from RoomID, direction string, to RoomID) error {
	src, ok := w.rooms[from]
	if !ok {
		return fmt.Errorf("exit %s from %s: %w", direction, from, ErrUnknownRoom)
	}
	if _, ok := w.rooms[to]; !ok {
		return fmt.Errorf("exit %s from %s to %s: %w", direction, from, to, ErrUnknownRoom)
	}
	src.SetExit(direction, to)
	return nil
}

// Validate reports every structural problem with the world at once.
func (w *World) Validate() error {
	el := errors.NewErrorList()

	if w.Start() == nil {
		el.Add(ErrNoStartRoom)
	}

	seen := make(map[[2]string]RoomID)
	for _, id := range w.order {
		room := w.rooms[id]
		if room.description == "" {
			el.Add(fmt.Errorf("room %s: description is required", id))
		}
		for _, dir := range room.exitOrder {
			if dir == "" {
				el.Add(fmt.Errorf("room %s: exit direction is required", id))
			}
			if _, ok := w.rooms[room.exits[dir]]; !ok {
				el.Add(fmt.Errorf("room %s: exit %s leads to %s: %w", id, dir, room.exits[dir], ErrUnknownRoom))
			}
		}
		for _, item := range room.items {
			key := [2]string{item.Name, item.Description}
			if other, ok := seen[key]; ok {
				el.Add(fmt.Errorf("room %s: item %q is also in room %s", id, item.Name, other))
				continue
			}
			seen[key] = id
		}
	}

	return el.Err()
}
