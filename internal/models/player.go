package models

import (
	"fmt"
	"slices"
)

// Player is the person moving through the world. Room is the player's
// current location.
type Player struct {
	Room      RoomID
	inventory []Item
}

func NewPlayer(start RoomID) *Player {
	return &Player{Room: start}
}

// PickUp moves item from the player's current room into the inventory. Either
// both halves of the move happen or neither does.
func (p *Player) PickUp(w *World, item Item) error {
	room := w.Room(p.Room)
	if room == nil {
		return fmt.Errorf("player location %s: %w", p.Room, ErrUnknownRoom)
	}
	if !room.HasItem(item) {
		return fmt.Errorf("%w: %s", ErrItemNotPresent, item.Name)
	}
	if err := room.RemoveItem(item); err != nil {
		return err
	}
	p.inventory = append(p.inventory, item)
	return nil
}

// Drop moves item from the inventory into the player's current room.
func (p *Player) Drop(w *World, item Item) error {
	room := w.Room(p.Room)
	if room == nil {
		return fmt.Errorf("player location %s: %w", p.Room, ErrUnknownRoom)
	}
	idx := indexOfItem(p.inventory, item)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotHeld, item.Name)
	}
	p.inventory = slices.Delete(p.inventory, idx, idx+1)
	room.AddItem(item)
	return nil
}

func (p *Player) HasItem(item Item) bool {
	return indexOfItem(p.inventory, item) >= 0
}

// Inventory returns a copy of the items the player carries.
func (p *Player) Inventory() []Item {
	return slices.Clone(p.inventory)
}

// FindItem returns the first item called name, searching holders in order.
func FindItem(name string, holders ...[]Item) (Item, bool) {
	for _, items := range holders {
		for _, it := range items {
			if it.Name == name {
				return it, true
			}
		}
	}
	return Item{}, false
}
