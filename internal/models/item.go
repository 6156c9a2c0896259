package models

import "fmt"

// Item is something a player can pick up. Items are passed by value and never
// modified after creation.
type Item struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"` // kilograms
}

func NewItem(name, description string, weight float64) Item {
	return Item{Name: name, Description: description, Weight: weight}
}

// Equal reports whether two items are the same logical item. Weight is not
// part of an item's identity.
func (i Item) Equal(other Item) bool {
	return i.Name == other.Name && i.Description == other.Description
}

func (i Item) String() string {
	return fmt.Sprintf("%s (%.1fkg)", i.Name, i.Weight)
}

func indexOfItem(items []Item, item Item) int {
	for idx, it := range items {
		if it.Equal(item) {
			return idx
		}
	}
	return -1
}
