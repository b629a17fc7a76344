package game

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Holdable is anything that can lie in a room or sit in the player's hand.
type Holdable interface {
	Id() string
	Name() string
	Description() string
	Weight() float64

	// Describe returns "<name>: <description> that weighs <weight>kg."
	Describe() string

	// AsBeamer reports whether the item can be charged and fired.
	AsBeamer() (*Beamer, bool)
}

// Item is a plain object. It cannot be changed once created.
type Item struct {
	id          string
	name        string
	description string
	weight      float64
}

// NewItem creates an item with a fresh instance id.
func NewItem(name, description string, weight float64) *Item {
	return &Item{
		id:          uuid.New().String(),
		name:        name,
		description: description,
		weight:      weight,
	}
}

func (i *Item) Id() string          { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Weight() float64     { return i.weight }

func (i *Item) Describe() string {
	return fmt.Sprintf("%s: %s that weighs %skg.", i.name, i.description, formatWeight(i.weight))
}

func (i *Item) AsBeamer() (*Beamer, bool) { return nil, false }

// IsCookie reports whether h is edible.
func IsCookie(h Holdable) bool {
	return h != nil && h.Name() == CookieName
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
