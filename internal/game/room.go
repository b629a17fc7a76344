package game

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-errors"
	"github.com/zyedidia/generic/mapset"
)

// RoomSpec defines a room loaded from asset files.
type RoomSpec struct {
	Description string            `json:"description"`
	Transporter bool              `json:"transporter,omitempty"`
	Exits       map[string]string `json:"exits"`           // direction -> room id
	Items       []string          `json:"items,omitempty"` // item ids; list duplicates for multiple
}

// Validate satisfies storage.ValidatingSpec.
// Exit and item references are checked when the layout is built.
func (r *RoomSpec) Validate() error {
	el := errors.NewErrorList()

	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for dir, roomId := range r.Exits {
		if dir == "" {
			el.Add(fmt.Errorf("exit direction must not be empty"))
		}
		if roomId == "" {
			el.Add(fmt.Errorf("exit %s: room id is required", dir))
		}
	}

	for i, itemId := range r.Items {
		if itemId == "" {
			el.Add(fmt.Errorf("item %d: id is required", i))
		}
	}

	return el.Err()
}

// Room is a node in the world graph. Exits point at other rooms and may form
// cycles.
type Room struct {
	description string
	exits       map[string]*Room
	items       mapset.Set[Holdable]
	resolver    ExitResolver
}

func newRoom(description string, resolver ExitResolver) *Room {
	return &Room{
		description: description,
		exits:       make(map[string]*Room),
		items:       mapset.New[Holdable](),
		resolver:    resolver,
	}
}

// Description returns the short description, e.g. "in the campus pub".
func (r *Room) Description() string {
	return r.description
}

// SetExit links direction to room, replacing any previous link.
func (r *Room) SetExit(direction string, room *Room) {
	r.exits[direction] = room
}

// Exit returns the room that direction leads to, or nil if there is none.
func (r *Room) Exit(direction string) *Room {
	return r.resolver.Resolve(r, direction)
}

// ExitNames returns the configured directions in sorted order.
func (r *Room) ExitNames() []string {
	return slices.Sorted(maps.Keys(r.exits))
}

// IsTransporter reports whether the room sends the player somewhere random.
func (r *Room) IsTransporter() bool {
	_, ok := r.resolver.(*RandomExits)
	return ok
}

// AddItem places an item in the room.
func (r *Room) AddItem(item Holdable) {
	r.items.Put(item)
}

// RemoveItem takes out an item with exactly the given name.
// Returns nil if no such item is present.
func (r *Room) RemoveItem(name string) Holdable {
	for _, item := range r.Items() {
		if item.Name() == name {
			r.items.Remove(item)
			return item
		}
	}
	return nil
}

// HasItem reports whether an item with the given name is present.
func (r *Room) HasItem(name string) bool {
	found := false
	r.items.Each(func(item Holdable) {
		if item.Name() == name {
			found = true
		}
	})
	return found
}

// Items returns the items in the room ordered by name, then description.
func (r *Room) Items() []Holdable {
	items := make([]Holdable, 0, r.items.Size())
	r.items.Each(func(item Holdable) {
		items = append(items, item)
	})
	slices.SortFunc(items, func(a, b Holdable) int {
		return cmp.Or(
			cmp.Compare(a.Name(), b.Name()),
			cmp.Compare(a.Description(), b.Description()),
			cmp.Compare(a.Id(), b.Id()),
		)
	})
	return items
}

// ItemCount returns the number of items in the room.
func (r *Room) ItemCount() int {
	return r.items.Size()
}
