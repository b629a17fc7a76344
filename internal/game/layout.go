package game

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"

	"github.com/pixil98/go-errors"
)

// Layout is the static definition of a world: rooms, the items in them, and
// where the player starts. A layout can be built any number of times; each
// build yields an independent set of rooms and items.
type Layout struct {
	Rooms map[string]*RoomSpec
	Items map[string]*ItemSpec
	Start string
}

// Validate checks that every reference in the layout resolves.
func (l *Layout) Validate() error {
	el := errors.NewErrorList()

	if l.Start == "" {
		el.Add(ErrNoStartRoom)
	} else if _, ok := l.Rooms[l.Start]; !ok {
		el.Add(fmt.Errorf("start %q: %w", l.Start, ErrUnknownRoom))
	}

	for _, id := range slices.Sorted(maps.Keys(l.Rooms)) {
		spec := l.Rooms[id]
		for _, dir := range slices.Sorted(maps.Keys(spec.Exits)) {
			if _, ok := l.Rooms[spec.Exits[dir]]; !ok {
				el.Add(fmt.Errorf("room %q exit %s -> %q: %w", id, dir, spec.Exits[dir], ErrUnknownRoom))
			}
		}
		for _, itemId := range spec.Items {
			if _, ok := l.Items[itemId]; !ok {
				el.Add(fmt.Errorf("room %q item %q: %w", id, itemId, ErrUnknownItem))
			}
		}
	}

	return el.Err()
}

// Build creates the layout's rooms in registry and returns the start room.
// Rooms are registered in id order so a seeded registry behaves the same
// on every build.
func (l *Layout) Build(registry *Registry) (*Room, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	ids := slices.Sorted(maps.Keys(l.Rooms))
	rooms := make(map[string]*Room, len(ids))
	for _, id := range ids {
		spec := l.Rooms[id]
		if spec.Transporter {
			rooms[id] = registry.NewTransporterRoom(spec.Description)
		} else {
			rooms[id] = registry.NewRoom(spec.Description)
		}
	}

	for _, id := range ids {
		spec := l.Rooms[id]
		for dir, to := range spec.Exits {
			rooms[id].SetExit(dir, rooms[to])
		}
		for _, itemId := range spec.Items {
			rooms[id].AddItem(l.Items[itemId].Instantiate())
		}
	}

	return rooms[l.Start], nil
}

// NewWorld builds a fresh world from the layout using src for randomness.
func (l *Layout) NewWorld(src rand.Source) (*World, error) {
	registry := NewRegistry(src)
	start, err := l.Build(registry)
	if err != nil {
		return nil, err
	}
	return NewWorld(registry, start), nil
}

// Campus returns the university layout the game ships with.
func Campus() *Layout {
	return &Layout{
		Start: "outside",
		Items: map[string]*ItemSpec{
			"cookie-chocolate": {Name: "cookie", Description: "a chocolate cookie", Weight: 2, TypeStr: "other"},
			"cookie-white":     {Name: "cookie", Description: "a white chocolate cookie", Weight: 2, TypeStr: "other"},
			"chair1":           {Name: "chair1", Description: "a wooden chair", Weight: 5, TypeStr: "other"},
			"chair2":           {Name: "chair2", Description: "a wooden chair", Weight: 5, TypeStr: "other"},
			"bar":              {Name: "bar", Description: "a long bar with stools", Weight: 95.67, TypeStr: "other"},
			"computer1":        {Name: "computer1", Description: "a PC", Weight: 10, TypeStr: "other"},
			"computer2":        {Name: "computer2", Description: "a Mac", Weight: 5, TypeStr: "other"},
			"computer3":        {Name: "computer3", Description: "a PC", Weight: 10, TypeStr: "other"},
			"tree1":            {Name: "tree1", Description: "a fir tree", Weight: 500.5, TypeStr: "other"},
			"tree2":            {Name: "tree2", Description: "a fir tree", Weight: 500.5, TypeStr: "other"},
			"beamer1":          {Name: "beamer1", Description: "a portable teleportation device", Weight: 3.5, TypeStr: "beamer"},
			"beamer2":          {Name: "beamer2", Description: "a portable teleportation device", Weight: 3.5, TypeStr: "beamer"},
		},
		Rooms: map[string]*RoomSpec{
			"outside": {
				Description: "outside the main entrance of the university",
				Exits:       map[string]string{"east": "theatre", "south": "lab", "west": "pub", "north": "transporter"},
				Items:       []string{"tree1", "tree2"},
			},
			"theatre": {
				Description: "in a lecture theatre",
				Exits:       map[string]string{"west": "outside"},
				Items:       []string{"cookie-chocolate", "beamer1"},
			},
			"pub": {
				Description: "in the campus pub",
				Exits:       map[string]string{"east": "outside"},
				Items:       []string{"bar", "cookie-white", "beamer2"},
			},
			"lab": {
				Description: "in a computing lab",
				Exits:       map[string]string{"north": "outside", "east": "office"},
				Items:       []string{"chair1", "computer1", "chair2", "computer2"},
			},
			"office": {
				Description: "in the computing admin office",
				Exits:       map[string]string{"west": "lab"},
				Items:       []string{"cookie-white", "computer3"},
			},
			"transporter": {
				Description: "in a mysterious transporter room",
				Transporter: true,
				Exits:       map[string]string{"south": "outside"},
			},
		},
	}
}
