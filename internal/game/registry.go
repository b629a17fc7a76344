package game

import (
	"math/rand"
)

// Registry owns every room of one world. Transporter rooms draw their
// destinations from it.
type Registry struct {
	rooms []*Room
	rnd   *rand.Rand
}

// NewRegistry creates an empty registry drawing randomness from src.
func NewRegistry(src rand.Source) *Registry {
	return &Registry{rnd: rand.New(src)}
}

// NewRoom creates and registers a room with fixed exits.
func (r *Registry) NewRoom(description string) *Room {
	return r.add(newRoom(description, FixedExits{}))
}

// NewTransporterRoom creates and registers a room whose exits lead to a
// random registered room, whatever direction is asked for.
func (r *Registry) NewTransporterRoom(description string) *Room {
	return r.add(newRoom(description, &RandomExits{registry: r}))
}

func (r *Registry) add(room *Room) *Room {
	r.rooms = append(r.rooms, room)
	return room
}

// Rooms returns the registered rooms in registration order.
func (r *Registry) Rooms() []*Room {
	rooms := make([]*Room, len(r.rooms))
	copy(rooms, r.rooms)
	return rooms
}

// Len returns the number of registered rooms.
func (r *Registry) Len() int {
	return len(r.rooms)
}

// Random returns a uniformly chosen registered room, or nil if there are none.
func (r *Registry) Random() *Room {
	if len(r.rooms) == 0 {
		return nil
	}
	return r.rooms[r.rnd.Intn(len(r.rooms))]
}
