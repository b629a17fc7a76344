package game

// ExitResolver decides where a direction leads from a room.
type ExitResolver interface {
	Resolve(from *Room, direction string) *Room
}

// FixedExits follows the room's exit map.
type FixedExits struct{}

func (FixedExits) Resolve(from *Room, direction string) *Room {
	return from.exits[direction]
}

// RandomExits ignores the direction and picks any registered room,
// possibly the one the player is standing in.
type RandomExits struct {
	registry *Registry
}

func (e *RandomExits) Resolve(_ *Room, _ string) *Room {
	return e.registry.Random()
}
