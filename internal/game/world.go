package game

const (
	// CookieName is the only item that can be eaten. Picking one up is
	// always allowed and never counts against the pickup limit.
	CookieName = "cookie"

	// MaxPickupsPerCookie is how many other items may be picked up after
	// eating a cookie before the player is hungry again.
	MaxPickupsPerCookie = 5
)

// World holds the state of one player's game. It is not safe for concurrent
// use; a session owns it exclusively.
type World struct {
	registry *Registry

	current  *Room
	previous *Room
	history  roomStack

	held              Holdable
	hasEaten          bool
	pickedSinceEating int
}

// NewWorld starts a game in start, which should belong to registry.
func NewWorld(registry *Registry, start *Room) *World {
	return &World{
		registry: registry,
		current:  start,
	}
}

// Registry returns the rooms of this world.
func (w *World) Registry() *Registry { return w.registry }

// Current returns the room the player is in.
func (w *World) Current() *Room { return w.current }

// Previous returns the room "back" leads to, or nil.
func (w *World) Previous() *Room { return w.previous }

// History returns the departed rooms, oldest first.
func (w *World) History() []*Room { return w.history.snapshot() }

// Held returns the item in the player's hand, or nil.
func (w *World) Held() Holdable { return w.held }

// HasEaten reports whether the player has ever eaten a cookie.
func (w *World) HasEaten() bool { return w.hasEaten }

// PickedSinceEating returns the number of non-cookie pickups since the last cookie.
func (w *World) PickedSinceEating() int { return w.pickedSinceEating }

// Go moves through the exit in direction. The departed room is recorded both
// as the previous room and on the history stack.
func (w *World) Go(direction string) (*Room, error) {
	next := w.current.Exit(direction)
	if next == nil {
		return nil, ErrNoExit
	}

	w.history.push(w.current)
	w.previous = w.current
	w.current = next
	return next, nil
}

// Back swaps the current and previous rooms. Calling it twice returns to
// where the player started. The departed room is pushed onto the history.
func (w *World) Back() (*Room, error) {
	if w.previous == nil {
		return nil, ErrNoPreviousRoom
	}

	departed := w.current
	w.current = w.previous
	w.previous = departed
	w.history.push(departed)
	return w.current, nil
}

// StackBack returns to the most recently departed room on the history stack.
// Nothing is pushed.
func (w *World) StackBack() (*Room, error) {
	if w.history.len() == 0 {
		return nil, ErrHistoryEmpty
	}

	w.previous = w.current
	w.current = w.history.pop()
	return w.current, nil
}

// Take picks up an item by name from the current room.
//
// Cookies can always be taken. Anything else requires a cookie to have been
// eaten and fewer than MaxPickupsPerCookie pickups since then.
func (w *World) Take(name string) (Holdable, error) {
	if w.held != nil {
		return nil, ErrAlreadyHolding
	}

	if name == CookieName {
		item := w.current.RemoveItem(name)
		if item == nil {
			return nil, ErrItemNotFound
		}
		w.held = item
		return item, nil
	}

	if !w.hasEaten {
		return nil, ErrNotEaten
	}
	if w.pickedSinceEating >= MaxPickupsPerCookie {
		return nil, ErrHungry
	}

	item := w.current.RemoveItem(name)
	if item == nil {
		return nil, ErrItemNotFound
	}
	w.held = item
	w.pickedSinceEating++
	return item, nil
}

// Drop puts the held item into the current room.
func (w *World) Drop() (Holdable, error) {
	if w.held == nil {
		return nil, ErrNotHolding
	}

	item := w.held
	w.current.AddItem(item)
	w.held = nil
	return item, nil
}

// Eat consumes a held cookie and resets the pickup counter.
func (w *World) Eat() error {
	if w.held == nil {
		return ErrNotHolding
	}
	if !IsCookie(w.held) {
		return ErrNotCookie
	}

	w.hasEaten = true
	w.pickedSinceEating = 0
	w.held = nil
	return nil
}

// Charge stores the current room in the held beamer.
func (w *World) Charge() (*Beamer, error) {
	b, err := w.heldBeamer()
	if err != nil {
		return nil, err
	}
	if !b.Charge(w.current) {
		return b, ErrAlreadyCharged
	}
	return b, nil
}

// Fire teleports the player to the room the held beamer was charged in.
// Unlike Go, the departed room is not pushed onto the history.
func (w *World) Fire() (*Room, error) {
	b, err := w.heldBeamer()
	if err != nil {
		return nil, err
	}

	dest := b.Fire()
	if dest == nil {
		return nil, ErrNotCharged
	}

	w.previous = w.current
	w.current = dest
	return dest, nil
}

func (w *World) heldBeamer() (*Beamer, error) {
	if w.held == nil {
		return nil, ErrNotHolding
	}
	b, ok := w.held.AsBeamer()
	if !ok {
		return nil, ErrNotBeamer
	}
	return b, nil
}
