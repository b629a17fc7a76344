package game

// Beamer is a teleportation device. Charging it remembers a room; firing it
// returns that room and leaves the beamer empty again.
type Beamer struct {
	Item

	charged      bool
	chargingRoom *Room
}

// NewBeamer creates an uncharged beamer.
func NewBeamer(name, description string, weight float64) *Beamer {
	return &Beamer{Item: *NewItem(name, description, weight)}
}

func (b *Beamer) AsBeamer() (*Beamer, bool) { return b, true }

// IsCharged reports whether the beamer holds a destination.
func (b *Beamer) IsCharged() bool {
	return b.charged
}

// ChargingRoom returns the captured destination, or nil when uncharged.
func (b *Beamer) ChargingRoom() *Room {
	return b.chargingRoom
}

// Charge captures room as the destination. It returns false and changes
// nothing if the beamer is already charged.
func (b *Beamer) Charge(room *Room) bool {
	if b.charged {
		return false
	}
	b.chargingRoom = room
	b.charged = true
	return true
}

// Fire returns the captured room and discharges the beamer.
// It returns nil if the beamer was not charged.
func (b *Beamer) Fire() *Room {
	if !b.charged {
		return nil
	}
	dest := b.chargingRoom
	b.chargingRoom = nil
	b.charged = false
	return dest
}
