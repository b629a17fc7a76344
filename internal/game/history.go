package game

// roomStack records rooms the player has left, most recent last.
type roomStack struct {
	rooms []*Room
}

func (s *roomStack) push(r *Room) {
	s.rooms = append(s.rooms, r)
}

// pop removes and returns the most recent room, or nil when empty.
func (s *roomStack) pop() *Room {
	if len(s.rooms) == 0 {
		return nil
	}
	r := s.rooms[len(s.rooms)-1]
	s.rooms[len(s.rooms)-1] = nil
	s.rooms = s.rooms[:len(s.rooms)-1]
	return r
}

func (s *roomStack) len() int {
	return len(s.rooms)
}

func (s *roomStack) snapshot() []*Room {
	out := make([]*Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}
