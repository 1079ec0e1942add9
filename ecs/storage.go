package ecs

// entityStore tracks entity generations, free slots and creation order.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
	order []Entity
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gens))
	}
	s.alive[id-1] = true
	e := makeEntity(id, s.gens[id-1])
	s.order = append(s.order, e)
	return e
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.alive[idx] = false
	s.gens[idx]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}

// live returns alive entities in creation order and compacts the order list.
func (s *entityStore) live() []Entity {
	out := make([]Entity, 0, len(s.order))
	kept := s.order[:0]
	for _, e := range s.order {
		if s.isAlive(e) {
			out = append(out, e)
			kept = append(kept, e)
		}
	}
	s.order = kept
	return out
}
