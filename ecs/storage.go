package ecs

// entityStore tracks entity generations and recycled ids.
type entityStore struct {
	nextID entityID
	gens   []generation
	free   []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for int(id) > len(s.gens) {
		s.gens = append(s.gens, 0)
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) || s.gens[id-1] != e.generation() {
		return false
	}
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.gens[id-1] == e.generation()
}
