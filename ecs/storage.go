package ecs

import "sort"

// entityStore tracks entity generations and free ids. Ids start at 1.
type entityStore struct {
	gens  []generation
	alive []bool
	// free is kept sorted so the smallest id is reused first; a batch of
	// entities created in order therefore also iterates in that order.
	free  []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[0]
		s.free = s.free[1:]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gens))
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.alive[idx] = false
	s.gens[idx]++

	pos := sort.Search(len(s.free), func(i int) bool { return s.free[i] >= e.id() })
	s.free = append(s.free, 0)
	copy(s.free[pos+1:], s.free[pos:])
	s.free[pos] = e.id()
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}

// current returns the live handle for id.
func (s *entityStore) current(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(s.gens) || !s.alive[id-1] {
		return 0, false
	}
	return makeEntity(id, s.gens[id-1]), true
}
