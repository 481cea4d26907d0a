package ecs

// SparseSet stores one component type keyed by entity id. Values are kept
// as `any`; the typed accessors in generics.go do the assertion.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

func (s *SparseSet) index(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx].id() != id {
		return 0, false
	}
	return idx, true
}

// Has reports whether the set holds a value for this exact handle.
func (s *SparseSet) Has(e Entity) bool {
	idx, ok := s.index(e.id())
	return ok && s.dense[idx] == e
}

// Get returns the value for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.index(e.id())
	if !ok || s.dense[idx] != e {
		return nil
	}
	return s.values[idx]
}

// Set inserts or replaces the value for e. A stale handle for the same id
// is overwritten.
func (s *SparseSet) Set(e Entity, v any) {
	id := e.id()
	if s == nil || id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.index(id); ok {
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove deletes the value for e's id. It reports whether anything was
// removed.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.index(e.id())
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns a copy of the dense entity list, safe to hold while the
// set is mutated.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.dense...)
}
