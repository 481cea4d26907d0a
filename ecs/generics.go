package ecs

import "github.com/milk9111/floater/ecs/component"

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.Get(e).(*T)
	return v, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	s := w.store(kind.ID(), false)
	if s == nil || !s.Has(e) {
		return false
	}
	return s.Remove(e)
}
