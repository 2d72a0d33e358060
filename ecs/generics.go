package ecs

import (
	"sort"

	"github.com/milk9111/miniplatformer/ecs/component"
)

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
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return value, ok && value != nil
}

// Count returns the number of entities carrying kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}

// Query returns the entities carrying kind ordered by entity id.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	if w == nil {
		return nil
	}
	ids := w.store(kind.ID(), false).snapshot()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	ents := Query(w, kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// ForEach visits every entity carrying kind in id order. Entities destroyed
// or stripped of the component during the walk are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range Query(w, kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || w.store(kb.ID(), false) == nil || w.store(kc.ID(), false) == nil {
		return
	}
	for _, e := range Query(w, ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
