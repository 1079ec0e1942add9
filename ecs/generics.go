package ecs

import (
	"fmt"

	"github.com/milk9111/vectorbuild/ecs/component"
)

// Add stores value as e's kind component, replacing any previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s on %s", component.ErrEntityNotAlive, kind, e)
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s on %s", component.ErrNilComponent, kind, e)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	raw, ok := w.store(kind.ID(), false).Get(e)
	if !ok {
		return nil, false
	}
	v, ok := raw.(*T)
	return v, ok && v != nil
}

// ForEach visits entities holding kind in creation order, not store order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	if w.store(kind.ID(), false).Len() == 0 {
		return
	}
	for _, e := range w.entities.live() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}
