package ecs

import (
	"errors"

	"github.com/milk9111/vectorbuild/ecs/component"
)

var ErrHierarchyCycle = errors.New("ecs: parent would become its own descendant")

// SetParent moves child under parent, appending it to parent's child list.
func SetParent(w *World, child, parent Entity) error {
	if w == nil || !w.entities.isAlive(child) || !w.entities.isAlive(parent) {
		return component.ErrEntityNotAlive
	}
	for p, ok := parent, true; ok; p, ok = w.parents[p] {
		if p == child {
			return ErrHierarchyCycle
		}
	}
	detach(w, child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Parent returns the direct parent of e.
func Parent(w *World, e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns the direct children of e in insertion order.
func Children(w *World, e Entity) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.children[e]...)
}

func detach(w *World, child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	siblings := w.children[parent]
	for i, s := range siblings {
		if s == child {
			w.children[parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	delete(w.parents, child)
}
