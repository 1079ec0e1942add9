package ecs

import "github.com/milk9111/vectorbuild/ecs/component"

// World owns scene entities, their components and the parent/child links
// between them. It is filled once by a scene loader and then only read.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	parents  map[Entity]Entity
	children map[Entity][]Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
}

// CreateEntity allocates a new root entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes e, its components and its whole subtree.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, child := range append([]Entity(nil), w.children[e]...) {
		DestroyEntity(w, child)
	}
	detach(w, e)
	delete(w.children, e)
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// Entities returns every live entity in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if s, ok := w.stores[id]; ok || !create {
		return s
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}
