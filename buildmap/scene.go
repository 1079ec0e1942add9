package buildmap

import (
	"github.com/milk9111/vectorbuild/ecs"
	"github.com/milk9111/vectorbuild/ecs/component"
)

// Entity is a read-only snapshot of one scene entity. Optional records are
// nil when the entity does not carry them.
type Entity struct {
	Handle    ecs.Entity
	Name      string
	Tag       component.Tag
	Transform component.Transform

	Sprite          *component.Sprite
	RenderLayer     *component.RenderLayer
	Respawn         *component.RespawnSettings
	Spawn           *component.SpawnSettings
	TriggerSettings *component.TriggerSettings
	Model           *component.ModelProperties
	Animation       *component.AnimationProperties
	Zoom            *component.CustomZoom
	Dynamic         *component.DynamicTransform
	DynamicTrigger  *component.DynamicTrigger
}

// SortOrder is the renderer's order in layer, or 0 without a renderer.
func (e *Entity) SortOrder() int {
	if e.Sprite == nil || e.RenderLayer == nil {
		return 0
	}
	return e.RenderLayer.Order
}

// Layer is the renderer's sorting layer. Entities without a renderer sit on
// the default layer.
func (e *Entity) Layer() string {
	if e.Sprite == nil || e.RenderLayer == nil || e.RenderLayer.Layer == "" {
		return component.DefaultRenderLayer
	}
	return e.RenderLayer.Layer
}

// Position is the entity position in runtime units.
func (e *Entity) Position() Point {
	return ToOutputUnits(e.Transform.X, e.Transform.Y)
}

// Scene is everything the compiler reads. Implementations must not change
// while a compilation pass runs.
type Scene interface {
	// Tagged returns every entity with the tag, in discovery order.
	Tagged(tag component.Tag) []*Entity
	// Children returns the direct children of e, in scene order.
	Children(e *Entity) []*Entity
	// Parent returns the direct parent of e.
	Parent(e *Entity) (*Entity, bool)
	// Spawns returns every entity carrying spawn settings, whatever its tag.
	Spawns() []*Entity
}

// WorldScene adapts an ecs.World to Scene. The world is snapshotted when the
// scene is created.
type WorldScene struct {
	world    *ecs.World
	entities map[ecs.Entity]*Entity
	order    []*Entity
}

// NewWorldScene snapshots every entity that has an identity. Entities
// without one are not part of any scene file and are left out.
func NewWorldScene(w *ecs.World) *WorldScene {
	s := &WorldScene{world: w, entities: make(map[ecs.Entity]*Entity)}
	ecs.ForEach(w, component.IdentityComponent.Kind(), func(h ecs.Entity, id *component.Identity) {
		e := snapshot(w, h, id)
		s.entities[h] = e
		s.order = append(s.order, e)
	})
	return s
}

func snapshot(w *ecs.World, h ecs.Entity, id *component.Identity) *Entity {
	e := &Entity{Handle: h, Name: id.Name, Tag: id.Tag}
	if t, ok := ecs.Get(w, h, component.TransformComponent.Kind()); ok {
		e.Transform = *t
	} else {
		e.Transform = component.IdentityTransform()
	}
	e.Sprite = lookup(w, h, component.SpriteComponent.Kind())
	e.RenderLayer = lookup(w, h, component.RenderLayerComponent.Kind())
	e.Respawn = lookup(w, h, component.RespawnSettingsComponent.Kind())
	e.Spawn = lookup(w, h, component.SpawnSettingsComponent.Kind())
	e.TriggerSettings = lookup(w, h, component.TriggerSettingsComponent.Kind())
	e.Model = lookup(w, h, component.ModelPropertiesComponent.Kind())
	e.Animation = lookup(w, h, component.AnimationPropertiesComponent.Kind())
	e.Zoom = lookup(w, h, component.CustomZoomComponent.Kind())
	e.Dynamic = lookup(w, h, component.DynamicTransformComponent.Kind())
	e.DynamicTrigger = lookup(w, h, component.DynamicTriggerComponent.Kind())
	return e
}

// lookup copies the component so later world edits cannot leak into a pass.
func lookup[T any](w *ecs.World, h ecs.Entity, kind component.ComponentKind[T]) *T {
	v, ok := ecs.Get(w, h, kind)
	if !ok {
		return nil
	}
	cp := *v
	return &cp
}

func (s *WorldScene) Tagged(tag component.Tag) []*Entity {
	var out []*Entity
	for _, e := range s.order {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

func (s *WorldScene) Children(e *Entity) []*Entity {
	handles := ecs.Children(s.world, e.Handle)
	out := make([]*Entity, 0, len(handles))
	for _, h := range handles {
		if c, ok := s.entities[h]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *WorldScene) Parent(e *Entity) (*Entity, bool) {
	h, ok := ecs.Parent(s.world, e.Handle)
	if !ok {
		return nil, false
	}
	p, ok := s.entities[h]
	return p, ok
}

func (s *WorldScene) Spawns() []*Entity {
	var out []*Entity
	ecs.ForEach(s.world, component.SpawnSettingsComponent.Kind(), func(h ecs.Entity, _ *component.SpawnSettings) {
		if e, ok := s.entities[h]; ok {
			out = append(out, e)
		}
	})
	return out
}
