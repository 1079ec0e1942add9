package entity

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/milk9111/vectorbuild/ecs"
	"github.com/milk9111/vectorbuild/ecs/component"
	"github.com/milk9111/vectorbuild/scenes"
)

type buildContext struct {
	// BaseDir resolves relative sprite image paths.
	BaseDir string
	Path    string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":            addTransform,
	"sprite":               addSprite,
	"render_layer":         addRenderLayer,
	"respawn":              addRespawn,
	"spawn":                addSpawn,
	"trigger_settings":     addTriggerSettings,
	"model_properties":     addModelProperties,
	"animation_properties": addAnimationProperties,
	"custom_zoom":          addCustomZoom,
	"dynamic_transform":    addDynamicTransform,
	"dynamic_trigger":      addDynamicTrigger,
}

var componentBuildOrder = []string{
	"transform",
	"sprite",
	"render_layer",
	"respawn",
	"spawn",
	"trigger_settings",
	"model_properties",
	"animation_properties",
	"custom_zoom",
	"dynamic_transform",
	"dynamic_trigger",
}

// LoadScene reads a scene file and instantiates it into a new world.
func LoadScene(path string) (*ecs.World, error) {
	spec, err := scenes.LoadSceneSpec(path)
	if err != nil {
		return nil, err
	}
	w := ecs.NewWorld()
	if err := BuildScene(w, spec, filepath.Dir(path)); err != nil {
		return nil, err
	}
	return w, nil
}

// BuildScene instantiates every root entity of spec, children included,
// in file order.
func BuildScene(w *ecs.World, spec scenes.SceneSpec, baseDir string) error {
	if w == nil {
		return fmt.Errorf("build scene: world is nil")
	}
	ctx := &buildContext{BaseDir: baseDir}
	for i, es := range spec.Entities {
		ctx.Path = fmt.Sprintf("entities[%d]", i)
		if _, err := BuildEntity(w, es, ctx); err != nil {
			return fmt.Errorf("build scene %q: %w", spec.Name, err)
		}
	}
	return nil
}

// BuildEntity creates one entity and, recursively, its children. On failure
// the partially built subtree is destroyed.
func BuildEntity(w *ecs.World, spec scenes.EntitySpec, ctx *buildContext) (ecs.Entity, error) {
	if ctx == nil {
		ctx = &buildContext{}
	}
	tag, err := component.ParseTag(spec.Tag)
	if err != nil {
		return 0, fmt.Errorf("build entity: %s %q: %w", ctx.Path, spec.Name, err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.IdentityComponent.Kind(), &component.Identity{Name: spec.Name, Tag: tag}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %s %q: no builder for component %q", ctx.Path, spec.Name, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %s %q: add %q: %w", ctx.Path, spec.Name, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := build(name); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, err
			}
		}
	}

	if !ecs.Has(w, e, component.TransformComponent.Kind()) {
		t := component.IdentityTransform()
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &t)
	}

	parentPath := ctx.Path
	for i, child := range spec.Children {
		ctx.Path = fmt.Sprintf("%s.children[%d]", parentPath, i)
		c, err := BuildEntity(w, child, ctx)
		if err != nil {
			ctx.Path = parentPath
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		if err := ecs.SetParent(w, c, e); err != nil {
			ctx.Path = parentPath
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	ctx.Path = parentPath

	return e, nil
}
