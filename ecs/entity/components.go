package entity

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/milk9111/vectorbuild/ecs"
	"github.com/milk9111/vectorbuild/ecs/component"
	"github.com/milk9111/vectorbuild/scenes"
)

type transformSpec = scenes.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.IdentityTransform()
	t.X, t.Y, t.Rotation = spec.X, spec.Y, spec.Rotation
	if spec.ScaleX != nil {
		t.ScaleX = *spec.ScaleX
	}
	if spec.ScaleY != nil {
		t.ScaleY = *spec.ScaleY
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

type spriteSpec = scenes.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	width, height := spec.Width, spec.Height
	if (width == 0 || height == 0) && spec.Image != "" {
		path := spec.Image
		if !filepath.IsAbs(path) && ctx != nil && ctx.BaseDir != "" {
			path = filepath.Join(ctx.BaseDir, path)
		}
		iw, ih, err := scenes.ImageBounds(path, spec.PixelsPerUnit)
		if err != nil {
			return err
		}
		if width == 0 {
			width = iw
		}
		if height == 0 {
			height = ih
		}
	}

	tint := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if spec.Color != nil {
		tint = spec.Color.NRGBA
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:  spec.Image,
		Width:  width,
		Height: height,
		FlipX:  spec.FlipX,
		FlipY:  spec.FlipY,
		Color:  tint,
	})
}

type renderLayerSpec = scenes.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	layer := spec.Layer
	if layer == "" {
		layer = component.DefaultRenderLayer
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Layer: layer, Order: spec.Order})
}

type respawnSpec = scenes.RespawnComponentSpec

func addRespawn(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[respawnSpec](raw)
	if err != nil {
		return fmt.Errorf("decode respawn spec: %w", err)
	}
	return ecs.Add(w, e, component.RespawnSettingsComponent.Kind(), &component.RespawnSettings{
		RespawnName:     spec.RespawnName,
		TriggerName:     spec.TriggerName,
		SpawnModel:      spec.SpawnModel,
		DelaySeconds:    spec.RespawnSeconds,
		RespawnOnScreen: spec.RespawnOnScreen,
	})
}

type spawnSpec = scenes.SpawnComponentSpec

func addSpawn(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[spawnSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spawn spec: %w", err)
	}
	return ecs.Add(w, e, component.SpawnSettingsComponent.Kind(), &component.SpawnSettings{
		SpawnName:       spec.SpawnName,
		SpawnAnimation:  spec.Animation,
		RefersToRespawn: spec.RefersToRespawn,
	})
}

type triggerSettingsSpec = scenes.TriggerSettingsComponentSpec

func addTriggerSettings(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[triggerSettingsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trigger_settings spec: %w", err)
	}
	return ecs.Add(w, e, component.TriggerSettingsComponent.Kind(), &component.TriggerSettings{Content: spec.Content})
}

type modelPropertiesSpec = scenes.ModelPropertiesComponentSpec

func addModelProperties(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[modelPropertiesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode model_properties spec: %w", err)
	}
	return ecs.Add(w, e, component.ModelPropertiesComponent.Kind(), &component.ModelProperties{
		Type:        spec.Type,
		LifeTime:    spec.LifeTime,
		UseLifeTime: spec.UseLifeTime,
	})
}

type animationPropertiesSpec = scenes.AnimationPropertiesComponentSpec

func addAnimationProperties(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[animationPropertiesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation_properties spec: %w", err)
	}
	return ecs.Add(w, e, component.AnimationPropertiesComponent.Kind(), &component.AnimationProperties{
		Width:        spec.Width,
		Height:       spec.Height,
		Type:         spec.Type,
		Direction:    spec.Direction,
		Acceleration: spec.Acceleration,
		ScaleX:       spec.ScaleX,
		ScaleY:       spec.ScaleY,
		Time:         spec.Time,
	})
}

type customZoomSpec = scenes.CustomZoomComponentSpec

func addCustomZoom(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[customZoomSpec](raw)
	if err != nil {
		return fmt.Errorf("decode custom_zoom spec: %w", err)
	}
	return ecs.Add(w, e, component.CustomZoomComponent.Kind(), &component.CustomZoom{ZoomAmount: spec.ZoomAmount})
}

type dynamicTransformSpec = scenes.DynamicTransformComponentSpec

func addDynamicTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[dynamicTransformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode dynamic_transform spec: %w", err)
	}
	if len(spec.Intervals) > component.MaxMoveIntervals {
		return fmt.Errorf("dynamic_transform %q: %d intervals, at most %d allowed", spec.Name, len(spec.Intervals), component.MaxMoveIntervals)
	}

	dt := &component.DynamicTransform{Name: spec.Name}
	for i, iv := range spec.Intervals {
		enabled := true
		if iv.Enabled != nil {
			enabled = *iv.Enabled
		}
		dt.Intervals[i] = component.MoveInterval{
			Enabled:  enabled,
			Duration: iv.Duration,
			Delay:    iv.Delay,
			SupportX: iv.SupportX,
			SupportY: iv.SupportY,
			MoveX:    iv.MoveX,
			MoveY:    iv.MoveY,
		}
	}
	return ecs.Add(w, e, component.DynamicTransformComponent.Kind(), dt)
}

type dynamicTriggerSpec = scenes.DynamicTriggerComponentSpec

func addDynamicTrigger(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := scenes.DecodeComponentSpec[dynamicTriggerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode dynamic_trigger spec: %w", err)
	}
	return ecs.Add(w, e, component.DynamicTriggerComponent.Kind(), &component.DynamicTrigger{
		TransformName: spec.TransformName,
		AIAllowed:     spec.AIAllowed,
		PlaySound:     spec.PlaySound,
		Sound:         spec.Sound,
	})
}
