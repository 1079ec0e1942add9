package entity

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/vectorbuild/ecs"
	"github.com/milk9111/vectorbuild/ecs/component"
	"github.com/milk9111/vectorbuild/scenes"
)

func findByName(w *ecs.World, name string) (ecs.Entity, bool) {
	for _, e := range ecs.Entities(w) {
		id, ok := ecs.Get(w, e, component.IdentityComponent.Kind())
		if ok && id.Name == name {
			return e, true
		}
	}
	return 0, false
}

func TestBuildEmbeddedScene(t *testing.T) {
	spec, err := scenes.LoadSceneSpec("downtown.yaml")
	require.NoError(t, err)

	w := ecs.NewWorld()
	require.NoError(t, BuildScene(w, spec, ""))

	elevator, ok := findByName(w, "elevator")
	require.True(t, ok)
	kids := ecs.Children(w, elevator)
	require.Len(t, kids, 3)

	floor, ok := findByName(w, "elevator_floor")
	require.True(t, ok)
	parent, ok := ecs.Parent(w, floor)
	require.True(t, ok)
	assert.Equal(t, elevator, parent)

	dt, ok := ecs.Get(w, elevator, component.DynamicTransformComponent.Kind())
	require.True(t, ok)
	assert.True(t, dt.Intervals[0].Enabled)
	assert.True(t, dt.Intervals[1].Enabled)
	assert.False(t, dt.Intervals[2].Enabled)

	spawn, ok := findByName(w, "PlayerSpawn")
	require.True(t, ok)
	tr, ok := ecs.Get(w, spawn, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 1.0, tr.ScaleX)
	assert.Equal(t, 1.0, tr.ScaleY)

	lamp, ok := findByName(w, "street_lamp")
	require.True(t, ok)
	id, _ := ecs.Get(w, lamp, component.IdentityComponent.Kind())
	assert.Equal(t, component.TagTopImage, id.Tag)
}

func TestBuildEntityDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, scenes.EntitySpec{
		Name: "crate",
		Tag:  "Image",
		Components: map[string]any{
			"sprite":       map[string]any{"width": 1, "height": 2},
			"render_layer": map[string]any{"order": 3},
		},
	}, nil)
	require.NoError(t, err)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok, "transform is always present")
	assert.Equal(t, component.IdentityTransform(), *tr)

	sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, sp.Color)
	assert.False(t, sp.Tinted())

	rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.DefaultRenderLayer, rl.Layer)
	assert.Equal(t, 3, rl.Order)
}

func TestBuildEntityFailures(t *testing.T) {
	tests := []struct {
		name    string
		spec    scenes.EntitySpec
		wantErr string
	}{
		{
			name:    "unknown_tag",
			spec:    scenes.EntitySpec{Name: "x", Tag: "Lava"},
			wantErr: "unknown tag",
		},
		{
			name: "unknown_component",
			spec: scenes.EntitySpec{Name: "x", Tag: "Object", Components: map[string]any{
				"physics_body": map[string]any{"mass": 1},
			}},
			wantErr: `no builder for component "physics_body"`,
		},
		{
			name: "too_many_intervals",
			spec: scenes.EntitySpec{Name: "x", Tag: "Dynamic", Components: map[string]any{
				"dynamic_transform": map[string]any{
					"name":      "T",
					"intervals": []any{map[string]any{}, map[string]any{}, map[string]any{}, map[string]any{}, map[string]any{}, map[string]any{}},
				},
			}},
			wantErr: "at most 5",
		},
		{
			name: "bad_child",
			spec: scenes.EntitySpec{Name: "parent", Tag: "Dynamic", Children: []scenes.EntitySpec{
				{Name: "ok", Tag: "Image"},
				{Name: "bad", Tag: "Nope"},
			}},
			wantErr: "children[1]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntity(w, tc.spec, &buildContext{Path: "entities[0]"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Empty(t, ecs.Entities(w), "failed entity subtree must be destroyed")
		})
	}
}

func TestSpriteBoundsFromImage(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "sign.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 200, 50))))
	require.NoError(t, f.Close())

	scenePath := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(`name: signs
entities:
  - name: sign
    tag: Image
    components:
      sprite: { image: sign.png }
`), 0o644))

	w, err := LoadScene(scenePath)
	require.NoError(t, err)

	e, ok := findByName(w, "sign")
	require.True(t, ok)
	sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 2.0, sp.Width, 1e-9)
	assert.InDelta(t, 0.5, sp.Height, 1e-9)
}
