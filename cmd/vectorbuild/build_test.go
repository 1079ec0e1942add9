package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/vectorbuild/config"
	"github.com/milk9111/vectorbuild/packaging"
)

func TestBuildEmbeddedScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "downtown.yaml"
	cfg.OutputDir = t.TempDir()
	cfg.Level.MapName = "DOWNTOWN_TEST"
	require.NoError(t, cfg.Resolve(config.Flags{Mode: "xml"}))

	res, err := build(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, packaging.ModeXML, res.Mode)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "level_xml", "DOWNTOWN_TEST.xml"), res.LevelPath)

	data, err := os.ReadFile(res.LevelPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, string(data), `ClassName="window_lit"`)
}

func TestBuildKeepsGoingOnEntityErrors(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(scene, []byte(`
name: broken
entities:
  - name: car
    tag: Model
  - name: crate
    tag: Object
    components:
      transform: { x: 1, y: 1 }
`), 0o644))

	cfg := config.Default()
	cfg.OutputDir = dir
	require.NoError(t, cfg.Resolve(config.Flags{Scene: scene, Mode: "zlib"}))

	res, err := build(context.Background(), cfg)
	require.NoError(t, err)
	assert.FileExists(t, res.ArchivePath)

	data, err := os.ReadFile(res.LevelPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<Object Name="crate" X="100" Y="-100" />`)
	assert.NotContains(t, string(data), `ClassName="car"`)
}

func TestRebuildMessage(t *testing.T) {
	msg := rebuildMessage(filepath.Join("scenes", "downtown.yaml"), time.Now().Add(-3*time.Minute))
	assert.Equal(t, "downtown.yaml changed, rebuilding (last build 3 minutes ago)", msg)
}

func TestBuildMissingScene(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, cfg.Resolve(config.Flags{Scene: filepath.Join(t.TempDir(), "nope.yaml"), Mode: "xml"}))

	_, err := build(context.Background(), cfg)
	require.Error(t, err)
}
