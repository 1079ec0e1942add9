package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/vectorbuild/buildmap"
	"github.com/milk9111/vectorbuild/packaging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectorbuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvGameDir, "")
	t.Setenv(EnvBuildMode, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, packaging.ModeXML, cfg.Mode)
	assert.Equal(t, buildmap.DefaultSettings(), cfg.Level)
	assert.Equal(t, packaging.DefaultProcessName, cfg.ProcessName)
	assert.Empty(t, cfg.GameDir)
}

func TestLoadFileKeepsUnsetDefaults(t *testing.T) {
	t.Setenv(EnvGameDir, "")
	t.Setenv(EnvBuildMode, "")
	path := writeConfig(t, `
scene: scenes/harbor.yaml
mode: zlib
level:
  map_name: HARBOR_01
  music: { name: music_calm }
  roster:
    hunter: { trick_allowed: true }
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scenes/harbor.yaml", cfg.Scene)
	assert.Equal(t, packaging.ModeZlib, cfg.Mode)
	assert.Equal(t, "HARBOR_01", cfg.Level.MapName)
	assert.Equal(t, "music_calm", cfg.Level.Music.Name)
	assert.Equal(t, "0.3", cfg.Level.Music.Volume)
	assert.True(t, cfg.Level.Roster.Hunter.TrickAllowed)
	assert.Equal(t, "Hunter", cfg.Level.Roster.Hunter.Name)
	assert.True(t, cfg.Level.CorrectFactorPosition)
	assert.Equal(t, "build", cfg.OutputDir)
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv(EnvGameDir, "/games/vector")
	t.Setenv(EnvBuildMode, "dz")

	cfg, err := Load(writeConfig(t, "scene: a.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "/games/vector", cfg.GameDir)
	assert.Equal(t, packaging.ModeDZ, cfg.Mode)

	cfg, err = Load(writeConfig(t, "game_dir: /opt/vector\nmode: xml\n"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/vector", cfg.GameDir)
	assert.Equal(t, packaging.ModeXML, cfg.Mode)

	t.Setenv(EnvConfig, writeConfig(t, "scene: from_env.yaml\n"))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "from_env.yaml", cfg.Scene)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	_, err = Load(writeConfig(t, "scene: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestResolve(t *testing.T) {
	off := false
	tests := []struct {
		name    string
		flags   Flags
		check   func(t *testing.T, c Config)
		wantErr bool
	}{
		{
			name:  "no_flags",
			flags: Flags{},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "scenes/downtown.yaml", c.Scene)
				assert.Equal(t, packaging.ModeXML, c.Mode)
				assert.True(t, c.Level.CorrectFactorPosition)
			},
		},
		{
			name:  "overrides",
			flags: Flags{Scene: "x.yaml", OutputDir: "out", Mode: "zlib", GameDir: "/g", Watch: true, CorrectFactor: &off},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "x.yaml", c.Scene)
				assert.Equal(t, "out", c.OutputDir)
				assert.Equal(t, packaging.ModeZlib, c.Mode)
				assert.Equal(t, "/g", c.GameDir)
				assert.True(t, c.Watch)
				assert.False(t, c.Level.CorrectFactorPosition)

				opts := c.PackagingOptions()
				assert.Equal(t, "out", opts.OutDir)
				assert.Equal(t, "/g", opts.GameDir)
			},
		},
		{name: "bad_mode", flags: Flags{Mode: "rar"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Mode = packaging.ModeXML
			err := cfg.Resolve(tc.flags)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}
