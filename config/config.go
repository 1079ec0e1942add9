package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/vectorbuild/buildmap"
	"github.com/milk9111/vectorbuild/packaging"
)

const (
	EnvConfig    = "VECTOR_CONFIG"
	EnvGameDir   = "VECTOR_GAME_DIR"
	EnvBuildMode = "VECTOR_BUILD_MODE"
)

// Config is the build configuration. Fields missing from the file keep the
// values from Default.
type Config struct {
	Scene       string            `yaml:"scene"`
	OutputDir   string            `yaml:"output_dir"`
	GameDir     string            `yaml:"game_dir"`
	Mode        packaging.Mode    `yaml:"mode"`
	AssetDir    string            `yaml:"asset_dir"`
	ScriptDir   string            `yaml:"script_dir"`
	Script      string            `yaml:"script"`
	ProcessName string            `yaml:"process_name"`
	Watch       bool              `yaml:"watch"`
	Level       buildmap.Settings `yaml:"level"`
}

// Flags are command line overrides. Zero values leave the config alone.
type Flags struct {
	Scene         string
	OutputDir     string
	Mode          string
	GameDir       string
	Watch         bool
	CorrectFactor *bool
}

func Default() Config {
	return Config{
		Scene:       "scenes/downtown.yaml",
		OutputDir:   "build",
		AssetDir:    "assets",
		ScriptDir:   "dzip",
		Script:      packaging.DefaultScript,
		ProcessName: packaging.DefaultProcessName,
		Level:       buildmap.DefaultSettings(),
	}
}

// Load reads a YAML config file. With an empty path it falls back to
// VECTOR_CONFIG, and to defaults when that is unset too.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// config -> env -> default
	if cfg.GameDir == "" {
		cfg.GameDir = os.Getenv(EnvGameDir)
	}
	if cfg.Mode == "" {
		cfg.Mode = packaging.Mode(os.Getenv(EnvBuildMode))
	}
	if cfg.Mode == "" {
		cfg.Mode = packaging.ModeXML
	}
	return cfg, nil
}

// Resolve applies command line flags over the loaded values and checks the
// result.
func (c *Config) Resolve(flags Flags) error {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Mode != "" {
		c.Mode = packaging.Mode(flags.Mode)
	}
	if flags.GameDir != "" {
		c.GameDir = flags.GameDir
	}
	if flags.Watch {
		c.Watch = true
	}
	if flags.CorrectFactor != nil {
		c.Level.CorrectFactorPosition = *flags.CorrectFactor
	}

	mode, err := packaging.ParseMode(string(c.Mode))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Mode = mode

	if c.Scene == "" {
		return fmt.Errorf("config: scene is required")
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Level.MapName == "" {
		c.Level.MapName = buildmap.DefaultMapName
	}
	return nil
}

// PackagingOptions maps the config onto packager options.
func (c *Config) PackagingOptions() packaging.Options {
	return packaging.Options{
		OutDir:      c.OutputDir,
		AssetDir:    c.AssetDir,
		ScriptDir:   c.ScriptDir,
		Script:      c.Script,
		GameDir:     c.GameDir,
		ProcessName: c.ProcessName,
	}
}
