package scenes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// SceneSpec is the root of a scene file.
type SceneSpec struct {
	Name     string       `yaml:"name"`
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec describes one scene entity and its subtree. Components are kept
// raw and decoded per component by the scene builder.
type EntitySpec struct {
	Name       string         `yaml:"name"`
	Tag        string         `yaml:"tag"`
	Components map[string]any `yaml:"components"`
	Children   []EntitySpec   `yaml:"children"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("scenes: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scenes: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}

// DecodeComponentSpec re-decodes a raw component map into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	ScaleX   *float64 `yaml:"scale_x"`
	ScaleY   *float64 `yaml:"scale_y"`
	Rotation float64  `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image         string     `yaml:"image"`
	Width         float64    `yaml:"width"`
	Height        float64    `yaml:"height"`
	PixelsPerUnit float64    `yaml:"pixels_per_unit"`
	FlipX         bool       `yaml:"flip_x"`
	FlipY         bool       `yaml:"flip_y"`
	Color         *YAMLColor `yaml:"color"`
}

type RenderLayerComponentSpec struct {
	Layer string `yaml:"layer"`
	Order int    `yaml:"order"`
}

type RespawnComponentSpec struct {
	RespawnName     string  `yaml:"respawn_name"`
	TriggerName     string  `yaml:"trigger_name"`
	SpawnModel      string  `yaml:"spawn_model"`
	RespawnSeconds  float64 `yaml:"respawn_seconds"`
	RespawnOnScreen bool    `yaml:"respawn_on_screen"`
}

type SpawnComponentSpec struct {
	SpawnName       string `yaml:"spawn_name"`
	Animation       string `yaml:"animation"`
	RefersToRespawn bool   `yaml:"refers_to_respawn"`
}

type TriggerSettingsComponentSpec struct {
	Content string `yaml:"content"`
}

type ModelPropertiesComponentSpec struct {
	Type        int    `yaml:"type"`
	LifeTime    string `yaml:"life_time"`
	UseLifeTime bool   `yaml:"use_life_time"`
}

type AnimationPropertiesComponentSpec struct {
	Width        string `yaml:"width"`
	Height       string `yaml:"height"`
	Type         string `yaml:"type"`
	Direction    string `yaml:"direction"`
	Acceleration string `yaml:"acceleration"`
	ScaleX       string `yaml:"scale_x"`
	ScaleY       string `yaml:"scale_y"`
	Time         string `yaml:"time"`
}

type CustomZoomComponentSpec struct {
	ZoomAmount int `yaml:"zoom_amount"`
}

type MoveIntervalSpec struct {
	Enabled  *bool   `yaml:"enabled"`
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
	SupportX float64 `yaml:"support_x"`
	SupportY float64 `yaml:"support_y"`
	MoveX    float64 `yaml:"move_x"`
	MoveY    float64 `yaml:"move_y"`
}

type DynamicTransformComponentSpec struct {
	Name      string             `yaml:"name"`
	Intervals []MoveIntervalSpec `yaml:"intervals"`
}

type DynamicTriggerComponentSpec struct {
	TransformName string `yaml:"transform_name"`
	AIAllowed     int    `yaml:"ai_allowed"`
	PlaySound     bool   `yaml:"play_sound"`
	Sound         string `yaml:"sound"`
}

// YAMLColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG colour name.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func ParseColor(text string) (color.NRGBA, error) {
	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(text))]; ok {
		return color.NRGBAModel.Convert(named).(color.NRGBA), nil
	}

	s := strings.TrimPrefix(text, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", text)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
