package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/topdown/motion"
)

// LoadSpec reads and unmarshals a named YAML spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Motion    motion.Config `yaml:"motion"`
	Spawn     SpawnSpec     `yaml:"spawn"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Heartbeat HeartbeatSpec `yaml:"heartbeat"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SpawnSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SpriteSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type HeartbeatSpec struct {
	Samples int `yaml:"samples"`
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Target     string  `yaml:"target"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type LevelSpec struct {
	Name       string         `yaml:"name"`
	KillHeight float64        `yaml:"kill_height"`
	Platforms  []PlatformSpec `yaml:"platforms"`
}

type PlatformSpec struct {
	X       float64    `yaml:"x"`
	Y       float64    `yaml:"y"`
	Width   float64    `yaml:"width"`
	Length  float64    `yaml:"length"`
	Surface float64    `yaml:"surface"`
	Color   *YAMLColor `yaml:"color"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec]("level.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	g, err := parse(2)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	b, err := parse(4)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	a := uint8(0xff)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// NRGBA returns the parsed color, or the fallback when the spec omitted
// one.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	if n, ok := c.Color.(color.NRGBA); ok {
		return n
	}
	r, g, b, a := c.Color.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
