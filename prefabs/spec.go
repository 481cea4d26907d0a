package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/controller"
	"gopkg.in/yaml.v3"
)

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

// PlayerSpec is a player prefab. Tuning keys left out keep their defaults.
type PlayerSpec struct {
	Name   string            `yaml:"name"`
	Tuning controller.Config `yaml:"tuning"`
	Input  InputSpec         `yaml:"input"`
}

type InputSpec struct {
	TurnSpeed float64 `yaml:"turn_speed"`
}

const defaultTurnSpeed = 2.5

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:   "player",
		Tuning: controller.DefaultConfig(),
		Input:  InputSpec{TurnSpeed: defaultTurnSpeed},
	}
}

// DecodePlayerSpec overlays data onto the defaults and validates the
// resulting tuning.
func DecodePlayerSpec(data []byte) (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return PlayerSpec{}, err
	}
	if err := spec.Tuning.Validate(); err != nil {
		return PlayerSpec{}, err
	}
	return spec, nil
}

func LoadPlayerSpec(filename string) (PlayerSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodePlayerSpec(data)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: decode %s: %w", filename, err)
	}
	return spec, nil
}

// Point is a position in the simulated plane. It decodes from either
// `[x, y]` or `{x: .., y: ..}`.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("point must have 2 components, got %d", len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		type plain Point
		return value.Decode((*plain)(p))
	default:
		return fmt.Errorf("point must be a sequence or mapping")
	}
}

func (p Point) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, 0}
}

type TerrainKind string

const (
	TerrainSegment TerrainKind = "segment"
	TerrainBox     TerrainKind = "box"
)

type TerrainSpec struct {
	Name     string      `yaml:"name"`
	Kind     TerrainKind `yaml:"kind"`
	A        Point       `yaml:"a"`
	B        Point       `yaml:"b"`
	Radius   float64     `yaml:"radius"`
	Center   Point       `yaml:"center"`
	Width    float64     `yaml:"width"`
	Height   float64     `yaml:"height"`
	Friction float64     `yaml:"friction"`
}

type PlatformSpec struct {
	Name         string  `yaml:"name"`
	Center       Point   `yaml:"center"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Friction     float64 `yaml:"friction"`
	Waypoints    []Point `yaml:"waypoints"`
	Speed        float64 `yaml:"speed"`
	AngularSpeed float64 `yaml:"angular_speed"`
}

// CameraSpec tunes the follow camera. Zoom is pixels per world unit.
type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	LookAhead  float64 `yaml:"look_ahead"`
}

type SpawnSpec struct {
	Prefab string `yaml:"prefab"`
	At     Point  `yaml:"at"`
	Script string `yaml:"script"`
}

// SceneSpec describes the static terrain, moving platforms and player spawn.
type SceneSpec struct {
	Name       string         `yaml:"name"`
	Gravity    float64        `yaml:"gravity"`
	TickRate   int            `yaml:"tick_rate"`
	Iterations int            `yaml:"iterations"`
	Player     SpawnSpec      `yaml:"player"`
	Terrain    []TerrainSpec  `yaml:"terrain"`
	Platforms  []PlatformSpec `yaml:"platforms"`
	Camera     CameraSpec     `yaml:"camera"`
}

const defaultTickRate = 60

func DecodeSceneSpec(data []byte) (SceneSpec, error) {
	spec := SceneSpec{
		Gravity:  common.Gravity,
		TickRate: defaultTickRate,
		Player:   SpawnSpec{Prefab: "player.yaml"},
		Camera:   CameraSpec{Zoom: 40, Smoothness: 0.15, LookAhead: 0.25},
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SceneSpec{}, err
	}
	if spec.TickRate <= 0 {
		return SceneSpec{}, fmt.Errorf("tick_rate must be positive, got %d", spec.TickRate)
	}
	for i, t := range spec.Terrain {
		switch t.Kind {
		case TerrainSegment:
		case TerrainBox:
			if t.Width <= 0 || t.Height <= 0 {
				return SceneSpec{}, fmt.Errorf("terrain[%d] %q: box needs a positive size", i, t.Name)
			}
		default:
			return SceneSpec{}, fmt.Errorf("terrain[%d] %q: unknown kind %q", i, t.Name, t.Kind)
		}
	}
	if spec.Camera.Zoom <= 0 {
		return SceneSpec{}, fmt.Errorf("camera zoom must be positive, got %v", spec.Camera.Zoom)
	}
	if spec.Camera.Smoothness <= 0 || spec.Camera.Smoothness > 1 {
		return SceneSpec{}, fmt.Errorf("camera smoothness must be in (0, 1], got %v", spec.Camera.Smoothness)
	}
	for i, p := range spec.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return SceneSpec{}, fmt.Errorf("platforms[%d] %q: needs a positive size", i, p.Name)
		}
	}
	return spec, nil
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSceneSpec(data)
	if err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: decode %s: %w", filename, err)
	}
	return spec, nil
}

// Dt is the fixed step implied by the tick rate.
func (s SceneSpec) Dt() float64 {
	if s.TickRate <= 0 {
		return 1.0 / defaultTickRate
	}
	return 1.0 / float64(s.TickRate)
}
