package controller

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("controller: invalid config")

type SuspensionMode string

const (
	SuspensionKinematic SuspensionMode = "kinematic"
	SuspensionSpring    SuspensionMode = "spring"
)

// Config is the per-player tuning. It is fixed at spawn; hot reloads replace
// the whole value. GroundedMaxSpeed caps every desired velocity, 0 disables
// the cap.
type Config struct {
	ColliderRadius float64 `yaml:"collider_radius"`
	StandHeight    float64 `yaml:"stand_height"`
	CrouchHeight   float64 `yaml:"crouch_height"`
	Mass           float64 `yaml:"mass"`

	GroundedSpeed        float64 `yaml:"grounded_speed"`
	AirborneSpeed        float64 `yaml:"airborne_speed"`
	GroundedMaxSpeed     float64 `yaml:"grounded_max_speed"`
	GroundedAcceleration float64 `yaml:"grounded_acceleration"`
	AirborneAcceleration float64 `yaml:"airborne_acceleration"`
	GroundFriction       float64 `yaml:"ground_friction"`

	JumpHeight   float64 `yaml:"jump_height"`
	JumpCooldown float64 `yaml:"jump_cooldown"`
	JumpGrace    float64 `yaml:"jump_grace"`

	MaxSlopeDegrees float64 `yaml:"max_slope_degrees"`
	FlattenSlide    bool    `yaml:"flatten_slide"`

	FloatHeight    float64        `yaml:"float_height"`
	Suspension     SuspensionMode `yaml:"suspension"`
	SpringStrength float64        `yaml:"spring_strength"`
	SpringDamping  float64        `yaml:"spring_damping"`
	RecoverRate    float64        `yaml:"recover_rate"`

	// RayLength <= 0 falls back to ColliderRadius.
	RayLength   float64 `yaml:"ray_length"`
	SensorScale float64 `yaml:"sensor_scale"`
	RampSlack   float64 `yaml:"ramp_slack"`
	SlopeSlack  float64 `yaml:"slope_slack"`

	DriftDamping float64 `yaml:"drift_damping"`
}

func DefaultConfig() Config {
	return Config{
		ColliderRadius: 0.5,
		StandHeight:    1.0,
		CrouchHeight:   0.4,
		Mass:           1.0,

		GroundedSpeed:        6,
		AirborneSpeed:        3,
		GroundedMaxSpeed:     15,
		GroundedAcceleration: 7.5,
		AirborneAcceleration: 2.5,
		GroundFriction:       10,

		JumpHeight:   6,
		JumpCooldown: 0.1,
		JumpGrace:    0.1,

		MaxSlopeDegrees: 45,
		FlattenSlide:    true,

		FloatHeight:    2.0,
		Suspension:     SuspensionKinematic,
		SpringStrength: 1000,
		SpringDamping:  75,
		RecoverRate:    10,

		SensorScale: 0.95,
		RampSlack:   0.2,
		SlopeSlack:  0.1,

		DriftDamping: 0.8,
	}
}

// Validate reports the first problem found. Every returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"collider_radius", c.ColliderRadius},
		{"mass", c.Mass},
		{"float_height", c.FloatHeight},
		{"sensor_scale", c.SensorScale},
	}
	for _, p := range positive {
		if !finite(p.v) || p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"stand_height", c.StandHeight},
		{"crouch_height", c.CrouchHeight},
		{"grounded_speed", c.GroundedSpeed},
		{"airborne_speed", c.AirborneSpeed},
		{"grounded_max_speed", c.GroundedMaxSpeed},
		{"grounded_acceleration", c.GroundedAcceleration},
		{"airborne_acceleration", c.AirborneAcceleration},
		{"ground_friction", c.GroundFriction},
		{"jump_height", c.JumpHeight},
		{"jump_cooldown", c.JumpCooldown},
		{"jump_grace", c.JumpGrace},
		{"spring_strength", c.SpringStrength},
		{"spring_damping", c.SpringDamping},
		{"recover_rate", c.RecoverRate},
		{"ray_length", c.RayLength},
		{"ramp_slack", c.RampSlack},
		{"slope_slack", c.SlopeSlack},
		{"drift_damping", c.DriftDamping},
	}
	for _, p := range nonNegative {
		if !finite(p.v) || p.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if !finite(c.MaxSlopeDegrees) || c.MaxSlopeDegrees < 0 || c.MaxSlopeDegrees >= 90 {
		return fmt.Errorf("%w: max_slope_degrees must be in [0, 90), got %v", ErrInvalidConfig, c.MaxSlopeDegrees)
	}
	if c.CrouchHeight > c.StandHeight {
		return fmt.Errorf("%w: crouch_height %v exceeds stand_height %v", ErrInvalidConfig, c.CrouchHeight, c.StandHeight)
	}
	switch c.Suspension {
	case SuspensionKinematic, SuspensionSpring:
	default:
		return fmt.Errorf("%w: unknown suspension mode %q", ErrInvalidConfig, c.Suspension)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Config) rayLength() float64 {
	if c.RayLength > 0 {
		return c.RayLength
	}
	return c.ColliderRadius
}

func (c Config) sweepLength() float64 {
	return 2 * c.FloatHeight
}

// StandShape is the collider used while standing.
func (c Config) StandShape() Shape {
	return Shape{Radius: c.ColliderRadius, Height: c.StandHeight}
}

func (c Config) CrouchShape() Shape {
	return Shape{Radius: c.ColliderRadius, Height: c.CrouchHeight}
}

// SensorShape shrinks a collider shape so sweeps do not start in contact
// with walls the body is already touching.
func (c Config) SensorShape(collider Shape) Shape {
	return Shape{Radius: collider.Radius * c.SensorScale, Height: collider.Height}
}
