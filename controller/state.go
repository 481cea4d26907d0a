package controller

import "github.com/go-gl/mathgl/mgl64"

type GroundedState int

const (
	Airborne GroundedState = iota
	Grounded
	SteepSlope
)

func (s GroundedState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case SteepSlope:
		return "steep_slope"
	default:
		return "airborne"
	}
}

// EntityRef identifies a body known to the spatial query provider. Zero
// means none.
type EntityRef uint64

type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// State is the mutable per-player controller state. It is rewritten every
// tick and never persisted.
type State struct {
	Grounded       GroundedState
	GroundDistance *float64
	GroundHeight   *float64
	GroundNormal   *mgl64.Vec3

	Crouching  bool
	PushedDown bool

	JumpCooldown  Timer
	SinceGrounded Timer

	CarriedVelocity         mgl64.Vec3
	LastUnsimulatedVelocity mgl64.Vec3

	FloorEntity        EntityRef
	LastFloorTransform *Transform
}

// NewState returns the spawn state: airborne, no contact, both timers
// finished so the first jump press is accepted.
func NewState(cfg Config) State {
	return State{
		Grounded:      Airborne,
		JumpCooldown:  NewFinishedTimer(cfg.JumpCooldown),
		SinceGrounded: NewFinishedTimer(cfg.JumpGrace),
	}
}

// Retune swaps in the timer durations of cfg, keeping elapsed time.
func (s *State) Retune(cfg Config) {
	s.JumpCooldown.Duration = cfg.JumpCooldown
	s.SinceGrounded.Duration = cfg.JumpGrace
}
