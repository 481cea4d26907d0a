package controller

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

// Env is the world a player is ticked against.
type Env struct {
	Query     SpatialQuery
	Platforms PlatformSource
	Gravity   mgl64.Vec3
	Self      EntityRef
}

// TickResult reports what one tick decided and wrote.
type TickResult struct {
	Sample    GroundSample
	HasSample bool

	Previous GroundedState
	Current  GroundedState

	Jumped        bool
	CrouchChanged bool
	Collider      Shape

	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Force        mgl64.Vec3
	GravityScale float64
	CarriedYaw   float64
}

type Controller struct {
	cfg Config
}

func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller: new: %w", err)
	}
	return &Controller{cfg: cfg}, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

// frame holds everything read from the world before any write happens.
type frame struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	mass     float64

	collider      Shape
	crouchChanged bool

	sample    GroundSample
	hasSample bool
	headroom  *float64
	floor     FloorContact
	hasFloor  bool
}

// Tick runs one fixed step for one player: crouch, sense, classify, then
// suspension, slope slide, movement, jump and platform carry. All reads
// happen first and the body is written once at the end.
func (c *Controller) Tick(env Env, body Body, st *State, in InputSnapshot, dt float64) TickResult {
	cfg := c.cfg
	res := TickResult{Previous: st.Grounded}
	if body == nil || st == nil {
		return res
	}

	f := frame{
		position: body.Position(),
		velocity: body.Velocity(),
		mass:     body.Mass(),
	}
	if f.mass <= 0 {
		f.mass = cfg.Mass
	}

	f.collider, f.crouchChanged = Crouch(cfg, st, in)

	f.sample, f.hasSample = SenseGround(env.Query, newProbe(cfg, f.position, f.collider, env.Self))
	Classify(f.sample, f.hasSample, cfg).Apply(st)

	if cfg.Suspension == SuspensionKinematic && st.Grounded == Grounded && env.Query != nil {
		sensor := cfg.SensorShape(f.collider)
		if hit, ok := env.Query.CastShape(sensor, f.position, common.Up, cfg.FloatHeight, env.Self); ok {
			d := hit.Distance
			f.headroom = &d
		}
	}

	if st.Grounded != Airborne && f.sample.Entity != 0 {
		f.hasFloor = true
		f.floor = FloorContact{Entity: f.sample.Entity, Point: f.sample.ContactPoint}
		if env.Platforms != nil {
			f.floor.Motion, f.floor.HasMotion = env.Platforms.PlatformMotion(f.sample.Entity)
		}
	}

	own := common.Horizontal(f.velocity).Sub(st.LastUnsimulatedVelocity)

	susp := Suspend(cfg, st, SuspensionInput{
		Position: f.position,
		Velocity: f.velocity,
		Headroom: f.headroom,
		Dt:       dt,
	})
	slide := SlopeSlideForce(st, f.mass, env.Gravity, cfg.FlattenSlide)
	move := MovementForce(cfg, st, in, own, f.mass, dt)
	impulse, jumped := Jump(cfg, st, in, dt)
	ride := RidePlatform(cfg, st, f.floor, f.hasFloor, f.velocity, dt)

	vy := f.velocity.Dot(common.Up)
	if susp.ZeroVertical {
		vy = 0
	}
	gravityScale := susp.GravityScale
	if jumped {
		vy += impulse
		gravityScale = 1
	}

	position := f.position
	if susp.SetHeight {
		position = mgl64.Vec3{position.X(), susp.Height, position.Z()}
	}
	velocity := ride.Velocity.Add(common.Up.Mul(vy))
	force := susp.Force.Add(slide).Add(move)

	if f.crouchChanged {
		body.SetCollider(f.collider)
	}
	if susp.SetHeight {
		body.SetPosition(position)
	}
	body.SetGravityScale(gravityScale)
	body.SetVelocity(velocity)
	if force != (mgl64.Vec3{}) {
		body.ApplyForce(force)
	}

	res.Sample = f.sample
	res.HasSample = f.hasSample
	res.Current = st.Grounded
	res.Jumped = jumped
	res.CrouchChanged = f.crouchChanged
	res.Collider = f.collider
	res.Position = position
	res.Velocity = velocity
	res.Force = force
	res.GravityScale = gravityScale
	res.CarriedYaw = ride.CarriedYaw
	return res
}
