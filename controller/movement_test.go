package controller

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
)

func TestInputDirection(t *testing.T) {
	diag := 1 / math.Sqrt2

	tests := []struct {
		name string
		in   InputSnapshot
		want mgl64.Vec3
	}{
		{"none", InputSnapshot{}, mgl64.Vec3{}},
		{"forward_default_basis", InputSnapshot{Forward: true}, mgl64.Vec3{0, 0, -1}},
		{"back", InputSnapshot{Back: true}, mgl64.Vec3{0, 0, 1}},
		{"right", InputSnapshot{Right: true}, mgl64.Vec3{1, 0, 0}},
		{"diagonal_renormalized", InputSnapshot{Forward: true, Left: true}, mgl64.Vec3{-diag, 0, -diag}},
		{"opposing_cancel", InputSnapshot{Forward: true, Back: true}, mgl64.Vec3{}},
		{"yawed_basis", InputSnapshot{Forward: true, Basis: BasisFromYaw(math.Pi / 2)}, mgl64.Vec3{-1, 0, 0}},
		{
			name: "pitched_basis_flattened",
			in:   InputSnapshot{Forward: true, Basis: Basis{Forward: mgl64.Vec3{0, -1, -1}, Right: mgl64.Vec3{1, 0, 0}}},
			want: mgl64.Vec3{0, 0, -1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Direction(); !approxVec(got, tt.want, 1e-9) {
				t.Fatalf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDesiredVelocity(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("grounded_flat", func(t *testing.T) {
		st := groundedState(cfg, 0)
		got, friction := DesiredVelocity(cfg, &st, InputSnapshot{Right: true}, mgl64.Vec3{})
		if friction || !approxVec(got, mgl64.Vec3{cfg.GroundedSpeed, 0, 0}, 1e-9) {
			t.Fatalf("got %v friction=%v", got, friction)
		}
	})

	t.Run("grounded_slope_hugs_plane", func(t *testing.T) {
		st := groundedState(cfg, 0)
		n := slopeNormal(30)
		st.GroundNormal = vecPtr(n)
		got, _ := DesiredVelocity(cfg, &st, InputSnapshot{Right: true}, mgl64.Vec3{})
		if !approxEqual(got.Dot(n), 0) {
			t.Fatalf("desired velocity should lie on the ground plane, dot=%v", got.Dot(n))
		}
	})

	t.Run("grounded_friction", func(t *testing.T) {
		st := groundedState(cfg, 0)
		got, friction := DesiredVelocity(cfg, &st, InputSnapshot{}, mgl64.Vec3{3, 0, 4})
		want := mgl64.Vec3{-0.6, 0, -0.8}.Mul(cfg.GroundFriction)
		if !friction || !approxVec(got, want, 1e-9) {
			t.Fatalf("got %v friction=%v, want %v", got, friction, want)
		}
	})

	t.Run("airborne_uses_air_speed", func(t *testing.T) {
		st := NewState(cfg)
		got, friction := DesiredVelocity(cfg, &st, InputSnapshot{Back: true}, mgl64.Vec3{5, 0, 0})
		if friction || !approxVec(got, mgl64.Vec3{0, 0, cfg.AirborneSpeed}, 1e-9) {
			t.Fatalf("got %v friction=%v", got, friction)
		}
	})

	t.Run("airborne_without_input", func(t *testing.T) {
		st := NewState(cfg)
		got, friction := DesiredVelocity(cfg, &st, InputSnapshot{}, mgl64.Vec3{5, 0, 0})
		if friction || got != (mgl64.Vec3{}) {
			t.Fatalf("expected no air friction, got %v friction=%v", got, friction)
		}
	})

	t.Run("max_speed_cap", func(t *testing.T) {
		capped := cfg
		capped.GroundedSpeed = 40
		st := groundedState(capped, 0)
		got, _ := DesiredVelocity(capped, &st, InputSnapshot{Forward: true}, mgl64.Vec3{})
		if !approxEqual(got.Len(), capped.GroundedMaxSpeed) {
			t.Fatalf("expected speed capped at %v, got %v", capped.GroundedMaxSpeed, got.Len())
		}
	})
}

// driveOwnVelocity runs the movement force and drift damping the way Tick
// composes them, without a platform.
func driveOwnVelocity(cfg Config, st *State, in InputSnapshot, body *fakeBody, ticks int) {
	for i := 0; i < ticks; i++ {
		own := common.Horizontal(body.vel).Sub(st.LastUnsimulatedVelocity)
		body.ApplyForce(MovementForce(cfg, st, in, own, body.mass, testDt))
		ride := RidePlatform(cfg, st, FloorContact{}, true, body.vel, testDt)
		body.SetVelocity(ride.Velocity)
		body.SetGravityScale(0)
		body.step(testGravity, testDt)
	}
}

func TestMovementForceStaysHorizontalOnSlope(t *testing.T) {
	cfg := DefaultConfig()
	st := groundedState(cfg, 0)
	st.GroundNormal = vecPtr(slopeNormal(30))

	for _, in := range []InputSnapshot{{Right: true}, {Left: true}, {Forward: true, Right: true}} {
		f := MovementForce(cfg, &st, in, mgl64.Vec3{}, 1, testDt)
		if f == (mgl64.Vec3{}) {
			t.Fatalf("expected a driving force for %+v", in)
		}
		if !approxEqual(f.Y(), 0) {
			t.Fatalf("force %v has a vertical component for %+v", f, in)
		}
	}
}

func TestMovementConvergesToDesired(t *testing.T) {
	cfg := DefaultConfig()
	st := groundedState(cfg, 0)
	body := newFakeBody(mgl64.Vec3{0, 2, 0})
	in := InputSnapshot{Forward: true}

	driveOwnVelocity(cfg, &st, in, body, 300)
	want := mgl64.Vec3{0, 0, -cfg.GroundedSpeed}
	if !approxVec(body.vel, want, 1e-3) {
		t.Fatalf("velocity = %v, want %v", body.vel, want)
	}
}

func TestFrictionStopsWithoutReversing(t *testing.T) {
	cfg := DefaultConfig()
	st := groundedState(cfg, 0)
	body := newFakeBody(mgl64.Vec3{0, 2, 0})
	body.vel = mgl64.Vec3{4, 0, 0}

	prev := body.vel.X()
	for i := 0; i < 120; i++ {
		driveOwnVelocity(cfg, &st, InputSnapshot{}, body, 1)
		if body.vel.X() < -1e-12 {
			t.Fatalf("tick %d: friction reversed the body: %v", i, body.vel)
		}
		if body.vel.X() > prev {
			t.Fatalf("tick %d: friction sped the body up: %v > %v", i, body.vel.X(), prev)
		}
		prev = body.vel.X()
	}
	if body.vel.Len() > 1e-9 {
		t.Fatalf("expected the body to come to rest, got %v", body.vel)
	}
}

func TestMovementForceScalesWithMass(t *testing.T) {
	cfg := DefaultConfig()
	st := groundedState(cfg, 0)
	in := InputSnapshot{Right: true}
	light := MovementForce(cfg, &st, in, mgl64.Vec3{}, 1, testDt)
	heavy := MovementForce(cfg, &st, in, mgl64.Vec3{}, 4, testDt)
	if !approxVec(heavy, light.Mul(4), 1e-9) {
		t.Fatalf("force should scale with mass: %v vs %v", heavy, light)
	}
}
