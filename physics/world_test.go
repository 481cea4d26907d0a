package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/controller"
)

const testDt = 1.0 / 60.0

var down = mgl64.Vec3{0, -1, 0}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func groundWorld() *World {
	w := NewWorld(Vec2(0, common.Gravity), 0)
	w.AddStaticSegment(1, Vec2(-50, 0), Vec2(50, 0), 0, 1)
	return w
}

func TestCastRay(t *testing.T) {
	w := groundWorld()

	tests := []struct {
		name     string
		origin   mgl64.Vec3
		maxDist  float64
		ok       bool
		distance float64
	}{
		{"hit_below", Vec2(0, 2), 5, true, 2},
		{"too_short", Vec2(0, 2), 1, false, 0},
		{"off_the_edge", Vec2(60, 2), 5, false, 0},
		{"zero_length", Vec2(0, 2), 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.CastRay(tt.origin, down, tt.maxDist, 0)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !approxEqual(hit.Distance, tt.distance) {
				t.Fatalf("distance = %v, want %v", hit.Distance, tt.distance)
			}
			if !approxEqual(hit.Normal.Y(), 1) || hit.Entity != 1 {
				t.Fatalf("unexpected hit %+v", hit)
			}
			if !approxEqual(hit.Point.Y(), 0) {
				t.Fatalf("contact y = %v, want 0", hit.Point.Y())
			}
		})
	}
}

func TestCastShape(t *testing.T) {
	w := groundWorld()
	capsule := controller.Shape{Radius: 0.5, Height: 1}

	hit, ok := w.CastShape(capsule, Vec2(0, 3), down, 4, 0)
	if !ok {
		t.Fatalf("expected sweep hit")
	}
	if !approxEqual(hit.Distance, 2) {
		t.Fatalf("travel = %v, want 2", hit.Distance)
	}
	if !approxEqual(hit.Point.Y(), 0) {
		t.Fatalf("contact y = %v, want 0", hit.Point.Y())
	}

	if _, ok := w.CastShape(capsule, Vec2(0, 3), common.Up, 4, 0); ok {
		t.Fatalf("nothing above, expected a miss")
	}
}

func TestCastShapeUpward(t *testing.T) {
	w := groundWorld()
	w.AddStaticSegment(2, Vec2(-5, 4), Vec2(5, 4), 0, 1)
	capsule := controller.Shape{Radius: 0.5, Height: 1}

	hit, ok := w.CastShape(capsule, Vec2(0, 2), common.Up, 3, 0)
	if !ok || hit.Entity != 2 {
		t.Fatalf("expected ceiling hit, got %+v ok=%v", hit, ok)
	}
	// top of the capsule is at 3, ceiling at 4
	if !approxEqual(hit.Distance, 1) {
		t.Fatalf("headroom = %v, want 1", hit.Distance)
	}
}

func TestQueriesExcludeOwnBody(t *testing.T) {
	w := groundWorld()
	b := w.NewBody(10, Vec2(0, 2), controller.Shape{Radius: 0.5, Height: 1}, 1)

	hit, ok := w.CastRay(b.Position(), down, 5, 10)
	if !ok || hit.Entity != 1 {
		t.Fatalf("expected ground hit past own body, got %+v ok=%v", hit, ok)
	}

	b.SetCollider(controller.Shape{Radius: 0.5, Height: 0.2})
	hit, ok = w.CastShape(controller.Shape{Radius: 0.45, Height: 0.2}, b.Position(), down, 5, 10)
	if !ok || hit.Entity != 1 {
		t.Fatalf("expected ground hit after collider swap, got %+v ok=%v", hit, ok)
	}
}

func TestBodyGravityScale(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		vy    float64
	}{
		{"floating", 0, 0},
		{"full", 1, common.Gravity * testDt},
		{"half", 0.5, 0.5 * common.Gravity * testDt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(Vec2(0, common.Gravity), 0)
			b := w.NewBody(1, Vec2(0, 10), controller.Shape{Radius: 0.5, Height: 1}, 1)
			b.SetGravityScale(tt.scale)
			w.Step(testDt)
			if !approxEqual(b.Velocity().Y(), tt.vy) {
				t.Fatalf("vy = %v, want %v", b.Velocity().Y(), tt.vy)
			}
		})
	}
}

func TestBodyApplyForce(t *testing.T) {
	w := NewWorld(Vec2(0, common.Gravity), 0)
	b := w.NewBody(1, Vec2(0, 10), controller.Shape{Radius: 0.5, Height: 1}, 2)
	b.SetGravityScale(0)
	b.ApplyForce(Vec2(4, 0))
	w.Step(testDt)
	if !approxEqual(b.Velocity().X(), 2*testDt) {
		t.Fatalf("vx = %v, want %v", b.Velocity().X(), 2*testDt)
	}
	if b.Mass() != 2 {
		t.Fatalf("mass = %v, want 2", b.Mass())
	}
}

func TestPlatformMotion(t *testing.T) {
	w := NewWorld(Vec2(0, common.Gravity), 0)
	p := w.NewPlatform(5, Vec2(0, 0), 4, 1, 1, PlatformPath{
		Waypoints: []mgl64.Vec3{Vec2(0, 0), Vec2(10, 0)},
		Speed:     2,
	})

	p.Drive(testDt)
	m, ok := w.PlatformMotion(5)
	if !ok {
		t.Fatalf("expected platform motion")
	}
	if !approxEqual(m.Linear.X(), 2) || !approxEqual(m.Linear.Y(), 0) {
		t.Fatalf("linear = %v, want (2, 0)", m.Linear)
	}
	w.Step(testDt)
	if !approxEqual(p.Position().X(), 2*testDt) {
		t.Fatalf("platform at %v after one step", p.Position())
	}

	if _, ok := w.PlatformMotion(99); ok {
		t.Fatalf("unknown entity should have no motion")
	}
}

func TestPlatformTurnsAroundAtWaypoint(t *testing.T) {
	w := NewWorld(Vec2(0, common.Gravity), 0)
	p := w.NewPlatform(5, Vec2(0, 0), 4, 1, 1, PlatformPath{
		Waypoints: []mgl64.Vec3{Vec2(0, 0), Vec2(1, 0)},
		Speed:     3,
	})
	reversed := false
	for i := 0; i < 60; i++ {
		p.Drive(testDt)
		if p.Motion().Linear.X() < 0 {
			reversed = true
			break
		}
		w.Step(testDt)
	}
	if !reversed {
		t.Fatalf("platform never headed back, at %v", p.Position())
	}
}

func TestRotatingPlatformPointVelocity(t *testing.T) {
	w := NewWorld(Vec2(0, common.Gravity), 0)
	p := w.NewPlatform(5, Vec2(0, 0), 6, 1, 1, PlatformPath{AngularSpeed: 1})
	p.Drive(testDt)
	m := p.Motion()
	v := m.PointVelocity(Vec2(0, 0.5))
	// w x r for w = +Z and r = +Y points along -X
	if !approxEqual(v.X(), -0.5) || !approxEqual(v.Y(), 0) {
		t.Fatalf("point velocity = %v, want (-0.5, 0)", v)
	}
}

func TestRemove(t *testing.T) {
	w := groundWorld()
	w.Remove(1)
	if _, ok := w.CastRay(Vec2(0, 2), down, 5, 0); ok {
		t.Fatalf("removed terrain should not be hit")
	}

	w.NewBody(3, Vec2(0, 0), controller.Shape{Radius: 0.5, Height: 1}, 1)
	w.Remove(3)
	if _, ok := w.Body(3); ok {
		t.Fatalf("body should be gone")
	}
	if _, ok := w.CastRay(Vec2(0, 5), down, 10, 0); ok {
		t.Fatalf("removed body should not be hit")
	}
}

func TestControllerFloatsOverGround(t *testing.T) {
	cfg := controller.DefaultConfig()
	ctrl, err := controller.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := groundWorld()
	b := w.NewBody(10, Vec2(0, 2.1), cfg.StandShape(), cfg.Mass)
	st := controller.NewState(cfg)
	env := controller.Env{Query: w, Platforms: w, Gravity: w.Gravity(), Self: 10}

	for i := 0; i < 120; i++ {
		ctrl.Tick(env, b, &st, controller.InputSnapshot{}, testDt)
		w.Step(testDt)
	}
	if st.Grounded != controller.Grounded {
		t.Fatalf("expected grounded, got %v", st.Grounded)
	}
	if !approxEqual(b.Position().Y(), cfg.FloatHeight) {
		t.Fatalf("height = %v, want %v", b.Position().Y(), cfg.FloatHeight)
	}
}

func TestControllerRidesPlatform(t *testing.T) {
	cfg := controller.DefaultConfig()
	ctrl, err := controller.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := NewWorld(Vec2(0, common.Gravity), 0)
	p := w.NewPlatform(5, Vec2(0, 0), 8, 1, 1, PlatformPath{
		Waypoints: []mgl64.Vec3{Vec2(0, 0), Vec2(100, 0)},
		Speed:     1,
	})
	b := w.NewBody(10, Vec2(0, 0.5+cfg.FloatHeight), cfg.StandShape(), cfg.Mass)
	st := controller.NewState(cfg)
	env := controller.Env{Query: w, Platforms: w, Gravity: w.Gravity(), Self: 10}

	for i := 0; i < 120; i++ {
		p.Drive(testDt)
		ctrl.Tick(env, b, &st, controller.InputSnapshot{}, testDt)
		w.Step(testDt)
	}
	if st.Grounded != controller.Grounded {
		t.Fatalf("expected grounded on the platform, got %v", st.Grounded)
	}
	if !approxEqual(b.Velocity().X(), 1) {
		t.Fatalf("vx = %v, want platform speed 1", b.Velocity().X())
	}
	if math.Abs(b.Position().X()-p.Position().X()) > 1e-3 {
		t.Fatalf("player drifted off the platform: %v vs %v", b.Position(), p.Position())
	}
}
