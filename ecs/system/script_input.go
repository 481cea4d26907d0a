package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/logger"
	"github.com/milk9111/floater/prefabs"
)

// Globals a script may assign each tick. All reset to false before a run.
var scriptOutputs = []string{"forward", "back", "left", "right", "jump", "crouch", "turn_left", "turn_right"}

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
	tick     int
	failed   bool
}

// ScriptInputSystem runs an entity's tengo script once per tick and writes
// the assigned globals into its Input. Scripts read `tick`, `dt`,
// `position`, `velocity`, `grounded` and a persistent `state` map.
type ScriptInputSystem struct {
	dt       float64
	runtimes map[ecs.Entity]*scriptRuntime
	load     func(string) ([]byte, error)
}

func NewScriptInputSystem(dt float64) *ScriptInputSystem {
	return &ScriptInputSystem{
		dt:       dt,
		runtimes: make(map[ecs.Entity]*scriptRuntime),
		load:     prefabs.LoadScript,
	}
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for e := range s.runtimes {
		if !ecs.IsAlive(w, e) || !ecs.Has(w, e, component.InputScriptComponent.Kind()) {
			delete(s.runtimes, e)
		}
	}

	ecs.ForEach2(w, component.InputScriptComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, script *component.InputScript, input *component.Input) {
		rt, err := s.runtime(e, script.Path)
		if err != nil {
			logger.L().Warn("input script failed to compile", "entity", e, "script", script.Path, "err", err)
			return
		}
		if rt.failed {
			return
		}
		if err := rt.run(w, e, s.dt, input); err != nil {
			rt.failed = true
			logger.L().Warn("input script stopped", "entity", e, "script", script.Path, "tick", rt.tick, "err", err)
			return
		}
		turn(input, s.dt)
	})
}

func (s *ScriptInputSystem) runtime(e ecs.Entity, path string) (*scriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.path == path {
		return rt, nil
	}
	src, err := s.load(path)
	if err != nil {
		s.runtimes[e] = &scriptRuntime{path: path, failed: true}
		return nil, err
	}
	rt, err := compileInputScript(path, src)
	if err != nil {
		s.runtimes[e] = &scriptRuntime{path: path, failed: true}
		return nil, err
	}
	s.runtimes[e] = rt
	return rt, nil
}

func compileInputScript(path string, src []byte) (*scriptRuntime, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("dt", 0.0)
	_ = script.Add("position", []any{0.0, 0.0})
	_ = script.Add("velocity", []any{0.0, 0.0})
	_ = script.Add("grounded", "")
	_ = script.Add("state", map[string]any{})
	for _, name := range scriptOutputs {
		_ = script.Add(name, false)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return &scriptRuntime{
		path:     path,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (rt *scriptRuntime) run(w *ecs.World, e ecs.Entity, dt float64, input *component.Input) error {
	c := rt.compiled
	pos := []any{0.0, 0.0}
	vel := []any{0.0, 0.0}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		p, v := pb.Body.Position(), pb.Body.Velocity()
		pos = []any{p.X(), p.Y()}
		vel = []any{v.X(), v.Y()}
	}
	grounded := ""
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		grounded = p.State.Grounded.String()
	}

	inputs := map[string]any{
		"tick":     rt.tick,
		"dt":       dt,
		"position": pos,
		"velocity": vel,
		"grounded": grounded,
		"state":    rt.state,
	}
	for name, v := range inputs {
		if err := c.Set(name, v); err != nil {
			return err
		}
	}
	for _, name := range scriptOutputs {
		if err := c.Set(name, false); err != nil {
			return err
		}
	}
	if err := c.Run(); err != nil {
		return err
	}
	rt.tick++

	wasJumping := input.Jump
	input.Forward = c.Get("forward").Bool()
	input.Back = c.Get("back").Bool()
	input.Left = c.Get("left").Bool()
	input.Right = c.Get("right").Bool()
	input.Jump = c.Get("jump").Bool()
	input.JumpPressed = input.Jump && !wasJumping
	input.Crouch = c.Get("crouch").Bool()
	input.TurnLeft = c.Get("turn_left").Bool()
	input.TurnRight = c.Get("turn_right").Bool()
	return nil
}
