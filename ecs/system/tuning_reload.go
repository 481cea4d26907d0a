package system

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/floater/controller"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/logger"
	"github.com/milk9111/floater/prefabs"
)

// TuningReloadSystem turns prefab file changes into ReloadRequests and
// applies them. A tuning that fails to load or validate is reported and the
// player keeps the controller it had.
type TuningReloadSystem struct {
	watcher *prefabs.Watcher
	load    func(string) (prefabs.PlayerSpec, error)
}

// NewTuningReloadSystem takes ownership of watcher, which may be nil when
// only manual reloads are wanted.
func NewTuningReloadSystem(watcher *prefabs.Watcher) *TuningReloadSystem {
	return &TuningReloadSystem{watcher: watcher, load: prefabs.LoadPlayerSpec}
}

func (s *TuningReloadSystem) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *TuningReloadSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.drainWatcher(w)

	var requests []ecs.Entity
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, req *component.ReloadRequest) {
		s.apply(w, req.Prefab)
		requests = append(requests, e)
	})
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}
}

func (s *TuningReloadSystem) drainWatcher(w *ecs.World) {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if ext := strings.ToLower(filepath.Ext(name)); ext != ".yaml" && ext != ".yml" {
				continue
			}
			req := ecs.CreateEntity(w)
			_ = ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Prefab: filepath.Base(name)})
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			logger.L().Warn("prefab watcher error", "err", err)
		default:
			return
		}
	}
}

type loadedTuning struct {
	spec prefabs.PlayerSpec
	ctrl *controller.Controller
	err  error
}

func (s *TuningReloadSystem) apply(w *ecs.World, prefab string) {
	cache := make(map[string]loadedTuning)

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if prefab != "" && filepath.Base(player.Tuning) != prefab {
			return
		}
		lt, ok := cache[player.Tuning]
		if !ok {
			lt = s.loadTuning(player.Tuning)
			cache[player.Tuning] = lt
			if lt.err != nil {
				logger.L().Warn("tuning reload rejected, keeping previous tuning", "prefab", player.Tuning, "err", lt.err)
			}
		}
		if lt.err != nil {
			w.Events().Push(ecs.Event{Type: ecs.EventTuningReloaded, Entity: e, Data: ecs.TuningReloaded{Name: player.Tuning, Err: lt.err}})
			return
		}
		retune(w, e, player, lt)
		logger.L().Info("tuning reloaded", "entity", e, "prefab", player.Tuning)
		w.Events().Push(ecs.Event{Type: ecs.EventTuningReloaded, Entity: e, Data: ecs.TuningReloaded{Name: player.Tuning}})
	})
}

func (s *TuningReloadSystem) loadTuning(name string) loadedTuning {
	spec, err := s.load(name)
	if err != nil {
		return loadedTuning{err: err}
	}
	ctrl, err := controller.New(spec.Tuning)
	if err != nil {
		return loadedTuning{err: err}
	}
	return loadedTuning{spec: spec, ctrl: ctrl}
}

// retune swaps the controller and brings the collider and timers in line
// with the new tuning. Grounding and platform state carry over.
func retune(w *ecs.World, e ecs.Entity, player *component.Player, lt loadedTuning) {
	cfg := lt.spec.Tuning
	player.Controller = lt.ctrl
	player.State.Retune(cfg)

	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		input.TurnSpeed = lt.spec.Input.TurnSpeed
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		shape := cfg.StandShape()
		if player.State.Crouching {
			shape = cfg.CrouchShape()
		}
		if pb.Body.Collider() != shape {
			pb.Body.SetCollider(shape)
		}
	}
}
