package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

// PlatformSystem sets each moving platform's velocity for the coming step.
// It runs before the player controllers so they read this tick's motion.
type PlatformSystem struct {
	dt float64
}

func NewPlatformSystem(dt float64) *PlatformSystem {
	return &PlatformSystem{dt: dt}
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		if p.Platform != nil {
			p.Platform.Drive(s.dt)
		}
	})
}
