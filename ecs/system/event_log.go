package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/logger"
)

const recentEvents = 8

// EventLogSystem drains the world event queue at the end of a tick and keeps
// the last few events for the debug overlay.
type EventLogSystem struct {
	recent []ecs.Event
	counts map[string]int
}

func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{counts: make(map[string]int)}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.counts[evt.Type]++
		s.recent = append(s.recent, evt)
		if evt.Type == ecs.EventCrouchChanged {
			logger.L().Debug("crouch changed", "entity", evt.Entity, "data", evt.Data)
		}
	}
	if n := len(s.recent); n > recentEvents {
		s.recent = append(s.recent[:0], s.recent[n-recentEvents:]...)
	}
}

// Recent returns up to the last eight events, oldest first.
func (s *EventLogSystem) Recent() []ecs.Event {
	return append([]ecs.Event(nil), s.recent...)
}

func (s *EventLogSystem) Count(eventType string) int {
	return s.counts[eventType]
}
