package ecs

import "github.com/milk9111/floater/controller"

// Event is a generic ECS event payload.
type Event struct {
	Type   string
	Entity Entity
	Data   any
}

const (
	EventGroundedChanged = "grounded_changed"
	EventJumped          = "jumped"
	EventCrouchChanged   = "crouch_changed"
	EventTuningReloaded  = "tuning_reloaded"
)

type GroundedChanged struct {
	From controller.GroundedState
	To   controller.GroundedState
}

// Jumped carries the vertical speed right after the impulse.
type Jumped struct {
	VerticalSpeed float64
}

type CrouchChanged struct {
	Crouching bool
}

type TuningReloaded struct {
	Name string
	Err  error
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
