package component

import "github.com/milk9111/floater/controller"

// Player holds a floating controller together with the state it mutates.
// Tuning names the prefab the controller was built from so it can be
// rebuilt on reload.
type Player struct {
	Controller *controller.Controller
	State      controller.State
	Tuning     string

	Last    controller.TickResult
	HasLast bool
}

var PlayerComponent = NewComponent[Player]()
