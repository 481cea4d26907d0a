package component

import "github.com/milk9111/floater/physics"

// PhysicsBody links an entity to its dynamic body in the physics world.
type PhysicsBody struct {
	Body *physics.Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Platform links an entity to a kinematic moving platform.
type Platform struct {
	Platform *physics.Platform
}

var PlatformComponent = NewComponent[Platform]()
