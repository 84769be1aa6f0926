package component

import "github.com/jakecoffman/cp"

// Input stores the per-tick desired movement direction for an entity.
// Desired is a unit vector, or zero when no net direction is held.
type Input struct {
	Desired cp.Vector
	// Label is a human-readable rendering of the held direction, e.g.
	// "Forward Right" or "Idle".
	Label string
}

var InputComponent = NewComponent[Input]()
