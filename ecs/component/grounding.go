package component

// GroundState is the grounding verdict for a body's footprint, written
// by the grounding system at the end of a tick and read by the motion
// controller and integrator on the next tick. The one-tick delay is the
// contract, not an accident; it keeps grounded/falling from oscillating
// within a single tick.
type GroundState struct {
	Falling bool
	// HasSupport reports whether any ground exists under the footprint,
	// regardless of current elevation.
	HasSupport bool
	// SupportHeight is the surface height under the footprint when
	// HasSupport is true. The integrator snaps to it on landing; the
	// controller never reads it.
	SupportHeight float64
}

var GroundStateComponent = NewComponent[GroundState]()
