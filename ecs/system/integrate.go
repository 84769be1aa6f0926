package system

import (
	"log"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/motion"
)

// IntegrateSystem applies controller output to transforms: horizontal
// velocity on the plane, fall velocity on the height axis, and the snap
// to the supporting surface on landing. It also respawns bodies that
// fall below the kill height.
type IntegrateSystem struct {
	dt         float64
	killHeight float64
}

func NewIntegrateSystem(dt, killHeight float64) *IntegrateSystem {
	return &IntegrateSystem{dt: dt, killHeight: killHeight}
}

func (s *IntegrateSystem) SetDT(dt float64) {
	s.dt = dt
}

func (s *IntegrateSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.MotionComponent.Kind(), component.TransformComponent.Kind()) {
		mo, ok := ecs.Get(w, e, component.MotionComponent)
		if !ok {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		st := &mo.State
		tr.X += st.Velocity.X * s.dt
		tr.Y += st.Velocity.Y * s.dt

		if gs, ok := ecs.Get(w, e, component.GroundStateComponent); ok {
			if gs.Falling {
				tr.Height += st.FallVelocityY * s.dt
			} else if gs.HasSupport {
				tr.Height = gs.SupportHeight
			}
		}

		if tr.Height < s.killHeight {
			if sp, ok := ecs.Get(w, e, component.SpawnComponent); ok {
				log.Printf("integrate: entity %s fell out of the world, respawning", e)
				tr.X = sp.X
				tr.Y = sp.Y
				tr.Height = 0
				mo.State = motion.NewState()
				if gs, ok := ecs.Get(w, e, component.GroundStateComponent); ok {
					*gs = component.GroundState{}
				}
			}
		}
	}
}
