package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/motion"
)

// MotionSystem steps the locomotion controller for every controlled
// body. It reads the grounding verdict the grounding system wrote at
// the end of the previous tick; that one-tick delay is part of the
// ordering contract (input -> motion -> integrate -> grounding).
type MotionSystem struct {
	dt float64
}

func NewMotionSystem(dt float64) *MotionSystem {
	return &MotionSystem{dt: dt}
}

// SetDT changes the tick duration; the controller is correct for any
// dt >= 0.
func (s *MotionSystem) SetDT(dt float64) {
	s.dt = dt
}

func (s *MotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.MotionComponent.Kind(), component.InputComponent.Kind()) {
		mo, ok := ecs.Get(w, e, component.MotionComponent)
		if !ok || mo.Config == nil {
			continue
		}
		in, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		falling := false
		if gs, ok := ecs.Get(w, e, component.GroundStateComponent); ok {
			falling = gs.Falling
		}
		motion.Step(&mo.State, *mo.Config, motion.Input{
			DT:      s.dt,
			Desired: in.Desired,
			Falling: falling,
		})
	}
}
