package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// surfaceEpsilon absorbs float creep when comparing body height against
// a platform surface.
const surfaceEpsilon = 1e-6

// GroundingSystem is the grounding oracle. It mirrors platform entities
// into a static chipmunk space and, for each controlled body, point
// queries the footprint to decide whether the body is supported and at
// what height. It runs after the integrator, so its verdict is consumed
// on the following tick.
type GroundingSystem struct {
	space  *cp.Space
	synced map[ecs.Entity]*cp.Shape
}

func NewGroundingSystem() *GroundingSystem {
	return &GroundingSystem{
		space:  cp.NewSpace(),
		synced: map[ecs.Entity]*cp.Shape{},
	}
}

func (s *GroundingSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.syncPlatforms(w)

	for _, e := range w.Query(component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.GroundStateComponent.Kind()) {
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		gs, ok := ecs.Get(w, e, component.GroundStateComponent)
		if !ok {
			continue
		}

		surface, supported := s.SupportAt(cp.Vector{X: tr.X, Y: tr.Y})
		gs.HasSupport = supported
		gs.SupportHeight = surface
		gs.Falling = !supported || tr.Height > surface+surfaceEpsilon
	}
}

// SupportAt reports the surface height of the ground under a footprint
// point, if any.
func (s *GroundingSystem) SupportAt(point cp.Vector) (float64, bool) {
	info := s.space.PointQueryNearest(point, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	surface, ok := info.Shape.UserData.(float64)
	if !ok {
		return 0, false
	}
	return surface, true
}

// syncPlatforms adds a static box shape for every platform entity not
// yet mirrored into the space. Platforms are static for the lifetime of
// a level, so removal is handled by dropping dead entities' shapes.
func (s *GroundingSystem) syncPlatforms(w *ecs.World) {
	ecs.ForEach(w, component.PlatformComponent, func(e ecs.Entity, p *component.Platform) {
		if _, ok := s.synced[e]; ok {
			return
		}
		bb := cp.BB{
			L: p.X - p.Width/2,
			B: p.Y - p.Length/2,
			R: p.X + p.Width/2,
			T: p.Y + p.Length/2,
		}
		shape := cp.NewBox2(s.space.StaticBody, bb, 0)
		shape.UserData = p.Surface
		s.space.AddShape(shape)
		s.synced[e] = shape
	})

	for e, shape := range s.synced {
		if !w.IsAlive(e) {
			s.space.RemoveShape(shape)
			delete(s.synced, e)
		}
	}
}
