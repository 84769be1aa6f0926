package entity

import (
	"fmt"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{
		TargetName: spec.Target,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	}); err != nil {
		return 0, fmt.Errorf("camera: camera: %w", err)
	}

	return e, nil
}
