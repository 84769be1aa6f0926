package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// CameraSystem eases the camera transform toward its target entity.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	if !cs.camEntity.Valid() {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() {
		target := findEntityByNameOrTag(w, cam.TargetName)
		if !target.Valid() {
			return
		}
		cs.targetEntity = target
	}

	targetTr, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}
	camTr, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}

	t := 1 - common.Clamp(cam.Smoothness, 0, 0.99)
	camTr.X = common.Lerp(camTr.X, targetTr.X, t)
	camTr.Y = common.Lerp(camTr.Y, targetTr.Y, t)
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
