package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewLevel builds one platform entity per spec entry. Platforms are the
// only walkable ground; everything off them is a fall.
func NewLevel(w *ecs.World, spec *prefabs.LevelSpec) ([]ecs.Entity, error) {
	entities := make([]ecs.Entity, 0, len(spec.Platforms))
	for i, p := range spec.Platforms {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.PlatformComponent, &component.Platform{
			X:       p.X,
			Y:       p.Y,
			Width:   p.Width,
			Length:  p.Length,
			Surface: p.Surface,
		}); err != nil {
			return nil, fmt.Errorf("level: platform %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
			Width:  p.Width,
			Height: p.Length,
			Color:  p.Color.NRGBA(color.NRGBA{R: 0x4a, G: 0x6a, B: 0x3a, A: 0xff}),
		}); err != nil {
			return nil, fmt.Errorf("level: platform sprite %d: %w", i, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}
