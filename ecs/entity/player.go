package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/motion"
	"github.com/milk9111/topdown/prefabs"
)

// NewPlayer builds the controlled body from its spec. The motion config
// pointer is shared with the tuning system so live reloads apply.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, cfg *motion.Config) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X: spec.Spawn.X,
		Y: spec.Spawn.Y,
	}); err != nil {
		return 0, fmt.Errorf("player: transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpawnComponent, &component.Spawn{
		X: spec.Spawn.X,
		Y: spec.Spawn.Y,
	}); err != nil {
		return 0, fmt.Errorf("player: spawn: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{Label: "Idle"}); err != nil {
		return 0, fmt.Errorf("player: input: %w", err)
	}
	mo := &component.Motion{State: motion.NewState(), Config: cfg}
	if err := ecs.Add(w, e, component.MotionComponent, mo); err != nil {
		return 0, fmt.Errorf("player: motion: %w", err)
	}
	if err := ecs.Add(w, e, component.GroundStateComponent, &component.GroundState{}); err != nil {
		return 0, fmt.Errorf("player: ground state: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
		Color:  spec.Sprite.Color.NRGBA(color.NRGBA{R: 0xcc, G: 0xcc, B: 0xee, A: 0xff}),
	}); err != nil {
		return 0, fmt.Errorf("player: sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.HeartbeatComponent, component.NewHeartbeat(spec.Heartbeat.Samples)); err != nil {
		return 0, fmt.Errorf("player: heartbeat: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: tag: %w", err)
	}

	return e, nil
}
