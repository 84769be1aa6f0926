package system

import (
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// HeldKeys is the digital key-state set the direction reader reduces.
type HeldKeys struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// InputSource produces the held-key set for the current tick. The
// keyboard source polls ebiten; the script source runs a tengo script;
// tests supply fixed sets.
type InputSource interface {
	Held() HeldKeys
}

// DirectionFromKeys reduces a held-key set to a unit direction, or the
// zero vector when nothing is held or opposing keys cancel. Idempotent
// and deterministic for a given key set.
func DirectionFromKeys(k HeldKeys) cp.Vector {
	var raw cp.Vector
	if k.Forward {
		raw.Y += 1
	}
	if k.Backward {
		raw.Y -= 1
	}
	if k.Right {
		raw.X += 1
	}
	if k.Left {
		raw.X -= 1
	}
	if raw.LengthSq() > 0 {
		return raw.Normalize()
	}
	return cp.Vector{}
}

// DirectionLabel renders a direction as text for the debug overlay.
func DirectionLabel(dir cp.Vector) string {
	if dir == (cp.Vector{}) {
		return "Idle"
	}
	var parts []string
	if dir.Y > 0 {
		parts = append(parts, "Forward")
	}
	if dir.Y < 0 {
		parts = append(parts, "Backward")
	}
	if dir.X > 0 {
		parts = append(parts, "Right")
	}
	if dir.X < 0 {
		parts = append(parts, "Left")
	}
	return strings.Join(parts, " ")
}

// InputSystem samples its source once per tick and writes the reduced
// desired direction into every Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.source == nil || w == nil {
		return
	}
	dir := DirectionFromKeys(s.source.Held())
	label := DirectionLabel(dir)
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		in.Desired = dir
		in.Label = label
	})
}
