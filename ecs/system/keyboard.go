package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const stickDeadzone = 0.3

// KeyboardSource polls WASD/arrow keys and, when a gamepad is present,
// folds the left stick into the held-key set.
type KeyboardSource struct{}

func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{}
}

func (k *KeyboardSource) Held() HeldKeys {
	held := HeldKeys{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			held.Left = held.Left || lx < 0
			held.Right = held.Right || lx > 0
		}
		// stick up is negative Y on the standard mapping
		if math.Abs(ly) > stickDeadzone {
			held.Forward = held.Forward || ly < 0
			held.Backward = held.Backward || ly > 0
		}
	}
	return held
}
