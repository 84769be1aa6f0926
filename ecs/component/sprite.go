package component

import "image/color"

// Sprite is a flat-colored quad. The render system owns the backing
// images so headless runs never touch the GPU.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.NRGBA
}

var SpriteComponent = NewComponent[Sprite]()
