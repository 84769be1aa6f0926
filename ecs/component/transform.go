package component

// Transform places an entity on the ground plane. X/Y are plane
// coordinates; Height is elevation above the plane (0 = standing on
// ground at height 0, negative = below the world).
type Transform struct {
	X      float64
	Y      float64
	Height float64
}

var TransformComponent = NewComponent[Transform]()
