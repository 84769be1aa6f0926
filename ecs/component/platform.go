package component

// Platform is a rectangular patch of walkable ground on the plane.
// Surface is the height of its top face.
type Platform struct {
	X       float64
	Y       float64
	Width   float64
	Length  float64
	Surface float64
}

var PlatformComponent = NewComponent[Platform]()
