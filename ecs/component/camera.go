package component

// Camera follows a named target entity with positional smoothing.
type Camera struct {
	TargetName string
	Zoom       float64
	// Smoothness in [0,1): 0 snaps, higher values trail further behind.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
