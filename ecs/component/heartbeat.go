package component

// Heartbeat is a scrolling strip chart of a single signal, used as the
// on-screen debug widget for controller speed. Value is fed each tick;
// the heartbeat system smooths, autoscales, and records it.
type Heartbeat struct {
	Value float64

	MaxSamples int
	Samples    []float64

	// smoothing & scaling
	EMA          float64
	EMAAlpha     float64
	Peak         float64
	PeakFallPerS float64
	ScaleMin     float64
	ScaleMax     float64
	ScaleLerp    float64

	// visuals
	BarWidthPx float64
	MinBarPx   float64
}

// NewHeartbeat returns a widget with the stock smoothing and scaling
// parameters. More samples means more visible history.
func NewHeartbeat(maxSamples int) *Heartbeat {
	if maxSamples <= 0 {
		maxSamples = 120
	}
	return &Heartbeat{
		MaxSamples:   maxSamples,
		Samples:      make([]float64, maxSamples),
		EMAAlpha:     0.25,
		PeakFallPerS: 6.0,
		ScaleMax:     1.0,
		ScaleLerp:    0.12,
		BarWidthPx:   2.0,
		MinBarPx:     1.0,
	}
}

var HeartbeatComponent = NewComponent[Heartbeat]()
