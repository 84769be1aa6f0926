package motion

import "math"

// AccelRamp is an exponential ease toward 1. It returns a value in [0, 1)
// that approaches 1 as t grows. Negative t is clamped to 0.
func AccelRamp(t, k float64) float64 {
	return 1.0 - math.Exp(-k*math.Max(t, 0))
}

// DecelRamp is an inverse-square decay toward 0. It returns a value in
// (0, 1] that approaches 0 as t grows but never reaches it; callers snap
// to zero below their stop epsilon. Negative t is clamped to 0.
func DecelRamp(t, a float64) float64 {
	d := 1.0 + a*math.Max(t, 0)
	return 1.0 / (d * d)
}
