package motion

// Config holds the tuning constants for the locomotion controller. Every
// field can be adjusted live without invalidating controller invariants.
type Config struct {
	// MaxSpeed is the horizontal speed the acceleration ramp approaches.
	MaxSpeed float64 `yaml:"max_speed"`
	// AccelRate is the exponential ramp constant k in 1-e^(-k*t).
	AccelRate float64 `yaml:"accel_rate"`
	// DecelRate is the inverse-square decay constant a in 1/(1+a*t)^2.
	DecelRate float64 `yaml:"decel_rate"`

	// HardTurnDot is the dot-product threshold at or below which an input
	// direction counts as a reversal (~135 degrees and beyond).
	HardTurnDot float64 `yaml:"hard_turn_dot"`
	// SoftTurnDot is the dot-product threshold at or below which an input
	// direction counts as a moderate turn (~45 to ~135 degrees).
	SoftTurnDot float64 `yaml:"soft_turn_dot"`
	// SoftTurnFactor multiplies the tick's speed during a moderate turn.
	SoftTurnFactor float64 `yaml:"soft_turn_factor"`

	// StopEpsilon is the speed below which motion snaps to a full stop.
	StopEpsilon float64 `yaml:"stop_epsilon"`
	// HardTurnHoldTime is how long a hard turn pins the body in place, in
	// seconds.
	HardTurnHoldTime float64 `yaml:"hard_turn_hold_time"`

	// FallDecelRate bleeds horizontal speed while airborne, units/s^2.
	FallDecelRate float64 `yaml:"fall_decel_rate"`
	// GravityAccel is the vertical acceleration while airborne, units/s^2.
	// Negative is down.
	GravityAccel float64 `yaml:"gravity_accel"`
	// TerminalFactor caps fall speed at -TerminalFactor*MaxSpeed.
	TerminalFactor float64 `yaml:"terminal_factor"`
}

// DefaultConfig returns the tuning used by the demo.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:         6,
		AccelRate:        6,
		DecelRate:        6,
		HardTurnDot:      -0.707,
		SoftTurnDot:      0.707,
		SoftTurnFactor:   0.5,
		StopEpsilon:      0.02,
		HardTurnHoldTime: 0.1,
		FallDecelRate:    12,
		GravityAccel:     -18,
		TerminalFactor:   3,
	}
}
