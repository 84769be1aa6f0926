package motion

import (
	"math"

	"github.com/jakecoffman/cp"
)

// minInputLengthSq is the squared magnitude below which a desired direction
// is treated as no input rather than renormalized.
const minInputLengthSq = 1e-12

// Input is everything the controller consumes on one tick.
type Input struct {
	// DT is the elapsed time in seconds. Negative values are treated as 0.
	DT float64
	// Desired is the unit-or-zero direction the player wants to move.
	// Non-unit vectors are renormalized; near-zero vectors mean no input.
	Desired cp.Vector
	// Falling reports whether the grounding check left the body
	// unsupported on the previous tick.
	Falling bool
}

// State is the persistent motion state for one controlled body. It is
// created once, mutated exactly once per tick by Step, and read by the
// integrator and debug overlays. Only Step writes it.
type State struct {
	// Dir is the last adopted unit movement direction. It keeps its value
	// when speed reaches 0 so the body retains its facing.
	Dir cp.Vector
	// Speed is the current scalar speed, always >= 0.
	Speed float64
	// Velocity is always Dir scaled by Speed, or the zero vector at rest.
	Velocity cp.Vector
	// FallVelocityY is the vertical speed while airborne, always <= 0.
	FallVelocityY float64

	accelerating    bool
	curveTime       float64
	curveStartSpeed float64

	lockActive  bool
	lockTimer   float64
	lockPending cp.Vector
}

// NewState returns a state at rest with a default forward facing.
func NewState() State {
	return State{Dir: cp.Vector{X: 0, Y: 1}}
}

// Accelerating reports which curve regime the last tick used.
func (st *State) Accelerating() bool { return st.accelerating }

// TurnLocked reports whether a hard turn currently pins the body.
func (st *State) TurnLocked() bool { return st.lockActive }

// Step advances the controller by one tick. It is pure and synchronous:
// no branch blocks, fails, or partially applies.
func Step(st *State, cfg Config, in Input) {
	dt := in.DT
	if dt < 0 {
		dt = 0
	}

	desired, hasInput := sanitizeDesired(in.Desired)

	// Falling pre-empts everything. Horizontal speed bleeds linearly (air
	// control is deliberately unresponsive, so the ground curves don't
	// apply) and all ground sub-state is forced inert so landing resumes
	// cleanly.
	if in.Falling {
		st.Speed -= cfg.FallDecelRate * dt
		if st.Speed <= cfg.StopEpsilon {
			st.Speed = 0
		}
		terminal := -cfg.TerminalFactor * cfg.MaxSpeed
		st.FallVelocityY = math.Max(st.FallVelocityY+cfg.GravityAccel*dt, terminal)

		st.accelerating = false
		st.curveTime = 0
		st.curveStartSpeed = st.Speed
		st.clearLock()
		st.refreshVelocity()
		return
	}
	st.FallVelocityY = 0

	if st.lockActive {
		if !hasInput {
			// Releasing input during a hard turn is the escape hatch:
			// cancel the lock and stop hard on the spot.
			st.stopHard()
			st.refreshVelocity()
			return
		}
		st.lockPending = desired
		st.lockTimer += dt
		if st.lockTimer < cfg.HardTurnHoldTime {
			st.Speed = 0
			st.Velocity = cp.Vector{}
			return
		}
		// Lock released: adopt the held direction and restart the
		// acceleration ramp from 0 speed. Falls through to the normal
		// grounded update so the first ramp sample lands this tick.
		st.clearLock()
		st.Dir = desired
		st.Speed = 0
		st.accelerating = true
		st.curveTime = 0
		st.curveStartSpeed = 0
	} else if st.Speed > cfg.StopEpsilon && hasInput {
		dot := st.Dir.Dot(desired)
		if dot <= cfg.HardTurnDot {
			// Reversal: full stop, then hold still until the lock
			// timer expires or input is released.
			st.stopHard()
			st.lockActive = true
			st.lockPending = desired
			st.refreshVelocity()
			return
		}
	}

	softTurn := false
	if st.Speed > cfg.StopEpsilon && hasInput {
		if dot := st.Dir.Dot(desired); dot <= cfg.SoftTurnDot {
			// One-tick penalty, re-evaluated every tick the moderate
			// angle holds. Not sticky.
			softTurn = true
		}
	}

	// Direction snaps to input instantly; only speed ramps.
	if hasInput {
		st.Dir = desired
	}

	if hasInput != st.accelerating {
		// Regime change: restart the active ramp from the speed at this
		// instant so the curve is continuous across the switch.
		st.accelerating = hasInput
		st.curveTime = 0
		st.curveStartSpeed = st.Speed
	}
	st.curveTime += dt

	if st.accelerating {
		ramp := clamp01(AccelRamp(st.curveTime, cfg.AccelRate))
		st.Speed = st.curveStartSpeed + (cfg.MaxSpeed-st.curveStartSpeed)*ramp
	} else {
		st.Speed = st.curveStartSpeed * DecelRamp(st.curveTime, cfg.DecelRate)
	}
	if softTurn {
		st.Speed *= cfg.SoftTurnFactor
	}
	if !hasInput && st.Speed < cfg.StopEpsilon {
		st.Speed = 0
	}
	st.refreshVelocity()
}

// stopHard zeroes speed, velocity, curve state, and the turn lock.
func (st *State) stopHard() {
	st.Speed = 0
	st.Velocity = cp.Vector{}
	st.accelerating = false
	st.curveTime = 0
	st.curveStartSpeed = 0
	st.clearLock()
}

func (st *State) clearLock() {
	st.lockActive = false
	st.lockTimer = 0
	st.lockPending = cp.Vector{}
}

func (st *State) refreshVelocity() {
	if st.Speed > 0 {
		st.Velocity = st.Dir.Mult(st.Speed)
	} else {
		st.Velocity = cp.Vector{}
	}
}

// sanitizeDesired renormalizes a malformed desired direction. Near-zero
// magnitude counts as no input; a tick never fails on bad input.
func sanitizeDesired(v cp.Vector) (cp.Vector, bool) {
	lsq := v.LengthSq()
	if lsq < minInputLengthSq {
		return cp.Vector{}, false
	}
	if math.Abs(lsq-1) > 1e-9 {
		return v.Mult(1 / math.Sqrt(lsq)), true
	}
	return v, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
