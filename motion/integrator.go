// Package motion advances the player against the collision mask. All math
// is integer 8.8 fixed-point: input shaping, velocity smoothing and the
// sub-pixel integration are exactly reproducible from the same inputs,
// with no floating point anywhere in the path.
package motion

import (
	"glowgrid.dev/glowgrid/collision"
	"glowgrid.dev/glowgrid/fixed"
	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/maze"
)

// Config is the movement tuning. Fractions are rational (numerator over
// denominator) so smoothing and friction stay in integer arithmetic.
type Config struct {
	Deadzone    int16 // raw axis units below which a stick reads as centered
	SmoothNum   int32 // velocity approaches target by SmoothNum/SmoothDen per tick
	SmoothDen   int32
	FrictionNum int32 // idle-axis velocity decays by FrictionNum/FrictionDen per tick
	FrictionDen int32
	TickMillis  int // logic tick duration used to derive per-tick speed
}

// DefaultConfig returns the tuning the labyrinth ships with.
func DefaultConfig() Config {
	return Config{
		Deadzone:    92, // ~0.18 of full deflection
		SmoothNum:   22,
		SmoothDen:   100,
		FrictionNum: 85,
		FrictionDen: 100,
		TickMillis:  16,
	}
}

// Agent is the moving player: fixed-point top-left position and per-tick
// velocity, plus its integer speed rating and square footprint size.
type Agent struct {
	X, Y   int32 // 8.8 fixed-point screen position of the top-left pixel
	VX, VY int32 // 8.8 fixed-point velocity, pixels per tick
	Speed  int   // max speed in pixels per second
	Size   int   // footprint edge in pixels (>= 1)
}

// Integrator holds the agent and steps it each tick.
type Integrator struct {
	cfg   Config
	Agent Agent
}

// NewIntegrator creates an Integrator with the given tuning.
func NewIntegrator(cfg Config) *Integrator {
	return &Integrator{cfg: cfg}
}

// Reset places the agent at pixel (px, py) with zero velocity and the
// given speed rating and footprint size.
func (it *Integrator) Reset(px, py, speed, size int) {
	it.Agent = Agent{
		X:     fixed.FromInt(px),
		Y:     fixed.FromInt(py),
		Speed: speed,
		Size:  size,
	}
}

// Step shapes one tick of input and advances the agent against mask.
// After it returns, the agent's footprint is guaranteed to cover only
// walkable pixels.
func (it *Integrator) Step(in render.InputState, mask *collision.Mask) {
	rawX, rawY := shapeAxes(in, it.cfg.Deadzone)

	maxStep := maxStepPerTick(it.Agent.Speed, it.cfg.TickMillis)
	targetVX := fixed.Sign(int32(rawX)) * maxStep
	targetVY := fixed.Sign(int32(rawY)) * maxStep

	it.Agent.VX = lerp(it.Agent.VX, targetVX, it.cfg.SmoothNum, it.cfg.SmoothDen)
	it.Agent.VY = lerp(it.Agent.VY, targetVY, it.cfg.SmoothNum, it.cfg.SmoothDen)

	// Friction on idle axes so residual smoothing settles instead of
	// coasting the agent past a turn.
	if targetVX == 0 {
		it.Agent.VX = mulFrac(it.Agent.VX, it.cfg.FrictionNum, it.cfg.FrictionDen)
	}
	if targetVY == 0 {
		it.Agent.VY = mulFrac(it.Agent.VY, it.cfg.FrictionNum, it.cfg.FrictionDen)
	}

	it.stepAxis(true, mask)
	it.stepAxis(false, mask)
}

// stepAxis consumes one axis's velocity in sub-steps of at most one whole
// pixel, testing the footprint after each. A hit zeroes the axis velocity
// and ends the axis for this tick; this is what rules out tunneling
// through one-cell walls no matter the speed.
func (it *Integrator) stepAxis(xAxis bool, mask *collision.Mask) {
	pos := &it.Agent.X
	vel := &it.Agent.VX
	if !xAxis {
		pos = &it.Agent.Y
		vel = &it.Agent.VY
	}

	remaining := *vel
	for remaining != 0 {
		step := remaining
		if fixed.Abs(remaining) > fixed.One {
			step = fixed.Sign(remaining) * fixed.One
		}
		next := *pos + step

		var hit bool
		if xAxis {
			hit = mask.RectSolid(fixed.Floor(next), fixed.Floor(it.Agent.Y), it.Agent.Size)
		} else {
			hit = mask.RectSolid(fixed.Floor(it.Agent.X), fixed.Floor(next), it.Agent.Size)
		}
		if hit {
			*vel = 0
			return
		}
		*pos = next
		remaining -= step
	}
}

// AtExit reports whether the agent's footprint center sits on the exit
// cell of grid.
func (it *Integrator) AtExit(grid *maze.Grid) bool {
	px := fixed.Floor(it.Agent.X) + it.Agent.Size/2
	py := fixed.Floor(it.Agent.Y) + it.Agent.Size/2
	cx, cy, ok := grid.ScreenToCell(px, py)
	if !ok {
		return false
	}
	return grid.At(cx, cy) == maze.TileExit
}

// shapeAxes turns a raw input snapshot into the tick's movement axes:
// deadzone with rescaling, digital fallback, and dominant-axis resolution
// (movement is strictly 4-directional, so diagonal stick pressure picks
// the stronger axis).
func shapeAxes(in render.InputState, deadzone int16) (int16, int16) {
	x := applyDeadzone(in.AxisX, deadzone)
	y := applyDeadzone(in.AxisY, deadzone)

	if x == 0 && y == 0 {
		if in.Dpad&render.DpadLeft != 0 {
			x = -render.AxisRange
		} else if in.Dpad&render.DpadRight != 0 {
			x = render.AxisRange
		}
		if in.Dpad&render.DpadUp != 0 {
			y = -render.AxisRange
		} else if in.Dpad&render.DpadDown != 0 {
			y = render.AxisRange
		}
	}

	if x != 0 && y != 0 {
		if abs16(x) >= abs16(y) {
			y = 0
		} else {
			x = 0
		}
	}
	return x, y
}

// applyDeadzone clamps values inside the deadzone to zero and rescales
// the rest so output runs continuously from 0 at the deadzone edge to
// full range at full deflection.
func applyDeadzone(v, dz int16) int16 {
	a := abs16(v)
	if a < dz {
		return 0
	}
	scaled := int32(a-dz) * int32(render.AxisRange) / int32(render.AxisRange-dz)
	if scaled > int32(render.AxisRange) {
		scaled = int32(render.AxisRange)
	}
	if v < 0 {
		return int16(-scaled)
	}
	return int16(scaled)
}

// maxStepPerTick converts a px/s speed rating into the per-tick step in
// fixed-point units: speed * 256 * tickMs / 1000, truncating.
func maxStepPerTick(speedPxPerS, tickMs int) int32 {
	return int32(speedPxPerS) * fixed.One * int32(tickMs) / 1000
}

// lerp moves cur toward target by num/den in integer arithmetic.
func lerp(cur, target, num, den int32) int32 {
	delta := target - cur
	return cur + int32(int64(delta)*int64(num)/int64(den))
}

func mulFrac(v, num, den int32) int32 {
	return int32(int64(v) * int64(num) / int64(den))
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
