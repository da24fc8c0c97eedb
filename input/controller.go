package input

import (
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/vmath"
)

// Controller accumulates flight intents into the per-frame simulation input
// Owned by the loop goroutine
type Controller struct {
	target  engine.Target
	pointer bool // Button held
	burst   int  // Frames of keyboard fire remaining
}

// NewController creates a controller aiming at the center
func NewController() *Controller {
	return &Controller{}
}

// Reset centers the target and releases fire
func (c *Controller) Reset() {
	c.target = engine.Target{}
	c.pointer = false
	c.burst = 0
}

// Target returns the current absolute target
func (c *Controller) Target() engine.Target {
	return c.target
}

// Apply folds a flight intent into the controller
// cols/rows and width/height describe the terminal and the virtual canvas for pointer mapping
func (c *Controller) Apply(in *Intent, cols, rows int, width, height float64) {
	switch in.Type {
	case IntentSteer:
		c.target = Steer(c.target, in.DX, in.DY)
	case IntentFire:
		c.burst = constants.FireBurstFrames
	case IntentPointer:
		c.target = PointerTarget(in.Col, in.Row, cols, rows, width, height)
		c.pointer = in.Firing
	}
}

// Input returns this frame's input and consumes one burst frame
func (c *Controller) Input() engine.Input {
	firing := c.pointer || c.burst > 0
	if c.burst > 0 {
		c.burst--
	}
	return engine.Input{Target: c.target, Firing: firing}
}

// Steer moves the target one keyboard step, clamped to the reachable area
func Steer(t engine.Target, dx, dy int) engine.Target {
	limitY := constants.FloorY - constants.FloorMargin
	return engine.Target{
		X: vmath.Clamp(t.X+float64(dx)*constants.KeyboardStep, -constants.PlayableWidth, constants.PlayableWidth),
		Y: vmath.Clamp(t.Y+float64(dy)*constants.KeyboardStep, -limitY, limitY),
	}
}

// PointerTarget maps a terminal cell to a world target on the near collision plane
// The result is clamped to the reachable area so the craft never banks against a wall
func PointerTarget(col, row, cols, rows int, width, height float64) engine.Target {
	if cols <= 0 || rows <= 0 {
		return engine.Target{}
	}
	sx := (float64(col) + 0.5) * width / float64(cols)
	sy := (float64(row) + 0.5) * height / float64(rows)
	x, y := vmath.Unproject(sx, sy, width, height, constants.NearZ)
	limitY := constants.FloorY - constants.FloorMargin
	return engine.Target{
		X: vmath.Clamp(x, -constants.PlayableWidth, constants.PlayableWidth),
		Y: vmath.Clamp(y, -limitY, limitY),
	}
}
