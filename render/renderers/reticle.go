package renderers

import (
	"math"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/render"
)

var colorLocked = render.Hex("#ef4444")

// ReticleRenderer draws the aim marker ahead of the craft
type ReticleRenderer struct {
	worldLayer
}

// NewReticleRenderer creates a reticle renderer
func NewReticleRenderer() *ReticleRenderer {
	return &ReticleRenderer{}
}

// Render implements SystemRenderer
func (r *ReticleRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	s := ctx.State
	if s.Crashing() {
		return
	}
	pos := s.Player.Pos
	p := project(c, pos.X, pos.Y, pos.Z+constants.ReticleDepth)

	col, size, alpha := render.White, 10.0, 0.4
	locked := Targeted(s)
	if locked {
		col, size, alpha = colorLocked, 15.0, 1.0
	}

	c.Save()
	c.SetAlpha(alpha)
	c.Line(p.X-size, p.Y, p.X+size, p.Y, col, 2)
	c.Line(p.X, p.Y-size, p.X, p.Y+size, col, 2)
	if locked {
		c.StrokeCircle(p.X, p.Y, size*1.5, col, 2)
	}
	c.Restore()
}

// Targeted reports whether an asteroid sits inside the forward cone of the craft
func Targeted(s *engine.State) bool {
	pos := s.Player.Pos
	for _, e := range s.Entities {
		if !e.Active || e.Type != engine.TypeAsteroid {
			continue
		}
		ahead := e.Pos.Z - pos.Z
		if ahead > constants.ReticleMinAhead && ahead < constants.ReticleMaxAhead &&
			math.Abs(e.Pos.X-pos.X) < e.Width {
			return true
		}
	}
	return false
}
