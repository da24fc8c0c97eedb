package renderers

import (
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/render"
)

// ParticlesRenderer draws explosion fragments fading with their life
type ParticlesRenderer struct {
	worldLayer
}

// NewParticlesRenderer creates a particles renderer
func NewParticlesRenderer() *ParticlesRenderer {
	return &ParticlesRenderer{}
}

// Render implements SystemRenderer
func (r *ParticlesRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	c.Save()
	for _, pt := range ctx.State.Particles {
		if pt.Pos.Z < constants.CullZ {
			continue
		}
		p := project(c, pt.Pos.X, pt.Pos.Y, pt.Pos.Z)
		size := pt.Size * p.Scale
		c.SetAlpha(pt.Life)
		c.FillRect(p.X-size/2, p.Y-size/2, size, size, render.Hex(pt.Color))
	}
	c.Restore()
}
