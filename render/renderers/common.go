package renderers

import (
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/render"
	"github.com/lixenwraith/sky-pilot/vmath"
)

// project maps a world point onto the canvas
func project(c *render.Canvas, x, y, z float64) vmath.Projection {
	return vmath.Project(x, y, z, c.Width(), c.Height())
}

// nearFade returns the opacity of an entity approaching the near plane
func nearFade(z float64) float64 {
	if z >= constants.NearZ+100 {
		return 1
	}
	return vmath.Clamp((z-(constants.NearZ-50))/constants.NearFadeSpan, 0, 1)
}

// worldLayer hides a renderer outside the running screens
type worldLayer struct{}

// IsVisible implements render.VisibilityToggle
func (worldLayer) IsVisible(ctx render.RenderContext) bool {
	return ctx.InWorld()
}
