package renderers

import (
	"math"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/render"
)

const (
	sunRadius      = 150.0
	sunLift        = 50.0
	sunStripeCount = 10
	sunStripeWidth = 320.0
)

// BackgroundRenderer draws the sky, the striped sun, lane guides and the scrolling floor grid
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	w, h := c.Width(), c.Height()
	top, bottom := render.Hex(constants.ColorSkyTop), render.Hex(constants.ColorSkyBottom)

	// Oversized to cover the shake offset
	c.FillGradientRect(-sunRadius, -sunRadius, w+2*sunRadius, h+2*sunRadius, top, bottom)
	r.drawSun(c, top, bottom)

	if !ctx.InWorld() {
		return
	}
	r.drawGuides(c)
	r.drawGrid(c, float64(ctx.State.Frame)*ctx.State.Speed)
}

func (r *BackgroundRenderer) drawSun(c *render.Canvas, skyTop, skyBottom render.Color) {
	w, h := c.Width(), c.Height()
	cx, cy := w/2, h/2-sunLift
	c.FillCircleGradient(cx, cy, sunRadius, render.Hex(constants.ColorSunTop), render.Hex(constants.ColorSunBottom))

	for i := 0; i < sunStripeCount; i++ {
		y := cy + 20 + float64(i)*12
		sh := 4 + float64(i)*0.5
		sky := render.Gradient(skyTop, skyBottom, y/h)
		c.FillRect(cx-sunStripeWidth/2, y, sunStripeWidth, sh, sky)
	}
}

func (r *BackgroundRenderer) drawGuides(c *render.Canvas) {
	boundary := render.Hex(constants.ColorBoundary)
	for _, side := range []float64{-1, 1} {
		near := project(c, side*constants.PlayableWidth, constants.FloorY, 0)
		far := project(c, side*constants.PlayableWidth, constants.FloorY, constants.SpawnZ)

		// Glow
		c.Save()
		c.SetAlpha(0.25)
		c.Line(near.X, near.Y, far.X, far.Y, boundary, 12)
		c.Restore()
		c.Line(near.X, near.Y, far.X, far.Y, boundary, 4)

		sNear := project(c, side*constants.SpawnRangeX, constants.FloorY, 0)
		sFar := project(c, side*constants.SpawnRangeX, constants.FloorY, constants.SpawnZ)
		c.Save()
		c.SetAlpha(0.2)
		c.Line(sNear.X, sNear.Y, sFar.X, sFar.Y, boundary, 2)
		c.Restore()
	}

	near := project(c, 0, constants.FloorY, 0)
	far := project(c, 0, constants.FloorY, constants.SpawnZ)
	c.Save()
	c.SetAlpha(0.3)
	c.DashedLine(near.X, near.Y, far.X, far.Y, render.Hex(constants.ColorCenterLine), 2, 20, 20)
	c.Restore()
}

// drawGrid draws floor lines every GridSpacing, scrolled by the distance flown
func (r *BackgroundRenderer) drawGrid(c *render.Canvas, travelled float64) {
	offset := math.Mod(travelled, constants.GridSpacing)
	extent := constants.PlayableWidth * constants.GridExtent
	grid := render.Hex(constants.ColorGrid)

	c.Save()
	c.SetAlpha(0.4)
	for z := 0.0; z < constants.SpawnZ; z += constants.GridSpacing {
		rz := z - offset
		if rz < 10 {
			continue
		}
		a := project(c, -extent, constants.FloorY, rz)
		b := project(c, extent, constants.FloorY, rz)
		c.Line(a.X, a.Y, b.X, b.Y, grid, 2)
	}
	c.Restore()
}
