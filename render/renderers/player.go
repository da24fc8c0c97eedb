package renderers

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sky-pilot/catalog"
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/render"
)

// glitchShake is the shake level above which a crashing craft glitches
const glitchShake = 5.0

var (
	colorJetSpine    = render.Hex("#e2e8f0")
	colorStrut       = render.Hex("#cbd5e1")
	colorShieldRing  = render.Hex(constants.ColorShield)
	colorGlitchMagen = render.Hex("#ff00ff")
	colorGlitchCyan  = render.Hex("#00ffff")
)

// PlayerRenderer draws the craft with its shadow, trail, shield and crash glitch
type PlayerRenderer struct {
	worldLayer
	jitter *rand.Rand
}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{jitter: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Render implements SystemRenderer
func (r *PlayerRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	s := ctx.State
	pos := s.Player.Pos
	p := project(c, pos.X, pos.Y, pos.Z)
	size := constants.CraftSize * p.Scale
	accent := render.Hex(ctx.Skin.Accent)

	floor := project(c, pos.X, constants.FloorY, pos.Z)
	c.Save()
	c.SetAlpha(0.2)
	c.Line(p.X, p.Y, floor.X, floor.Y, accent, 1)
	c.SetAlpha(0.4)
	c.FillEllipse(floor.X, floor.Y, 40*p.Scale, 10*p.Scale, accent)
	c.Restore()

	c.Save()
	c.Translate(p.X, p.Y)
	c.Rotate(s.Player.Tilt)

	DrawCraft(c, ctx.Skin, size)

	if s.Crashing() && s.Shake > glitchShake {
		c.SetAlpha(0.7)
		c.FillRect(-size/2+r.offset(), -size/4+r.offset(), size, size/6, colorGlitchMagen)
		c.FillRect(-size/2+r.offset(), size/8+r.offset(), size, size/6, colorGlitchCyan)
		c.SetAlpha(1)
	}

	if s.HasPower(engine.PowerShield) {
		c.SetAlpha(0.15)
		c.FillCircle(0, 0, size*1.1, colorShieldRing)
		c.SetAlpha(1)
		c.StrokeCircle(0, 0, size*1.1, colorShieldRing, 3)
	}
	c.Restore()
}

func (r *PlayerRenderer) offset() float64 {
	return (r.jitter.Float64() - 0.5) * 20
}

// DrawCraft draws a skin's model at the current origin, nose pointing up
func DrawCraft(c *render.Canvas, skin catalog.PlaneSkin, size float64) {
	body := render.Hex(skin.Color)
	accent := render.Hex(skin.Accent)
	alpha := c.Alpha()

	// Engine trail
	c.SetAlpha(alpha * 0.6)
	c.FillPolygon([]mgl64.Vec2{
		{-size * 0.08, size * 0.25},
		{size * 0.08, size * 0.25},
		{0, size * 0.6},
	}, accent)
	c.SetAlpha(alpha)

	switch skin.Model {
	case catalog.ModelBiplane:
		c.FillRect(-size/2, -size/6, size, size/8, body)
		c.FillRect(-size/2.2, size/12, size/1.1, size/8, body)
		for _, x := range []float64{-size / 3, size / 3} {
			c.Line(x, -size/6, x, size/12, colorStrut, 2)
		}
		c.FillRect(-size/12, -size/2.5, size/6, size/1.4, accent)
		c.SetAlpha(alpha * 0.6)
		c.FillCircle(0, -size/10, size/12, render.White)
		c.SetAlpha(alpha)

	case catalog.ModelUFO:
		c.FillEllipse(0, 0, size/2.4, size/8, body)
		c.FillCircle(0, -size/10, size/5, accent)
		for _, x := range []float64{-size / 4, 0, size / 4} {
			c.FillCircle(x, size/20, size/30, render.White)
		}

	default:
		c.FillPolygon([]mgl64.Vec2{{0, -size / 2}, {size / 2, size / 3}, {-size / 2, size / 3}}, body)
		c.FillPolygon([]mgl64.Vec2{{0, -size / 2}, {size / 10, size / 3}, {-size / 10, size / 3}}, colorJetSpine)
		c.FillEllipse(0, -size/8, size/12, size/6, accent)
	}
}
