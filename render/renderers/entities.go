package renderers

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/render"
	"github.com/lixenwraith/sky-pilot/vmath"
)

const asteroidPoints = 14

var (
	colorAsteroidFill    = render.Hex("#1e1b4b")
	colorAsteroidEdge    = render.Hex("#f472b6")
	colorAsteroidHurt    = render.Hex("#f87171")
	colorAsteroidCrack   = render.Hex("#c084fc")
	colorAsteroidCrackHi = render.Hex("#ef4444")
	colorHPBar           = render.Hex("#ef4444")
)

// EntitiesRenderer draws obstacles, pickups, coins and projectiles far to near
type EntitiesRenderer struct {
	worldLayer
	order []*engine.Entity
}

// NewEntitiesRenderer creates an entities renderer
func NewEntitiesRenderer() *EntitiesRenderer {
	return &EntitiesRenderer{}
}

// Render implements SystemRenderer
func (r *EntitiesRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	s := ctx.State
	r.order = r.order[:0]
	for _, e := range s.Entities {
		if e.Active {
			r.order = append(r.order, e)
		}
	}
	for _, p := range s.Projectiles {
		if p.Active {
			r.order = append(r.order, p)
		}
	}
	slices.SortStableFunc(r.order, func(a, b *engine.Entity) int {
		return cmp.Compare(b.Pos.Z, a.Pos.Z)
	})

	for _, e := range r.order {
		if e.Pos.Z < constants.CullZ {
			continue
		}
		alpha := nearFade(e.Pos.Z)
		if alpha <= 0 {
			continue
		}
		c.Save()
		c.SetAlpha(alpha)
		drawEntity(c, e)
		c.Restore()
	}
}

func drawEntity(c *render.Canvas, e *engine.Entity) {
	p := project(c, e.Pos.X, e.Pos.Y, e.Pos.Z)
	w, h := e.Width*p.Scale, e.Height*p.Scale
	col := render.Hex(e.Color)
	alpha := c.Alpha()

	if e.Type != engine.TypeProjectile {
		floor := project(c, e.Pos.X, constants.FloorY, e.Pos.Z)
		c.SetAlpha(alpha * 0.5)
		c.Line(p.X, p.Y, floor.X, floor.Y, col, 1)
		c.FillCircle(floor.X, floor.Y, 5*p.Scale, col)
		c.SetAlpha(alpha)
	}

	switch {
	case e.Type == engine.TypeProjectile:
		c.FillRect(p.X-w/2, p.Y-2*h, w, 4*h, col)
		c.FillRect(p.X-w/4, p.Y-1.5*h, w/2, 3*h, render.White)

	case e.Type == engine.TypeAsteroid:
		drawAsteroid(c, e, p, w, h)

	case e.Type == engine.TypeCube:
		c.Translate(p.X, p.Y)
		c.Rotate(e.Rotation)
		c.SetAlpha(alpha * 0.3)
		c.FillRect(-w/2, -h/2, w, h, col)
		c.SetAlpha(alpha)
		c.StrokeRect(-w/2, -h/2, w, h, col, 3)
		c.Line(-w/2, -h/2, w/2, h/2, col, 2)
		c.Line(w/2, -h/2, -w/2, h/2, col, 2)

	case e.Type == engine.TypeRing:
		c.Translate(p.X, p.Y)
		c.Rotate(e.Rotation)
		c.StrokeCircle(0, 0, w/2, col, 4)
		for i := 0; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			c.Line(math.Cos(a)*w/2, math.Sin(a)*w/2, math.Cos(a)*w/1.5, math.Sin(a)*w/1.5, col, 3)
		}

	case e.Type == engine.TypeCoin:
		c.SetAlpha(alpha * 0.2)
		c.FillCircle(p.X, p.Y, w/2, col)
		c.SetAlpha(alpha)
		c.StrokeCircle(p.X, p.Y, w/2, col, 3)
		c.TextCentered(p.X, p.Y, e.Type.Label(), col)

	case e.Type.IsPickup():
		c.SetAlpha(alpha * 0.9)
		c.FillCircle(p.X, p.Y, w/2, col)
		c.SetAlpha(alpha)
		c.StrokeCircle(p.X, p.Y, w/2, render.White, 2)
		c.TextCentered(p.X, p.Y, e.Type.Label(), render.White)
	}
}

// asteroidOutline returns a jagged polygon alternating between two radii
func asteroidOutline(w float64) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, asteroidPoints)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / asteroidPoints
		rad := w / 2
		if i%2 == 1 {
			rad = w / 2.2
		}
		pts[i] = mgl64.Vec2{math.Cos(a) * rad, math.Sin(a) * rad}
	}
	return pts
}

func drawAsteroid(c *render.Canvas, e *engine.Entity, p vmath.Projection, w, h float64) {
	edge, crack := colorAsteroidEdge, colorAsteroidCrack
	if e.Damaged() {
		edge, crack = colorAsteroidHurt, colorAsteroidCrackHi
	}

	c.Save()
	c.Translate(p.X, p.Y)
	c.Rotate(e.Rotation)
	outline := asteroidOutline(w)
	c.FillPolygon(outline, colorAsteroidFill)
	c.StrokePolygon(outline, edge, 2)
	c.Line(-w/4, -h/4, 0, 0, crack, 2)
	c.Line(0, 0, w/5, h/6, crack, 2)
	c.Line(w/10, -h/5, w/4, -h/10, crack, 2)
	c.Restore()

	if e.MaxHP > 1 {
		barW := w * 0.8
		barH := math.Max(h*0.06, 2)
		y := p.Y - h/1.2
		c.FillRect(p.X-barW/2, y, barW, barH, render.Black)
		c.FillRect(p.X-barW/2, y, barW*float64(e.HP)/float64(e.MaxHP), barH, colorHPBar)
	}
}
