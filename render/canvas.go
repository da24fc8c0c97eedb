package render

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sky-pilot/constants"
)

// upperHalfBlock renders the top pixel as foreground and the bottom pixel as background
const upperHalfBlock = '▀'

const ellipseSegments = 32

// glyph is a text overlay on one terminal cell
type glyph struct {
	r     rune
	fg    Color
	alpha float64
}

// transform is the drawing state saved and restored as a unit
type transform struct {
	ox, oy float64 // Origin in virtual units
	rot    float64
	alpha  float64
}

// Canvas is a virtual-unit drawing surface backed by half-block pixels
// Each terminal cell holds two square pixels stacked vertically; text overlays whole cells
// Virtual height is fixed, virtual width follows the terminal aspect ratio
type Canvas struct {
	cols, rows int
	pw, ph     int
	scale      float64 // Pixels per virtual unit

	pix    []Color
	glyphs []glyph

	tf    transform
	stack []transform
}

// NewCanvas creates a canvas for a terminal of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts pixel dimensions, reallocating only when capacity is insufficient
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	c.cols, c.rows = cols, rows
	c.pw, c.ph = cols, rows*2

	if n := c.pw * c.ph; cap(c.pix) < n {
		c.pix = make([]Color, n)
	} else {
		c.pix = c.pix[:n]
	}
	if n := cols * rows; cap(c.glyphs) < n {
		c.glyphs = make([]glyph, n)
	} else {
		c.glyphs = c.glyphs[:n]
	}

	c.scale = 1
	if c.ph > 0 {
		c.scale = float64(c.ph) / constants.VirtualHeight
	}
	c.Clear(Black)
}

// Clear fills every pixel, drops all text and resets the drawing state
func (c *Canvas) Clear(bg Color) {
	for i := range c.pix {
		c.pix[i] = bg
	}
	clear(c.glyphs)
	c.tf = transform{alpha: 1}
	c.stack = c.stack[:0]
}

// Width returns the virtual width
func (c *Canvas) Width() float64 {
	return float64(c.pw) / c.scale
}

// Height returns the virtual height
func (c *Canvas) Height() float64 {
	return float64(c.ph) / c.scale
}

// Cols returns the terminal width in cells
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal height in cells
func (c *Canvas) Rows() int { return c.rows }

// ===== STATE =====

// Save pushes the current transform and alpha
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.tf)
}

// Restore pops the last saved transform and alpha
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.tf = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin in the current rotated frame
func (c *Canvas) Translate(dx, dy float64) {
	d := mgl64.Rotate2D(c.tf.rot).Mul2x1(mgl64.Vec2{dx, dy})
	c.tf.ox += d.X()
	c.tf.oy += d.Y()
}

// Rotate turns subsequent drawing around the current origin
func (c *Canvas) Rotate(angle float64) {
	c.tf.rot += angle
}

// SetAlpha sets the global opacity for subsequent drawing
func (c *Canvas) SetAlpha(a float64) {
	c.tf.alpha = math.Max(0, math.Min(1, a))
}

// Alpha returns the global opacity
func (c *Canvas) Alpha() float64 {
	return c.tf.alpha
}

// toPixel maps a virtual point through the transform into pixel space
func (c *Canvas) toPixel(x, y float64) mgl64.Vec2 {
	p := mgl64.Vec2{x, y}
	if c.tf.rot != 0 {
		p = mgl64.Rotate2D(c.tf.rot).Mul2x1(p)
	}
	return mgl64.Vec2{(p.X() + c.tf.ox) * c.scale, (p.Y() + c.tf.oy) * c.scale}
}

// ===== PIXELS =====

// Pixel returns the color at pixel (px, py), black when out of bounds
func (c *Canvas) Pixel(px, py int) Color {
	if px < 0 || px >= c.pw || py < 0 || py >= c.ph {
		return Black
	}
	return c.pix[py*c.pw+px]
}

// PixelAt returns the pixel under virtual point (x, y) ignoring the transform
func (c *Canvas) PixelAt(x, y float64) Color {
	return c.Pixel(int(x*c.scale), int(y*c.scale))
}

// fillSpan blends pixels [x0, x1] on row py
func (c *Canvas) fillSpan(py, x0, x1 int, col Color, a float64) {
	if py < 0 || py >= c.ph {
		return
	}
	x0, x1 = max(x0, 0), min(x1, c.pw-1)
	for px := x0; px <= x1; px++ {
		i := py*c.pw + px
		c.pix[i] = Blend(c.pix[i], col, a)
	}
}

// ===== SHAPES =====

// FillPolygon fills a closed polygon using even-odd scanlines
func (c *Canvas) FillPolygon(pts []mgl64.Vec2, col Color) {
	if len(pts) < 3 || c.tf.alpha <= 0 {
		return
	}
	pp := make([]mgl64.Vec2, len(pts))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range pts {
		pp[i] = c.toPixel(p.X(), p.Y())
		minY = math.Min(minY, pp[i].Y())
		maxY = math.Max(maxY, pp[i].Y())
	}

	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), c.ph-1)
	xs := make([]float64, 0, 8)

	for py := y0; py <= y1; py++ {
		sy := float64(py) + 0.5
		xs = xs[:0]
		for i := range pp {
			a, b := pp[i], pp[(i+1)%len(pp)]
			if (a.Y() <= sy && sy < b.Y()) || (b.Y() <= sy && sy < a.Y()) {
				xs = append(xs, a.X()+(sy-a.Y())*(b.X()-a.X())/(b.Y()-a.Y()))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.fillSpan(py, int(math.Ceil(xs[i]-0.5)), int(math.Floor(xs[i+1]-0.5)), col, c.tf.alpha)
		}
	}
}

// StrokePolygon outlines a closed polygon
func (c *Canvas) StrokePolygon(pts []mgl64.Vec2, col Color, width float64) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.Line(a.X(), a.Y(), b.X(), b.Y(), col, width)
	}
}

func rectPoints(x, y, w, h float64) []mgl64.Vec2 {
	return []mgl64.Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// FillRect fills an axis-aligned rectangle in the current frame
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if c.tf.rot != 0 {
		c.FillPolygon(rectPoints(x, y, w, h), col)
		return
	}
	p0 := c.toPixel(x, y)
	p1 := c.toPixel(x+w, y+h)
	y0, y1 := int(math.Round(math.Min(p0.Y(), p1.Y()))), int(math.Round(math.Max(p0.Y(), p1.Y())))
	x0, x1 := int(math.Round(math.Min(p0.X(), p1.X()))), int(math.Round(math.Max(p0.X(), p1.X())))
	if y1 == y0 {
		y1++
	}
	if x1 == x0 {
		x1++
	}
	for py := y0; py < y1; py++ {
		c.fillSpan(py, x0, x1-1, col, c.tf.alpha)
	}
}

// StrokeRect outlines a rectangle
func (c *Canvas) StrokeRect(x, y, w, h float64, col Color, width float64) {
	c.StrokePolygon(rectPoints(x, y, w, h), col, width)
}

// Line draws a segment with a square brush of the given virtual width
func (c *Canvas) Line(x0, y0, x1, y1 float64, col Color, width float64) {
	if c.tf.alpha <= 0 {
		return
	}
	a := c.toPixel(x0, y0)
	b := c.toPixel(x1, y1)
	brush := max(1, int(math.Round(width*c.scale)))
	half := brush / 2

	margin := float64(brush)
	a, b, ok := clipSegment(a, b, -margin, -margin, float64(c.pw)+margin, float64(c.ph)+margin)
	if !ok {
		return
	}

	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X()), math.Abs(d.Y()))))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		p := a.Add(d.Mul(t))
		px, py := int(math.Floor(p.X())), int(math.Floor(p.Y()))
		for by := py - half; by < py-half+brush; by++ {
			c.fillSpan(by, px-half, px-half+brush-1, col, c.tf.alpha)
		}
	}
}

// clipSegment trims a-b to the box using Liang-Barsky; ok is false when nothing remains
func clipSegment(a, b mgl64.Vec2, minX, minY, maxX, maxY float64) (mgl64.Vec2, mgl64.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X(), a.X() - minX},
		{d.X(), maxX - a.X()},
		{-d.Y(), a.Y() - minY},
		{d.Y(), maxY - a.Y()},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

// DashedLine draws a segment as alternating dash and gap lengths
func (c *Canvas) DashedLine(x0, y0, x1, y1 float64, col Color, width, dash, gap float64) {
	v := mgl64.Vec2{x1 - x0, y1 - y0}
	length := v.Len()
	if length == 0 || dash <= 0 {
		return
	}
	dir := v.Mul(1 / length)
	for s := 0.0; s < length; s += dash + gap {
		e := math.Min(s+dash, length)
		c.Line(x0+dir.X()*s, y0+dir.Y()*s, x0+dir.X()*e, y0+dir.Y()*e, col, width)
	}
}

// FillCircle fills a disc; radius is not affected by rotation
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	c.fillDisc(cx, cy, r, func(float64) Color { return col })
}

// FillCircleGradient fills a disc with a vertical gradient from top to bottom
func (c *Canvas) FillCircleGradient(cx, cy, r float64, top, bottom Color) {
	c.fillDisc(cx, cy, r, func(t float64) Color { return Gradient(top, bottom, t) })
}

func (c *Canvas) fillDisc(cx, cy, r float64, shade func(t float64) Color) {
	if r <= 0 || c.tf.alpha <= 0 {
		return
	}
	ctr := c.toPixel(cx, cy)
	pr := math.Max(r*c.scale, 0.5)
	y0 := max(int(math.Floor(ctr.Y()-pr)), 0)
	y1 := min(int(math.Ceil(ctr.Y()+pr)), c.ph-1)

	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - ctr.Y()
		if math.Abs(dy) > pr {
			continue
		}
		dx := math.Sqrt(pr*pr - dy*dy)
		col := shade((dy + pr) / (2 * pr))
		c.fillSpan(py, int(math.Ceil(ctr.X()-dx-0.5)), int(math.Floor(ctr.X()+dx-0.5)), col, c.tf.alpha)
	}
}

// StrokeCircle outlines a circle
func (c *Canvas) StrokeCircle(cx, cy, r float64, col Color, width float64) {
	c.StrokePolygon(ellipsePoints(cx, cy, r, r), col, width)
}

func ellipsePoints(cx, cy, rx, ry float64) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = mgl64.Vec2{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

// FillEllipse fills an ellipse in the current rotated frame
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col Color) {
	c.FillPolygon(ellipsePoints(cx, cy, rx, ry), col)
}

// StrokeEllipse outlines an ellipse
func (c *Canvas) StrokeEllipse(cx, cy, rx, ry float64, col Color, width float64) {
	c.StrokePolygon(ellipsePoints(cx, cy, rx, ry), col, width)
}

// FillGradientRect fills a rectangle with a vertical gradient, ignoring rotation
func (c *Canvas) FillGradientRect(x, y, w, h float64, top, bottom Color) {
	p0 := c.toPixel(x, y)
	p1 := c.toPixel(x+w, y+h)
	y0, y1 := int(math.Round(p0.Y())), int(math.Round(p1.Y()))
	x0, x1 := int(math.Round(p0.X())), int(math.Round(p1.X()))
	span := math.Max(float64(y1-y0), 1)
	for py := y0; py < y1; py++ {
		c.fillSpan(py, x0, x1-1, Gradient(top, bottom, float64(py-y0)/span), c.tf.alpha)
	}
}

// ===== TEXT =====

// cellAt maps a virtual point through the transform to a terminal cell
func (c *Canvas) cellAt(x, y float64) (int, int) {
	p := c.toPixel(x, y)
	return int(math.Floor(p.X())), int(math.Floor(p.Y() / 2))
}

// Text writes s starting at the cell under virtual point (x, y)
func (c *Canvas) Text(x, y float64, s string, col Color) {
	cx, cy := c.cellAt(x, y)
	c.TextCell(cx, cy, s, col)
}

// TextCentered writes s centered on the cell under virtual point (x, y)
func (c *Canvas) TextCentered(x, y float64, s string, col Color) {
	cx, cy := c.cellAt(x, y)
	c.TextCell(cx-len([]rune(s))/2, cy, s, col)
}

// TextCell writes s at cell (col, row) with the current alpha
func (c *Canvas) TextCell(col, row int, s string, fg Color) {
	if row < 0 || row >= c.rows || c.tf.alpha <= 0 {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.cols {
			c.glyphs[row*c.cols+col] = glyph{r: r, fg: fg, alpha: c.tf.alpha}
		}
		col++
	}
}

// FillCells fills a block of whole cells, for bars and panels
func (c *Canvas) FillCells(col, row, w, h int, bg Color) {
	for cy := row; cy < row+h; cy++ {
		for py := cy * 2; py < cy*2+2; py++ {
			c.fillSpan(py, col, col+w-1, bg, c.tf.alpha)
		}
	}
}

// Glyph returns the text rune and color at a cell, 0 when empty
func (c *Canvas) Glyph(col, row int) (rune, Color) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, Black
	}
	g := c.glyphs[row*c.cols+col]
	return g.r, g.fg
}

// ===== OUTPUT =====

// Flush writes every cell to the screen; the caller calls Show
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(row*2)*c.pw+col]
			bottom := c.pix[(row*2+1)*c.pw+col]

			if g := c.glyphs[row*c.cols+col]; g.r != 0 {
				bg := top.BlendRgb(bottom, 0.5)
				style := tcell.StyleDefault.
					Foreground(ToTcell(Blend(bg, g.fg, g.alpha))).
					Background(ToTcell(bg))
				screen.SetContent(col, row, g.r, nil, style)
				continue
			}

			style := tcell.StyleDefault.Foreground(ToTcell(top)).Background(ToTcell(bottom))
			screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
}
