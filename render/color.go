package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear-blendable RGB color
type Color = colorful.Color

// Predefined colors
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 1, G: 1, B: 1}
)

var (
	hexMu    sync.RWMutex
	hexCache = make(map[string]Color, 64)
)

// Hex parses a #rrggbb color, caching results; unparseable input yields white
func Hex(s string) Color {
	hexMu.RLock()
	c, ok := hexCache[s]
	hexMu.RUnlock()
	if ok {
		return c
	}

	c, err := colorful.Hex(s)
	if err != nil {
		c = White
	}

	hexMu.Lock()
	hexCache[s] = c
	hexMu.Unlock()
	return c
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src Color, alpha float64) Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

// Gradient interpolates top to bottom in Lab space for t in [0,1]
func Gradient(top, bottom Color, t float64) Color {
	if t <= 0 {
		return top
	}
	if t >= 1 {
		return bottom
	}
	return top.BlendLab(bottom, t).Clamped()
}

// ToTcell converts to a 24-bit tcell color
func ToTcell(c Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
