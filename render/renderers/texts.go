package renderers

import (
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/render"
)

const (
	notificationTop     = 120.0
	notificationSpacing = 30.0
)

// TextsRenderer draws rising score labels and stacked notifications
type TextsRenderer struct {
	worldLayer
}

// NewTextsRenderer creates a floating text renderer
func NewTextsRenderer() *TextsRenderer {
	return &TextsRenderer{}
}

// Render implements SystemRenderer
func (r *TextsRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	c.Save()
	slot := 0
	for _, t := range ctx.State.Texts {
		c.SetAlpha(t.Life)
		col := render.Hex(t.Color)

		if t.Kind == engine.TextNotification {
			c.TextCentered(c.Width()/2, notificationTop+float64(slot)*notificationSpacing, t.Text, col)
			slot++
			continue
		}
		p := project(c, t.Pos.X, t.Pos.Y, t.Pos.Z)
		c.TextCentered(p.X, p.Y, t.Text, col)
	}
	c.Restore()
}
