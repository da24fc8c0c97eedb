package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/sky-pilot/catalog"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/render"
)

var (
	colorOverlayBg     = render.Hex("#0f172a")
	colorOverlayBorder = render.Hex("#d946ef")
	colorOverlayTitle  = render.Hex("#22d3ee")
	colorOverlayText   = render.Hex("#e2e8f0")
	colorOverlayHint   = render.Hex("#94a3b8")
	colorOverlayGold   = render.Hex("#fcd34d")
	colorOverlayError  = render.Hex("#f87171")
	colorOverlayCursor = render.Hex("#4c1d95")
)

// panel is a bordered window in cell coordinates
type panel struct {
	x, y, w, h int
}

// centeredPanel sizes a panel within the terminal
func centeredPanel(c *render.Canvas, w, h int) panel {
	w, h = min(w, c.Cols()), min(h, c.Rows())
	return panel{x: (c.Cols() - w) / 2, y: (c.Rows() - h) / 2, w: w, h: h}
}

// draw fills the panel and draws its border with the title inset in the top edge
func (p panel) draw(c *render.Canvas, title string) {
	c.Save()
	c.SetAlpha(0.85)
	c.FillCells(p.x, p.y, p.w, p.h, colorOverlayBg)
	c.Restore()

	if p.w < 2 || p.h < 2 {
		return
	}
	horiz := strings.Repeat("─", p.w-2)
	c.TextCell(p.x, p.y, "┌"+horiz+"┐", colorOverlayBorder)
	c.TextCell(p.x, p.y+p.h-1, "└"+horiz+"┘", colorOverlayBorder)
	for y := p.y + 1; y < p.y+p.h-1; y++ {
		c.TextCell(p.x, y, "│", colorOverlayBorder)
		c.TextCell(p.x+p.w-1, y, "│", colorOverlayBorder)
	}
	if title != "" {
		t := " " + title + " "
		c.TextCell(p.x+(p.w-len([]rune(t)))/2, p.y, t, colorOverlayTitle)
	}
}

// center writes s centered on row dy of the panel interior
func (p panel) center(c *render.Canvas, dy int, s string, col render.Color) {
	c.TextCell(p.x+(p.w-len([]rune(s)))/2, p.y+dy, s, col)
}

// MenuRenderer draws the title screen
type MenuRenderer struct{}

// NewMenuRenderer creates a menu renderer
func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *MenuRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Screen == engine.ScreenMenu
}

// Render implements SystemRenderer
func (r *MenuRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	p := centeredPanel(c, 44, 12)
	p.draw(c, "SKY PILOT")

	p.center(c, 2, fmt.Sprintf("HIGH SCORE: %d", ctx.Profile.HighScore), colorOverlayText)
	p.center(c, 3, fmt.Sprintf("COINS: %d", ctx.Profile.Coins), colorOverlayGold)
	p.center(c, 5, "PLANE: "+ctx.Skin.Name, colorOverlayText)
	p.center(c, 8, "[ENTER] FLY   [S] HANGAR   [Q] QUIT", colorOverlayHint)
	p.center(c, 9, "MOUSE OR ARROWS TO STEER, CLICK OR SPACE TO FIRE", colorOverlayHint)
}

// GameOverRenderer draws the crash summary
type GameOverRenderer struct{}

// NewGameOverRenderer creates a game over renderer
func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *GameOverRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Screen == engine.ScreenGameOver && ctx.State != nil
}

// Render implements SystemRenderer
func (r *GameOverRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	score, coins := ctx.State.Result()
	p := centeredPanel(c, 40, 11)
	p.draw(c, "CRASHED")

	p.center(c, 2, fmt.Sprintf("SCORE: %d", score), colorOverlayText)
	p.center(c, 3, fmt.Sprintf("COINS EARNED: %d", coins), colorOverlayGold)
	best := fmt.Sprintf("BEST: %d", ctx.Profile.HighScore)
	if score >= ctx.Profile.HighScore && score > 0 {
		best = "NEW HIGH SCORE!"
	}
	p.center(c, 5, best, colorOverlayTitle)
	p.center(c, 8, "[ENTER] RETRY   [M] MENU", colorOverlayHint)
}

// HangarRenderer draws the skin shop with a preview of the selected craft
type HangarRenderer struct{}

// NewHangarRenderer creates a hangar renderer
func NewHangarRenderer() *HangarRenderer {
	return &HangarRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *HangarRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Screen == engine.ScreenShop
}

// Render implements SystemRenderer
func (r *HangarRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	skins := catalog.Skins()
	p := centeredPanel(c, 64, c.Rows()-2)
	p.draw(c, "HANGAR")

	p.center(c, 1, fmt.Sprintf("COINS: %d", ctx.Profile.Coins), colorOverlayGold)

	listTop := 3
	visible := max(p.h-listTop-4, 1)
	cursor := min(max(ctx.ShopCursor, 0), len(skins)-1)
	first := max(0, min(cursor-visible/2, len(skins)-visible))

	for i := first; i < len(skins) && i < first+visible; i++ {
		skin := skins[i]
		row := p.y + listTop + i - first
		if i == cursor {
			c.FillCells(p.x+1, row, p.w/2, 1, colorOverlayCursor)
		}
		c.TextCell(p.x+2, row, skin.Name, render.Hex(skin.Color))
		c.TextCell(p.x+p.w/2-10, row, skinStatus(ctx, skin), colorOverlayText)
	}

	// Preview on the right half
	sel := skins[cursor]
	cellW := c.Width() / float64(c.Cols())
	cellH := c.Height() / float64(c.Rows())
	cx := (float64(p.x) + float64(p.w)*0.75) * cellW
	cy := (float64(p.y) + float64(p.h)/2) * cellH
	c.Save()
	c.Translate(cx, cy)
	DrawCraft(c, sel, float64(p.h)*cellH*0.4)
	c.Restore()
	c.TextCell(p.x+p.w*3/4-len(sel.Model.String())/2, p.y+p.h-4, strings.ToUpper(sel.Model.String()), colorOverlayHint)

	if ctx.Message != "" {
		p.center(c, p.h-3, ctx.Message, colorOverlayError)
	}
	p.center(c, p.h-2, "[UP/DOWN] SELECT   [ENTER] BUY/EQUIP   [ESC] BACK", colorOverlayHint)
}

func skinStatus(ctx render.RenderContext, skin catalog.PlaneSkin) string {
	switch {
	case ctx.Profile.SelectedSkin == skin.ID:
		return "EQUIPPED"
	case ctx.Profile.Owns(skin.ID):
		return "OWNED"
	default:
		return fmt.Sprintf("%d c", skin.Price)
	}
}
