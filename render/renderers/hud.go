package renderers

import (
	"fmt"
	"math"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/render"
)

const (
	hudMargin  = 2
	hudBarsRow = 4
)

// HUDRenderer draws score, coins, speed and power bars over the world
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State != nil && ctx.Screen == engine.ScreenPlaying
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	s := ctx.State
	score, coins := s.Result()

	c.TextCell(hudMargin, 1, fmt.Sprintf("SCORE: %d", score), render.Hex(constants.ColorHUDScore))
	c.TextCell(hudMargin, 2, fmt.Sprintf("COINS: %d", coins), render.Hex(constants.ColorHUDCoins))

	speed := fmt.Sprintf("SPEED: %d KM/H", int(math.Floor(s.Speed*constants.SpeedDisplayFactor)))
	pulse := SpeedPulse(s.Speed)
	speedColor := render.Blend(render.Hex(constants.ColorHUDSpeed), render.White, (pulse-1)*2)
	c.TextCell(c.Cols()-len(speed)-hudMargin, 1, speed, speedColor)

	row := hudBarsRow
	for k := engine.PowerKind(0); k < engine.PowerCount; k++ {
		if !s.HasPower(k) {
			continue
		}
		info := k.Info()
		col := render.Hex(info.BarColor)
		c.TextCell(hudMargin, row, info.Name, col)

		fill := int(math.Ceil(float64(constants.HUDBarWidth) * s.Powers[k].Fraction(info.Duration)))
		c.FillCells(hudMargin, row+1, constants.HUDBarWidth, 1, render.Hex(constants.ColorHUDBarBg))
		c.FillCells(hudMargin, row+1, fill, 1, col)
		row += 3
	}
}

// SpeedPulse returns the speed readout emphasis, 1 at rest up to 1.2 at max speed
func SpeedPulse(speed float64) float64 {
	return 1 + speed/constants.MaxSpeed*0.2
}
