package render

import (
	"github.com/lixenwraith/sky-pilot/catalog"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/profile"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	State  *engine.State
	Screen engine.Screen

	// Equipped craft
	Skin catalog.PlaneSkin

	// Hangar and menu data
	Profile    profile.Profile
	ShopCursor int
	Message    string

	// Camera shake offset in virtual units, applied to world layers only
	ShakeX float64
	ShakeY float64
}

// InWorld reports whether the world layers draw on this screen
func (rc RenderContext) InWorld() bool {
	return rc.State != nil && rc.Screen.Running()
}
