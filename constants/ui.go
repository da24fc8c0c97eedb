package constants

// Entity Colors (hex, parsed by render)
const (
	ColorCube       = "#ef4444"
	ColorRing       = "#f97316"
	ColorAsteroid   = "#57534e"
	ColorCoin       = "#facc15"
	ColorShield     = "#38bdf8"
	ColorMagnet     = "#c084fc"
	ColorRapidFire  = "#f43f5e"
	ColorTripleShot = "#4ade80"
	ColorLaser      = "#22d3ee"
	ColorLaserRapid = "#f43f5e"

	ColorSpark      = "#22d3ee"
	ColorDebris     = "#fcd34d"
	ColorEmber      = "#ef4444"
	ColorScoreText  = "#fcd34d"
	ColorBlocked    = "#38bdf8"
	ColorShieldDown = "#ffffff"
	ColorBroken     = "#ef4444"

	ColorNoticeShield = "#0ea5e9"
)

// Background Palette
const (
	ColorSkyTop     = "#020617"
	ColorSkyBottom  = "#2e1065"
	ColorSunTop     = "#f59e0b"
	ColorSunBottom  = "#db2777"
	ColorBoundary   = "#d946ef"
	ColorCenterLine = "#06b6d4"
	ColorGrid       = "#d946ef"
)

// HUD
const (
	ColorHUDScore = "#ffffff"
	ColorHUDCoins = "#fcd34d"
	ColorHUDSpeed = "#22d3ee"
	ColorHUDBarBg = "#000000"

	ColorBarShield     = "#0ea5e9"
	ColorBarMagnet     = "#a855f7"
	ColorBarRapidFire  = "#f43f5e"
	ColorBarTripleShot = "#4ade80"

	// HUDBarWidth is the powerup bar width in cells
	HUDBarWidth = 18

	// NotificationTopRow is the first cell row used by stacked notifications
	NotificationTopRow = 6
)

// Canvas
const (
	// VirtualHeight is the height of the virtual drawing space; width follows aspect
	VirtualHeight = 720.0

	// GridSpacing is the depth spacing between scrolling floor lines
	GridSpacing = 400.0

	// GridExtent multiplies PlayableWidth for the floor line length
	GridExtent = 1.5

	// NearFadeSpan is the depth span over which entities fade at the near plane
	NearFadeSpan = 150.0

	// ReticleDepth is the projected depth of the aim reticle ahead of the craft
	ReticleDepth = 800.0

	// ReticleMinAhead and ReticleMaxAhead bound the forward target cone
	ReticleMinAhead = 200.0
	ReticleMaxAhead = 1500.0

	// CraftSize is the base size of the player craft in world units
	CraftSize = 100.0
)
