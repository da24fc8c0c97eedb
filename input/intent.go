package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, terminal closed
	IntentBack   // Esc, q: leave the current screen
	IntentResize // Terminal resize event

	// Screen routing
	IntentConfirm // Enter: start, retry, buy or equip
	IntentShop    // s on the menu
	IntentMenu    // m on game over

	// Flight
	IntentSteer   // Arrows, WASD: move the target one step
	IntentFire    // Space: fire burst
	IntentPointer // Mouse motion or button change: absolute target and firing

	// Hangar list navigation
	IntentSelect // Up/down in menus
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentQuit:    "quit",
	IntentBack:    "back",
	IntentResize:  "resize",
	IntentConfirm: "confirm",
	IntentShop:    "shop",
	IntentMenu:    "menu",
	IntentSteer:   "steer",
	IntentFire:    "fire",
	IntentPointer: "pointer",
	IntentSelect:  "select",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a parsed input action
type Intent struct {
	Type IntentType

	// Steer and select direction: -1, 0 or 1 per axis
	DX, DY int

	// Pointer cell position and button state
	Col, Row int
	Firing   bool
}
