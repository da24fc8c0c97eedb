package input

import "github.com/gdamore/tcell/v2"

// InputMode selects the binding set
type InputMode uint8

const (
	// ModeFlight is active while playing
	ModeFlight InputMode = iota
	// ModeMenu covers the menu, hangar and game over screens
	ModeMenu
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	DX, DY     int
}

// KeyTable maps keys to entries per mode
type KeyTable struct {
	FlightRunes map[rune]KeyEntry
	FlightKeys  map[tcell.Key]KeyEntry
	MenuRunes   map[rune]KeyEntry
	MenuKeys    map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		FlightRunes: map[rune]KeyEntry{
			'w': actionRegistry["steer_up"],
			'a': actionRegistry["steer_left"],
			's': actionRegistry["steer_down"],
			'd': actionRegistry["steer_right"],
			' ': actionRegistry["fire"],
			'q': actionRegistry["back"],
		},
		FlightKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     actionRegistry["steer_up"],
			tcell.KeyDown:   actionRegistry["steer_down"],
			tcell.KeyLeft:   actionRegistry["steer_left"],
			tcell.KeyRight:  actionRegistry["steer_right"],
			tcell.KeyEscape: actionRegistry["back"],
			tcell.KeyCtrlC:  actionRegistry["quit"],
		},
		MenuRunes: map[rune]KeyEntry{
			's': actionRegistry["shop"],
			'm': actionRegistry["menu"],
			'q': actionRegistry["back"],
			'k': actionRegistry["select_up"],
			'j': actionRegistry["select_down"],
			' ': actionRegistry["confirm"],
		},
		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:  actionRegistry["confirm"],
			tcell.KeyUp:     actionRegistry["select_up"],
			tcell.KeyDown:   actionRegistry["select_down"],
			tcell.KeyEscape: actionRegistry["back"],
			tcell.KeyCtrlC:  actionRegistry["quit"],
		},
	}
}

// actionRegistry maps canonical action names to entries
// Used by the keymap loader to resolve config action strings
var actionRegistry = map[string]KeyEntry{
	"none":        {},
	"quit":        {IntentType: IntentQuit},
	"back":        {IntentType: IntentBack},
	"confirm":     {IntentType: IntentConfirm},
	"shop":        {IntentType: IntentShop},
	"menu":        {IntentType: IntentMenu},
	"fire":        {IntentType: IntentFire},
	"steer_up":    {IntentType: IntentSteer, DY: -1},
	"steer_down":  {IntentType: IntentSteer, DY: 1},
	"steer_left":  {IntentType: IntentSteer, DX: -1},
	"steer_right": {IntentType: IntentSteer, DX: 1},
	"select_up":   {IntentType: IntentSelect, DY: -1},
	"select_down": {IntentType: IntentSelect, DY: 1},
}
