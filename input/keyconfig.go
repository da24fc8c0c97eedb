package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key names that can't be bare single characters in config files
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// Keymap is the config form of key overrides: mode section → key name → action name
type Keymap struct {
	Flight map[string]string `toml:"flight"`
	Menu   map[string]string `toml:"menu"`
}

// ApplyKeymap overlays km onto kt
// Returns error on unknown action or key names; kt is unchanged on error
func ApplyKeymap(kt *KeyTable, km Keymap) error {
	staged := *kt
	staged.FlightRunes = maps.Clone(kt.FlightRunes)
	staged.FlightKeys = maps.Clone(kt.FlightKeys)
	staged.MenuRunes = maps.Clone(kt.MenuRunes)
	staged.MenuKeys = maps.Clone(kt.MenuKeys)

	if err := applySection("flight", km.Flight, staged.FlightRunes, staged.FlightKeys); err != nil {
		return err
	}
	if err := applySection("menu", km.Menu, staged.MenuRunes, staged.MenuKeys); err != nil {
		return err
	}
	*kt = staged
	return nil
}

func applySection(name string, bindings map[string]string, runes map[rune]KeyEntry, keys map[tcell.Key]KeyEntry) error {
	for keyName, action := range bindings {
		entry, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return fmt.Errorf("keymap [%s] %q: unknown action %q", name, keyName, action)
		}

		lower := strings.ToLower(keyName)
		if k, ok := specialKeyNames[lower]; ok {
			keys[k] = entry
			continue
		}
		r, ok := runeAliases[lower]
		if !ok {
			if utf8.RuneCountInString(keyName) != 1 {
				return fmt.Errorf("keymap [%s]: invalid key name %q", name, keyName)
			}
			r, _ = utf8.DecodeRuneInString(keyName)
		}
		runes[r] = entry
	}
	return nil
}
