package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a machine with the given bindings, or the defaults when nil
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		mode:     ModeMenu,
		keyTable: kt,
	}
}

// SetMode updates the parser's binding context
// Called by the driver when the screen changes
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the active binding context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	runes, keys := m.keyTable.FlightRunes, m.keyTable.FlightKeys
	if m.mode == ModeMenu {
		runes, keys = m.keyTable.MenuRunes, m.keyTable.MenuKeys
	}

	// Ctrl+C always quits, even if rebound away
	if ev.Key() == tcell.KeyCtrlC {
		return &Intent{Type: IntentQuit}
	}

	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = runes[ev.Rune()]
	} else {
		entry, ok = keys[ev.Key()]
	}
	if !ok || entry.IntentType == IntentNone {
		return nil
	}
	return &Intent{Type: entry.IntentType, DX: entry.DX, DY: entry.DY}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if m.mode != ModeFlight {
		return nil
	}
	x, y := ev.Position()
	return &Intent{
		Type:   IntentPointer,
		Col:    x,
		Row:    y,
		Firing: ev.Buttons()&tcell.Button1 != 0,
	}
}
