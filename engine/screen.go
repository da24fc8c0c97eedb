package engine

import (
	"slices"
	"time"
)

// Screen is the top-level routing state
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenShop
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenShop:
		return "shop"
	case ScreenGameOver:
		return "game_over"
	}
	return "unknown"
}

// Running reports whether the frame loop ticks on this screen
func (s Screen) Running() bool {
	return s != ScreenShop
}

var screenTransitions = map[Screen][]Screen{
	ScreenMenu:     {ScreenPlaying, ScreenShop},
	ScreenPlaying:  {ScreenGameOver, ScreenMenu},
	ScreenShop:     {ScreenMenu},
	ScreenGameOver: {ScreenPlaying, ScreenMenu},
}

// CanTransition checks if a screen transition is valid
func CanTransition(from, to Screen) bool {
	return slices.Contains(screenTransitions[from], to)
}

// ScreenState tracks the current screen and when it was entered
type ScreenState struct {
	current Screen
	since   time.Time
}

// NewScreenState starts on the menu
func NewScreenState(now time.Time) *ScreenState {
	return &ScreenState{current: ScreenMenu, since: now}
}

// Current returns the active screen
func (ss *ScreenState) Current() Screen {
	return ss.current
}

// Since returns when the active screen was entered
func (ss *ScreenState) Since() time.Time {
	return ss.since
}

// Transition moves to the target screen if the transition is valid
func (ss *ScreenState) Transition(to Screen, now time.Time) bool {
	if !CanTransition(ss.current, to) {
		return false
	}
	ss.current = to
	ss.since = now
	return true
}
