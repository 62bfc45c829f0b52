package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coindash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input intent.
// Returns the intent (may be IntentNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (intent core.Intent, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.IntentNone, true
	}

	switch key {
	case "a", "left", "h":
		return core.IntentLeft, false
	case "d", "right", "l":
		return core.IntentRight, false
	case " ", "w", "up", "k":
		return core.IntentJump, false
	case "enter", "r":
		return core.IntentStart, false
	case "p", "esc":
		return core.IntentPause, false
	}

	return core.IntentNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
