package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coindash/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	switch s {
	case "space":
		return tea.KeyMsg(tea.Key{Type: tea.KeySpace, Runes: []rune{' '}})
	case "up":
		return tea.KeyMsg(tea.Key{Type: tea.KeyUp})
	case "down":
		return tea.KeyMsg(tea.Key{Type: tea.KeyDown})
	case "left":
		return tea.KeyMsg(tea.Key{Type: tea.KeyLeft})
	case "right":
		return tea.KeyMsg(tea.Key{Type: tea.KeyRight})
	case "enter":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	case "esc":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEsc})
	case "tab":
		return tea.KeyMsg(tea.Key{Type: tea.KeyTab})
	case "ctrl+c":
		return tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestMapKeyIntents(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Intent
	}{
		{"a", core.IntentLeft},
		{"left", core.IntentLeft},
		{"d", core.IntentRight},
		{"right", core.IntentRight},
		{"w", core.IntentJump},
		{"up", core.IntentJump},
		{"space", core.IntentJump},
		{"enter", core.IntentStart},
		{"r", core.IntentStart},
		{"p", core.IntentPause},
		{"esc", core.IntentPause},
		{"x", core.IntentNone},
	}

	for _, tc := range tests {
		intent, isQuit := km.MapKey(keyMsg(tc.key))
		if isQuit {
			t.Errorf("key %q should not quit", tc.key)
		}
		if intent != tc.want {
			t.Errorf("key %q mapped to %v, want %v", tc.key, intent, tc.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, k := range []string{"q", "ctrl+c"} {
		if _, isQuit := km.MapKey(keyMsg(k)); !isQuit {
			t.Errorf("key %q should quit", k)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("key %q mapped to %v, want %v", tc.key, got, tc.want)
		}
	}
}
