package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionForward, false},
		{"W", runeKey('W'), core.ActionForward, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward, false},
		{"s", runeKey('s'), core.ActionBackward, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionBackward, false},
		{"a", runeKey('a'), core.ActionStrafeLeft, false},
		{"d", runeKey('d'), core.ActionStrafeRight, false},
		{"q", runeKey('q'), core.ActionTurnLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft, false},
		{"e", runeKey('e'), core.ActionTurnRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionTurnRight, false},
		{"m", runeKey('m'), core.ActionMap, false},
		{"h", runeKey('h'), core.ActionHint, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; want %v, %v", tt.name, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestIsScreenshot(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("s should not take a screenshot")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q", runeKey('q'), MenuActionQuit},
		{"z", runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 13 {
		t.Errorf("expected every binding in full help, got %d", total)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("expected short help")
	}
}
