package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Forward     key.Binding
	Backward    key.Binding
	StrafeLeft  key.Binding
	StrafeRight key.Binding
	TurnLeft    key.Binding
	TurnRight   key.Binding
	Map         key.Binding
	Hint        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.StrafeLeft, k.TurnLeft, k.Map, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.StrafeLeft, k.StrafeRight},
		{k.TurnLeft, k.TurnRight, k.Map, k.Hint},
		{k.Pause, k.Restart, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
// Letters are matched in both cases so caps lock does not freeze the player.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w/↑", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s/↓", "back"),
		),
		StrafeLeft: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a/d", "strafe"),
		),
		StrafeRight: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "strafe right"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("q", "Q", "left"),
			key.WithHelp("q/e ←/→", "turn"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("e", "E", "right"),
			key.WithHelp("e/→", "turn right"),
		),
		Map: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "minimap"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "hint"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "new maze"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "B"),
			key.WithHelp("esc", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Forward):
		return core.ActionForward, false
	case key.Matches(msg, k.Backward):
		return core.ActionBackward, false
	case key.Matches(msg, k.StrafeLeft):
		return core.ActionStrafeLeft, false
	case key.Matches(msg, k.StrafeRight):
		return core.ActionStrafeRight, false
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft, false
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight, false
	case key.Matches(msg, k.Map):
		return core.ActionMap, false
	case key.Matches(msg, k.Hint):
		return core.ActionHint, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case msg.Type == tea.KeyEnter:
		return core.ActionConfirm, false
	}

	return core.ActionNone, false
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
