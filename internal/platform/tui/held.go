package tui

import (
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press or auto-repeat event.
const DefaultHoldWindow = 180 * time.Millisecond

// opposite pairs movement actions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionForward:     core.ActionBackward,
	core.ActionBackward:    core.ActionForward,
	core.ActionStrafeLeft:  core.ActionStrafeRight,
	core.ActionStrafeRight: core.ActionStrafeLeft,
	core.ActionTurnLeft:    core.ActionTurnRight,
	core.ActionTurnRight:   core.ActionTurnLeft,
}

// HeldKeys emulates key-release events, which terminals do not report.
// A movement action stays active for a fixed number of ticks after its last
// key event; auto-repeat refreshes it while the key is down. Pressing the
// opposite action releases it immediately.
type HeldKeys struct {
	window int // ticks
	tick   int
	until  map[core.Action]int
}

// NewHeldKeys creates a tracker holding actions for hold at tickRate.
func NewHeldKeys(hold time.Duration, tickRate int) *HeldKeys {
	window := int(hold * time.Duration(max(1, tickRate)) / time.Second)
	return &HeldKeys{
		window: max(1, window),
		until:  make(map[core.Action]int),
	}
}

// Press marks a movement action as held from the current tick.
func (h *HeldKeys) Press(a core.Action) {
	if !a.IsMovement() {
		return
	}
	delete(h.until, opposite[a])
	h.until[a] = h.tick + h.window
}

// Apply sets every held action on frame and advances one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, until := range h.until {
		if h.tick < until {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	h.tick++
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	until, ok := h.until[a]
	return ok && h.tick < until
}

// Release drops all held actions.
func (h *HeldKeys) Release() {
	for a := range h.until {
		delete(h.until, a)
	}
}
