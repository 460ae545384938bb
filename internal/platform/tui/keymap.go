package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsBack reports whether the key leaves a paused or finished game.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "b", "esc":
		return true
	}
	return false
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
	MenuActionBack
	MenuActionScoreboard
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
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DefaultHoldWindow is how long a direction stays pressed after its key
// event. Terminals report presses but not releases, so a held key arrives
// as a stream of repeats with gaps between them.
const DefaultHoldWindow = 120 * time.Millisecond

// heldDirection keeps the last movement key active until the hold window
// passes without a repeat, so movement is continuous while a key is held.
type heldDirection struct {
	action core.Action
	until  time.Time
	window time.Duration
}

func newHeldDirection(window time.Duration) heldDirection {
	return heldDirection{window: window}
}

// Press records a movement key at time now. A press in the opposite
// direction replaces the held one.
func (h *heldDirection) Press(a core.Action, now time.Time) {
	if a != core.ActionLeft && a != core.ActionRight {
		return
	}
	h.action = a
	h.until = now.Add(h.window)
}

// Apply sets the held direction on frame if it is still active at now.
func (h *heldDirection) Apply(frame *core.InputFrame, now time.Time) {
	if h.action == core.ActionNone {
		return
	}
	if now.After(h.until) {
		h.action = core.ActionNone
		return
	}
	frame.Set(h.action)
}

// Release forgets the held direction.
func (h *heldDirection) Release() {
	h.action = core.ActionNone
}
