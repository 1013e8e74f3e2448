package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Pause key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held until hold has passed since its last press.
// Pressing one direction releases the other at once. Pause and start are
// edge actions delivered with the next frame only.
type KeyMapper struct {
	keys KeyMap
	hold time.Duration

	upUntil   time.Time
	downUntil time.Time
	pending   core.InputFrame
}

// NewKeyMapper creates a key mapper with the given bindings and hold time.
func NewKeyMapper(keys KeyMap, hold time.Duration) *KeyMapper {
	return &KeyMapper{
		keys:    keys,
		hold:    hold,
		pending: core.NewInputFrame(),
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// Press records a key press at now and returns the action it maps to.
// Unbound keys return ActionNone.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Up):
		km.upUntil = now.Add(km.hold)
		km.downUntil = time.Time{}
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		km.downUntil = now.Add(km.hold)
		km.upUntil = time.Time{}
		return core.ActionDown
	case key.Matches(msg, km.keys.Pause):
		km.pending.Set(core.ActionPause)
		return core.ActionPause
	case key.Matches(msg, km.keys.Start):
		km.pending.Set(core.ActionStart)
		return core.ActionStart
	}
	return core.ActionNone
}

// Frame returns the input for a tick at now and consumes pending edge actions.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	if now.Before(km.upUntil) {
		f.Set(core.ActionUp)
	}
	if now.Before(km.downUntil) {
		f.Set(core.ActionDown)
	}
	for a := range km.pending.Actions {
		f.Set(a)
	}
	km.pending.Clear()
	return f
}
