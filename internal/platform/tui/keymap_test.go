package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperActions(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"p", runeKey('p'), core.ActionPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			km := NewKeyMapper(DefaultKeyMap(), 120*time.Millisecond)
			if got := km.Press(tc.msg, time.Now()); got != tc.expected {
				t.Errorf("Press(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapperHold(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 120*time.Millisecond)
	t0 := time.Unix(1000, 0)

	km.Press(runeKey('w'), t0)

	if f := km.Frame(t0.Add(16 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("up should be held right after the press")
	}
	if f := km.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("up should still be held within the hold time")
	}
	if f := km.Frame(t0.Add(130 * time.Millisecond)); f.Has(core.ActionUp) {
		t.Error("up should be released after the hold time")
	}

	// Auto-repeat extends the hold
	km.Press(runeKey('w'), t0.Add(200*time.Millisecond))
	km.Press(runeKey('w'), t0.Add(280*time.Millisecond))
	if f := km.Frame(t0.Add(390 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("repeated presses should keep up held")
	}
}

func TestKeyMapperOppositeReleases(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 120*time.Millisecond)
	t0 := time.Unix(1000, 0)

	km.Press(runeKey('w'), t0)
	km.Press(runeKey('s'), t0.Add(10*time.Millisecond))

	f := km.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionUp) {
		t.Error("pressing down should release up")
	}
	if !f.Has(core.ActionDown) {
		t.Error("down should be held")
	}
}

func TestKeyMapperEdgeActionsOnce(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 120*time.Millisecond)
	t0 := time.Unix(1000, 0)

	km.Press(runeKey('p'), t0)
	km.Press(tea.KeyMsg{Type: tea.KeyEnter}, t0)

	f := km.Frame(t0)
	if !f.Has(core.ActionPause) || !f.Has(core.ActionStart) {
		t.Errorf("first frame should carry pause and start, got %v", f.Actions)
	}

	f = km.Frame(t0.Add(16 * time.Millisecond))
	if f.Has(core.ActionPause) || f.Has(core.ActionStart) {
		t.Errorf("edge actions should be consumed, got %v", f.Actions)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(keys.ShortHelp()))
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, expected 5", total)
	}
}
