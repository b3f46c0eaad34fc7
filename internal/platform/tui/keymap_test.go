package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordshot/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestIsDirectional(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if !isDirectional(a) {
			t.Errorf("%v should be directional", a)
		}
	}
	for _, a := range []core.Action{core.ActionFire, core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if isDirectional(a) {
			t.Errorf("%v should not be directional", a)
		}
	}
}
