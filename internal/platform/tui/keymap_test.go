package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyEvent
	}{
		{"r is P1 up", runeKey('r'), KeyEvent{Kind: KeyButton, Button: core.Button3}},
		{"f is P1 down", runeKey('f'), KeyEvent{Kind: KeyButton, Button: core.Button2}},
		{"up arrow is P2 up", tea.KeyMsg{Type: tea.KeyUp}, KeyEvent{Kind: KeyButton, Button: core.Button1}},
		{"down arrow is P2 down", tea.KeyMsg{Type: tea.KeyDown}, KeyEvent{Kind: KeyButton, Button: core.Button0}},
		{"q quits", runeKey('q'), KeyEvent{Kind: KeyQuit}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, KeyEvent{Kind: KeyQuit}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyEvent{Kind: KeyQuit}},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, KeyEvent{Kind: KeyScreenshot}},
		{"question mark toggles help", runeKey('?'), KeyEvent{Kind: KeyHelp}},
		{"s is a serial char", runeKey('s'), KeyEvent{Kind: KeyChar, Char: 's'}},
		{"upper S is a serial char", runeKey('S'), KeyEvent{Kind: KeyChar, Char: 'S'}},
		{"digit is a serial char", runeKey('3'), KeyEvent{Kind: KeyChar, Char: '3'}},
		{"p is a serial char", runeKey('p'), KeyEvent{Kind: KeyChar, Char: 'p'}},
		{"space is a serial char", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyEvent{Kind: KeyChar, Char: ' '}},
		{"alt+w is ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Alt: true}, KeyEvent{Kind: KeyNone}},
		{"enter is ignored", tea.KeyMsg{Type: tea.KeyEnter}, KeyEvent{Kind: KeyNone}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %+v, expected %+v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	for i, group := range keys.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("FullHelp() group %d has a binding without help text: %+v", i, b.Keys())
			}
		}
	}
}
