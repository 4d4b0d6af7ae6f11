package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

// KeyKind classifies a mapped key press.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyButton
	KeyChar
	KeyQuit
	KeyScreenshot
	KeyHelp
)

// KeyEvent is the result of mapping one terminal key.
type KeyEvent struct {
	Kind   KeyKind
	Button core.Button // Valid when Kind == KeyButton
	Char   rune        // Valid when Kind == KeyChar
}

// KeyMap defines the terminal bindings. The four push buttons get dedicated
// keys; every other printable key is forwarded as a serial character.
type KeyMap struct {
	P1Up       key.Binding // Button 3
	P1Down     key.Binding // Button 2
	P2Up       key.Binding // Button 1
	P2Down     key.Binding // Button 0
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Serial characters, listed for the help view only
	Serial key.Binding
	Speed  key.Binding
	Pause  key.Binding
	Start  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P2Up, k.P2Down},
		{k.Serial, k.Speed, k.Pause, k.Start},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "P1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "P1 down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "P2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "P2 down"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Serial: key.NewBinding(
			key.WithKeys("w", "s", "o", "k"),
			key.WithHelp("w/s o/k", "step paddles"),
		),
		Speed: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "speed"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to buttons and serial
// characters. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyEvent {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return KeyEvent{Kind: KeyQuit}
	case key.Matches(msg, km.keys.Screenshot):
		return KeyEvent{Kind: KeyScreenshot}
	case key.Matches(msg, km.keys.Help):
		return KeyEvent{Kind: KeyHelp}
	case key.Matches(msg, km.keys.P1Up):
		return KeyEvent{Kind: KeyButton, Button: core.Button3}
	case key.Matches(msg, km.keys.P1Down):
		return KeyEvent{Kind: KeyButton, Button: core.Button2}
	case key.Matches(msg, km.keys.P2Up):
		return KeyEvent{Kind: KeyButton, Button: core.Button1}
	case key.Matches(msg, km.keys.P2Down):
		return KeyEvent{Kind: KeyButton, Button: core.Button0}
	}

	// Everything printable goes down the serial line
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return KeyEvent{Kind: KeyChar, Char: msg.Runes[0]}
	}
	if msg.Type == tea.KeySpace {
		return KeyEvent{Kind: KeyChar, Char: ' '}
	}
	return KeyEvent{Kind: KeyNone}
}
