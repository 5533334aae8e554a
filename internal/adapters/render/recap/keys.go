package recap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the recap navigation bindings.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("q", "left", "h"),
			key.WithHelp("q/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("e", "right", "l"),
			key.WithHelp("e/→", "next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "esc", "ctrl+c"),
			key.WithHelp("x/esc", "exit"),
		),
	}
}

func (k KeyMap) helpLine() string {
	var parts []string
	for _, b := range []key.Binding{k.Previous, k.Next, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
