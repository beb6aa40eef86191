package pagination

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page stepping bindings of Model.
// Printable keys are left to the page field, so stepping uses paging and
// control keys only.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

// DefaultKeyMap returns the default stepping bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b", "shift+tab"),
			key.WithHelp("pgup", "prev page"),
		),
		Next: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f", "tab"),
			key.WithHelp("pgdn", "next page"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
