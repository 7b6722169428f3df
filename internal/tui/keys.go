package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Activate key.Binding
	Search   key.Binding
	Reset    key.Binding
	Close    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
		Close:    key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "close")),
	}
}

// help lists the bindings shown in the footer for a pane.
func (k keyMap) help(f pane) []key.Binding {
	switch f {
	case paneFilters:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.Left, k.Right, k.Reset, k.Next, k.Quit}
	case paneResults:
		return []key.Binding{k.Up, k.Down, k.Activate, k.Search, k.Next, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Activate, k.Close, k.Next}
	}
}
