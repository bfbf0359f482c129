package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Accept   key.Binding
	Clear    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	App1     key.Binding
	App2     key.Binding
	App3     key.Binding
}

// Apps returns the bindings that jump straight to an application, in catalog order.
func (m Map) Apps() []key.Binding {
	return []key.Binding{m.App1, m.App2, m.App3}
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "H"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Expand"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "Open / navigate"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Clear highlight"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev page"),
	),
	App1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "First app"),
	),
	App2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Second app"),
	),
	App3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Third app"),
	),
}
