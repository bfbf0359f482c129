package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/component"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
)

func NewMain(config config.Config, store *state.Store) Main {
	return Main{
		treeModel:    component.NewTreeModel(store, config.Tree.Indent),
		browserModel: component.NewBrowserModel(store),
	}
}

// Main is the navigator on the left and the assembled application on the right.
type Main struct {
	treeModel    tea.Model
	browserModel tea.Model
	viewState    model.ViewState
}

func (m Main) Init() tea.Cmd {
	return tea.Batch(m.treeModel.Init(), m.browserModel.Init())
}

func (m Main) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(model.ViewState); ok {
		m.viewState = msg
	}

	return m.propagate(msg)
}

func (m Main) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.treeModel.View(), m.browserModel.View())
}

func (m Main) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 2)

	m.treeModel, cmds[0] = m.treeModel.Update(msg)
	m.browserModel, cmds[1] = m.browserModel.Update(msg)

	return m, tea.Batch(cmds...)
}
