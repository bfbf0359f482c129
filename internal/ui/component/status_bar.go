package component

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/command"
	"github.com/leighmacdonald/mfe-tui/internal/ui/input"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
)

// StatusBarModel renders the footer line with the active route and transient status messages.
type StatusBarModel struct {
	store       *state.Store
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	statusID    int
	timeout     time.Duration
	version     string
}

func NewStatusBarModel(store *state.Store, version string, timeout time.Duration) StatusBarModel {
	return StatusBarModel{store: store, version: version, timeout: timeout}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err
		m.statusID++

		return m, command.ClearErrorAfter(m.timeout, m.statusID)
	case command.ClearStatusMessageMsg:
		if msg.ID != m.statusID {
			break
		}

		m.statusError = false
		m.statusMsg = ""
	case config.Config:
		m.timeout = msg.StatusTimeout
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m StatusBarModel) View() string {
	app := m.store.ActiveApp()
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusApp.Render(fmt.Sprintf("%s %s %s", app.Name, app.Route, m.store.Page())),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	if highlights := m.store.Highlights(); len(highlights) > 0 {
		return styles.StatusHighlight.Render("highlight: " + strings.Join(highlights, " "))
	}

	return ""
}
