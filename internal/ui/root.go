package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/command"
	"github.com/leighmacdonald/mfe-tui/internal/ui/component"
	"github.com/leighmacdonald/mfe-tui/internal/ui/input"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/pages"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const appTitle = "Microfrontend Architecture Illustration"

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	store        *state.Store
	viewState    model.ViewState
	mainModel    tea.Model
	helpModel    tea.Model
	statusModel  tea.Model
	headerHeight int
	footerHeight int
}

func newRootModel(userConfig config.Config, store *state.Store, build pages.BuildInfo, configPath string, logPath string) *rootModel {
	styles.SetAccent(userConfig.Accent)

	return &rootModel{
		store:        store,
		viewState:    model.ViewState{Page: model.PageMain},
		mainModel:    pages.NewMain(userConfig, store),
		helpModel:    pages.NewHelp(build, configPath, logPath),
		statusModel:  component.NewStatusBarModel(store, build.Version, userConfig.StatusTimeout),
		headerHeight: 1,
		footerHeight: 1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("mfe-tui"),
		m.mainModel.Init(),
		m.helpModel.Init(),
		m.statusModel.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Content = max(m.viewState.Height-m.headerHeight-m.footerHeight, 0)

		return m, command.SetViewState(m.viewState)
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		styles.SetAccent(msg.Accent)
	case tea.KeyMsg:
		if !m.isInitialized() {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Quit):
			if m.viewState.Page != model.PageMain && msg.String() != "ctrl+c" {
				break
			}

			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain
			} else {
				m.viewState.Page = model.PageHelp
			}

			return m, command.SetViewState(m.viewState)
		}
	}

	return m.propagate(inMsg)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	hdr := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(styles.Title.Render(appTitle))
	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusModel.View())

	var content string
	switch m.viewState.Page {
	case model.PageHelp:
		content = m.helpModel.View()
	case model.PageMain:
		content = m.mainModel.View()
	}

	ctr := styles.ContentContainerStyle.
		Height(m.viewState.Content).
		MaxHeight(m.viewState.Content).
		Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 3)

	m.mainModel, cmds[0] = m.mainModel.Update(msg)
	m.helpModel, cmds[1] = m.helpModel.Update(msg)
	m.statusModel, cmds[2] = m.statusModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/mfe-tui/mfe-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch msg := inMsg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			break
		}

		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	case command.ClearStatusMessageMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
