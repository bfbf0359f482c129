package pages

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/mfe-tui/internal/ui/command"
	"github.com/leighmacdonald/mfe-tui/internal/ui/input"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
)

// BuildInfo is the version metadata shown on the help page.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewHelp(build BuildInfo, configPath string, logPath string) Help {
	return Help{
		build:      build,
		configPath: configPath,
		logPath:    logPath,
		started:    time.Now(),
	}
}

type Help struct {
	helpView   help.Model
	viewState  model.ViewState
	build      BuildInfo
	configPath string
	logPath    string
	started    time.Time
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch { //nolint:gocritic
		case key.Matches(msg, input.Default.Back):
			// go back to main view
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain

				return m, command.SetViewState(m.viewState)
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Quit,
			input.Default.Help,
			input.Default.Back,
			input.Default.Accept,
			input.Default.Clear,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.Left,
			input.Default.Right,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		append([]key.Binding{input.Default.NextPage, input.Default.PrevPage}, input.Default.Apps()...),
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Started", humanize.RelTime(m.started, time.Now(), "ago", "from now")),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Content, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
