package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type BuildInfo = pages.BuildInfo

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, config config.Config, store *state.Store, build BuildInfo, configPath string,
	logPath string, opts ...tea.ProgramOption,
) *UI {
	ensureZones()

	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
		tea.WithFPS(config.FPS),
	}, opts...)

	return &UI{
		program: tea.NewProgram(newRootModel(config, store, build, configPath, logPath), options...),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

// Render draws a single frame of the main page at the given size without starting a program.
func Render(config config.Config, store *state.Store, build BuildInfo, width int, height int) string {
	ensureZones()

	var root tea.Model = newRootModel(config, store, build, "", "")

	root, cmd := root.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if cmd != nil {
		if viewState, ok := cmd().(model.ViewState); ok {
			root, _ = root.Update(viewState)
		}
	}

	return root.View()
}

// ensureZones starts the global click zone manager once. Each manager owns a worker goroutine.
func ensureZones() {
	if zone.DefaultManager == nil {
		zone.NewGlobal()
	}
}
