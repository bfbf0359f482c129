package ui

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()

	os.Exit(m.Run())
}

func testConfig() config.Config {
	return config.Config{
		FPS:           config.DefaultFPS,
		Accent:        config.DefaultAccent,
		StatusTimeout: config.DefaultStatusTimeout,
		Tree:          config.Tree{Indent: 2},
	}
}

func testBuild() BuildInfo {
	return BuildInfo{Version: "v0.0.1", Date: "2024-01-01", Commit: "0123456789abcdef"}
}

// send delivers msg and feeds any view state change back in, mimicking the program loop.
func send(t *testing.T, root tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()

	root, cmd := root.Update(msg)
	if cmd == nil {
		return root, nil
	}

	if viewState, ok := cmd().(model.ViewState); ok {
		return root.Update(viewState)
	}

	return root, cmd
}

func newRoot(t *testing.T) (tea.Model, *state.Store) {
	t.Helper()

	store := state.New(catalog.Default(), true)
	var root tea.Model = newRootModel(testConfig(), store, testBuild(), "/tmp/mfe-tui.yaml", "/tmp/mfe-tui.log")
	root, _ = send(t, root, tea.WindowSizeMsg{Width: 160, Height: 60})

	return root, store
}

func TestRootUninitialized(t *testing.T) {
	store := state.New(catalog.Default(), true)
	root := newRootModel(testConfig(), store, testBuild(), "", "")

	require.Empty(t, root.View())

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.Nil(t, cmd)
}

func TestRootMainView(t *testing.T) {
	root, _ := newRoot(t)

	view := root.View()
	require.Contains(t, view, appTitle)
	require.Contains(t, view, "Microfrontend Structure")
	require.Contains(t, view, "Assembled Application: Marketing")
	require.Contains(t, view, "v0.0.1")
	require.LessOrEqual(t, lipgloss.Height(view), 60)
}

func TestRootHelpToggle(t *testing.T) {
	root, _ := newRoot(t)

	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	view := root.View()
	require.Contains(t, view, "Config Path")
	require.Contains(t, view, "/tmp/mfe-tui.yaml")
	require.Contains(t, view, "01234567")
	require.NotContains(t, view, "0123456789")

	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Contains(t, root.View(), "Microfrontend Structure")

	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.Contains(t, root.View(), "Microfrontend Structure")
}

func TestRootQuit(t *testing.T) {
	root, _ := newRoot(t)

	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		require.False(t, quit, "q only quits from the main page")
	}

	_, cmd = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootKeysReachStore(t *testing.T) {
	root, store := newRoot(t)

	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	require.Equal(t, "Dashboard", store.ActiveApp().Name)

	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyDown})
	root, _ = send(t, root, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, []string{catalog.MockHeader, "p1"}, store.Highlights())
	require.Contains(t, root.View(), "highlight: header p1")
}

func TestRootConfigReload(t *testing.T) {
	root, _ := newRoot(t)
	t.Cleanup(func() { styles.SetAccent(config.DefaultAccent) })

	updated := testConfig()
	updated.Accent = "#00ff00"
	updated.StatusTimeout = time.Second

	_, _ = send(t, root, updated)
	require.Equal(t, lipgloss.Color("#00ff00"), styles.Accent)
}

func TestRender(t *testing.T) {
	store := state.New(catalog.Default(), true)
	require.True(t, store.SelectApp("Documentation"))
	store.SelectPage(state.PageAbout)

	frame := Render(testConfig(), store, testBuild(), 140, 50)
	require.Contains(t, frame, "Assembled Application: Documentation")
	require.Contains(t, frame, "About Us")
	require.LessOrEqual(t, lipgloss.Height(frame), 50)
}

func TestRenderReusesZoneManager(t *testing.T) {
	manager := zone.DefaultManager
	require.NotNil(t, manager)

	for range 3 {
		Render(testConfig(), state.New(catalog.Default(), true), testBuild(), 120, 40)
	}

	require.Same(t, manager, zone.DefaultManager)
}
