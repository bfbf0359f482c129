package component

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/tree"
	"github.com/stretchr/testify/require"
)

func newBrowser(t *testing.T) (BrowserModel, *state.Store) {
	t.Helper()

	store := newStore(t)
	updated, _ := NewBrowserModel(store).Update(mainView())
	browser, ok := updated.(BrowserModel)
	require.True(t, ok)

	return browser, store
}

func hover(t *testing.T, store *state.Store, id string) {
	t.Helper()

	node, found := tree.Find(store.Tree(), id)
	require.True(t, found, id)
	store.SelectHover(&node)
}

func TestBrowserHome(t *testing.T) {
	browser, _ := newBrowser(t)

	view := browser.View()
	for _, text := range []string{
		"Assembled Application: Marketing",
		siteOrigin,
		siteTitle,
		"Hero Section",
		"Welcome to Our Product",
		"Get Started",
		"Intuitive Interface",
		"Happy Customer",
		siteCopy,
		"Privacy Policy",
	} {
		require.Contains(t, view, text)
	}
}

func TestBrowserAppKeys(t *testing.T) {
	browser, store := newBrowser(t)

	updated, cmd := browser.Update(runeKey('2'))
	require.Equal(t, "Documentation", store.ActiveApp().Name)
	require.Equal(t, "Assembled Documentation at /docs", statusOf(t, cmd).Message)

	view := updated.View()
	require.Contains(t, view, "/docs")
	require.Contains(t, view, "Search documentation...")
	require.Contains(t, view, "Article Content")

	_, cmd = updated.Update(runeKey('2'))
	require.Nil(t, cmd, "already active")

	updated, _ = updated.Update(runeKey('3'))
	require.Equal(t, "Dashboard", store.ActiveApp().Name)
	require.Contains(t, updated.View(), "Edit Profile")

	_, cmd = updated.Update(runeKey('9'))
	require.Nil(t, cmd)
	require.Equal(t, "Dashboard", store.ActiveApp().Name)
}

func TestBrowserPages(t *testing.T) {
	browser, store := newBrowser(t)

	updated, _ := browser.Update(keyPress(tea.KeyTab))
	require.Equal(t, state.PageProducts, store.Page())
	require.Contains(t, updated.View(), "Product 6")
	require.Contains(t, updated.View(), productsButton)

	updated, _ = updated.Update(keyPress(tea.KeyTab))
	require.Equal(t, state.PageAbout, store.Page())
	require.Contains(t, updated.View(), aboutTitle)

	updated, _ = updated.Update(keyPress(tea.KeyTab))
	require.Equal(t, state.PageContact, store.Page())
	view := updated.View()
	require.Contains(t, view, "Your Email")
	require.Contains(t, view, contactSend)

	updated, _ = updated.Update(keyPress(tea.KeyShiftTab))
	require.Equal(t, state.PageAbout, store.Page())

	updated, _ = updated.Update(runeKey('3'))
	require.Equal(t, state.PageHome, store.Page(), "switching application returns home")
	require.Contains(t, updated.View(), "User Profile")
}

func TestBrowserPulse(t *testing.T) {
	browser, store := newBrowser(t)
	require.NotContains(t, browser.View(), "┏")

	hover(t, store, "p1")
	require.Contains(t, browser.View(), "┏", "header pulses")

	hover(t, store, "m2")
	require.Contains(t, browser.View(), "┏", "features block pulses")

	hover(t, store, "d2")
	require.NotContains(t, browser.View(), "┏", "blocks of other applications are not drawn")

	store.SelectHover(nil)
	require.NotContains(t, browser.View(), "┏")
}

func TestBrowserTooSmall(t *testing.T) {
	browser, _ := newBrowser(t)
	small := mainView()
	small.Width = 0

	updated, _ := browser.Update(small)
	require.NotContains(t, updated.View(), "Assembled Application")
}

func TestSpread(t *testing.T) {
	require.Equal(t, "a   b", spread(5, "a", "b"))
	require.Equal(t, "left", spread(3, "left", "right"))
}
