package component

import (
	"testing"
	"time"

	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/ui/command"
	"github.com/stretchr/testify/require"
)

func TestStatusBar(t *testing.T) {
	store := newStore(t)

	bar := NewStatusBarModel(store, "v1.2.3", time.Millisecond)
	updated, _ := bar.Update(mainView())

	view := updated.View()
	require.Contains(t, view, "v1.2.3")
	require.Contains(t, view, "Marketing / Home")

	hover(t, store, "p3")
	require.Contains(t, updated.View(), "highlight: navigation p3")

	updated, cmd := updated.Update(command.StatusMsg{Message: "Assembled Dashboard at /dashboard"})
	require.NotNil(t, cmd)
	require.Contains(t, updated.View(), "Assembled Dashboard at /dashboard")
	require.NotContains(t, updated.View(), "highlight:")

	updated, _ = updated.Update(cmd())
	require.NotContains(t, updated.View(), "Assembled Dashboard")

	updated, _ = updated.Update(config.Config{StatusTimeout: time.Minute})
	status, ok := updated.(StatusBarModel)
	require.True(t, ok)
	require.Equal(t, time.Minute, status.timeout)
}

func TestStatusBarStaleClearKeepsNewerMessage(t *testing.T) {
	bar := NewStatusBarModel(newStore(t), "v1.2.3", time.Millisecond)

	updated, first := bar.Update(command.StatusMsg{Message: "Assembled Marketing at /"})
	updated, second := updated.Update(command.StatusMsg{Message: "Assembled Dashboard at /dashboard"})

	updated, _ = updated.Update(first())
	require.Contains(t, updated.View(), "Assembled Dashboard at /dashboard")

	updated, _ = updated.Update(second())
	require.NotContains(t, updated.View(), "Assembled Dashboard")
}
