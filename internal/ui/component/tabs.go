package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/input"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// TabsModel is the row of mock page links drawn under the shared navigation.
type TabsModel struct {
	store     *state.Store
	id        string
	viewState model.ViewState
}

func NewTabsModel(store *state.Store) TabsModel {
	return TabsModel{store: store, id: zone.NewPrefix()}
}

func (m TabsModel) Init() tea.Cmd {
	return nil
}

func (m TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if m.viewState.Page != model.PageMain || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, page := range state.Pages {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + page.String()).InBounds(msg) {
				m.store.SelectPage(page)

				return m, nil
			}
		}
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.NextPage):
			m.store.SelectPage(m.store.Page().Next())
		case key.Matches(msg, input.Default.PrevPage):
			m.store.SelectPage(m.store.Page().Prev())
		}
	}

	return m, nil
}

func (m TabsModel) View() string {
	tabs := make([]string, 0, len(state.Pages))
	for _, page := range state.Pages {
		style := styles.TabsInactive
		if page == m.store.Page() {
			style = styles.TabsActive
		}

		tabs = append(tabs, zone.Mark(m.id+page.String(), style.Render(page.String())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
