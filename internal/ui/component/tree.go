package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/tree"
	"github.com/leighmacdonald/mfe-tui/internal/ui/command"
	"github.com/leighmacdonald/mfe-tui/internal/ui/input"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const treeTitle = "Microfrontend Structure"

// TreeModel renders the navigator and forwards clicks, hovers and keys to the store.
type TreeModel struct {
	store     *state.Store
	id        string
	cursor    int
	offset    int
	hovered   string
	indent    int
	viewState model.ViewState
}

func NewTreeModel(store *state.Store, indent int) TreeModel {
	return TreeModel{
		store:  store,
		id:     zone.NewPrefix(),
		indent: indent,
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.scroll()
	case config.Config:
		m.indent = msg.Tree.Indent
	case tea.MouseMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}

		return m.mouse(msg)
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Up):
			m.move(input.Up)
		case key.Matches(msg, input.Default.Down):
			m.move(input.Down)
		case key.Matches(msg, input.Default.Left):
			m.move(input.Left)
		case key.Matches(msg, input.Default.Right):
			m.move(input.Right)
		case key.Matches(msg, input.Default.Accept):
			return m, m.activate(m.cursor)
		case key.Matches(msg, input.Default.Clear):
			m.hover(-1)
		}
	}

	return m, nil
}

func (m TreeModel) mouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	row, found := m.rowAt(msg)

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hover(row)
	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && found:
		m.cursor = row

		return m, m.activate(row)
	}

	return m, nil
}

// rowAt returns the index of the visible row under the pointer, or -1.
func (m TreeModel) rowAt(msg tea.MouseMsg) (int, bool) {
	rows := m.store.Visible()
	for idx := m.offset; idx < len(rows) && idx < m.offset+m.height(); idx++ {
		if zone.Get(m.id + rows[idx].Node.ID).InBounds(msg) {
			return idx, true
		}
	}

	return -1, false
}

// hover marks the row at idx as hovered. An index outside the rows clears the hover, but only if this
// model set it in the first place.
func (m *TreeModel) hover(idx int) {
	rows := m.store.Visible()
	if idx < 0 || idx >= len(rows) {
		if m.hovered != "" {
			m.hovered = ""
			m.store.SelectHover(nil)
		}

		return
	}

	node := rows[idx].Node
	if node.ID == m.hovered {
		return
	}

	m.hovered = node.ID
	m.store.SelectHover(&node)
}

// activate performs a click on the row at idx: folders toggle, files navigate to their application.
func (m *TreeModel) activate(idx int) tea.Cmd {
	rows := m.store.Visible()
	if idx < 0 || idx >= len(rows) {
		return nil
	}

	node := rows[idx].Node
	if node.IsFolder() {
		m.store.Toggle(node.ID)
		m.clamp()

		return nil
	}

	before := m.store.ActiveApp().Name
	if !m.store.Navigate(node) {
		return command.SetStatusMessage(fmt.Sprintf("%s is a shared package component", node.Name), false)
	}

	app := m.store.ActiveApp()
	if app.Name == before {
		return nil
	}

	return command.SetStatusMessage(fmt.Sprintf("Assembled %s at %s", app.Name, app.Route), false)
}

func (m *TreeModel) move(dir input.Direction) {
	rows := m.store.Visible()
	if len(rows) == 0 {
		return
	}

	current := rows[m.cursor].Node
	switch dir {
	case input.Up:
		m.cursor = max(m.cursor-1, 0)
	case input.Down:
		m.cursor = min(m.cursor+1, len(rows)-1)
	case input.Left:
		if current.IsFolder() && current.IsOpen {
			m.store.Toggle(current.ID)
		} else {
			m.cursor = parentRow(rows, m.cursor)
		}
	case input.Right:
		if current.IsFolder() && !current.IsOpen {
			m.store.Toggle(current.ID)
		}
	}

	m.clamp()
	m.hover(m.cursor)
}

// parentRow finds the closest preceding row one level up, or idx itself for roots.
func parentRow(rows []tree.Row, idx int) int {
	depth := rows[idx].Depth
	for i := idx - 1; i >= 0; i-- {
		if rows[i].Depth < depth {
			return i
		}
	}

	return idx
}

func (m *TreeModel) clamp() {
	rows := len(m.store.Visible())
	m.cursor = max(min(m.cursor, rows-1), 0)
	m.scroll()
}

// scroll keeps the cursor inside the rendered window.
func (m *TreeModel) scroll() {
	height := m.height()
	if height <= 0 {
		return
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
}

func (m TreeModel) height() int {
	return m.viewState.Content - 2
}

func (m TreeModel) width() int {
	return m.viewState.TreeWidth() - 2
}

func (m TreeModel) View() string {
	rows := m.store.Visible()
	lines := make([]string, 0, m.height())

	for idx := m.offset; idx < len(rows) && len(lines) < m.height(); idx++ {
		lines = append(lines, zone.Mark(m.id+rows[idx].Node.ID, m.renderRow(rows[idx], idx == m.cursor)))
	}

	return model.Container(treeTitle, m.viewState.TreeWidth(), m.viewState.Content, strings.Join(lines, "\n"), true)
}

func (m TreeModel) renderRow(row tree.Row, selected bool) string {
	node := row.Node

	var label string
	switch {
	case node.IsFolder() && node.IsOpen:
		label = styles.IconFolderOpen + " " + styles.IconDir + " " + node.Name + "/"
	case node.IsFolder():
		label = styles.IconFolder + " " + styles.IconDir + " " + node.Name + "/"
	case node.Name == catalog.PageMarker:
		label = "    " + styles.IconPage + " " + node.Name
	default:
		label = "    " + styles.IconFile + " " + node.Name
	}

	width := max(m.width(), 1)
	text := truncate.StringWithTail(strings.Repeat(" ", row.Depth*m.indent)+label, uint(width), "…") //nolint:gosec

	style := styles.Hint(node.Style).Inherit(styles.TreeRow)
	if node.IsFolder() {
		style = style.Inherit(styles.TreeFolderLabel)
	}

	if m.store.Highlighted(node.ID) {
		style = style.Inherit(styles.TreeRowHovered)
	}

	if selected {
		style = style.Reverse(true)
	}

	return style.Width(width).Render(text)
}
