package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui/command"
	"github.com/leighmacdonald/mfe-tui/internal/ui/input"
	"github.com/leighmacdonald/mfe-tui/internal/ui/model"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

const browserTitle = "Browser"

// BrowserModel draws the mock browser window showing the assembled application.
type BrowserModel struct {
	store     *state.Store
	id        string
	tabsModel tea.Model
	viewState model.ViewState
}

func NewBrowserModel(store *state.Store) BrowserModel {
	return BrowserModel{
		store:     store,
		id:        zone.NewPrefix(),
		tabsModel: NewTabsModel(store),
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return m.tabsModel.Init()
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if m.viewState.Page != model.PageMain || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}

		for _, app := range m.store.Catalog().Apps {
			if zone.Get(m.id + app.Name).InBounds(msg) {
				cmd = m.selectApp(app.Name)

				break
			}
		}
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			break
		}

		apps := m.store.Catalog().Apps
		for idx, binding := range input.Default.Apps() {
			if key.Matches(msg, binding) && idx < len(apps) {
				cmd = m.selectApp(apps[idx].Name)
			}
		}
	}

	var tabsCmd tea.Cmd
	m.tabsModel, tabsCmd = m.tabsModel.Update(msg)

	return m, tea.Batch(cmd, tabsCmd)
}

func (m BrowserModel) selectApp(name string) tea.Cmd {
	before := m.store.ActiveApp().Name
	if !m.store.SelectApp(name) || before == name {
		return nil
	}

	app := m.store.ActiveApp()

	return command.SetStatusMessage(fmt.Sprintf("Assembled %s at %s", app.Name, app.Route), false)
}

func (m BrowserModel) View() string {
	width, height := m.viewState.BrowserWidth(), m.viewState.Content
	inner, innerHeight := width-2, height-2
	if inner <= 8 || innerHeight <= 0 {
		return model.Container(browserTitle, width, height, "", false)
	}

	app := m.store.ActiveApp()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.Shade(app.Color, 500)).
		Render("Assembled Application: " + app.Name)
	address := m.addressBar(app, inner)
	header := m.chrome(catalog.MockHeader, inner, m.headerLine(inner-4))
	nav := m.chrome(catalog.MockNavigation, inner, m.navigation()+"\n"+m.tabsModel.View())
	footer := m.chrome(catalog.MockFooter, inner, m.footerLine(inner-4))

	used := lipgloss.Height(title) + lipgloss.Height(address) + lipgloss.Height(header) +
		lipgloss.Height(nav) + lipgloss.Height(footer)
	sections := []string{title, address, header, nav}

	if bodyHeight := innerHeight - used; bodyHeight >= 3 {
		sections = append(sections, m.body(app, inner, bodyHeight))
	}

	sections = append(sections, footer)

	return model.Container(browserTitle, width, height, lipgloss.JoinVertical(lipgloss.Left, sections...), false)
}

func (m BrowserModel) addressBar(app catalog.Application, width int) string {
	return styles.AddressBar.Width(width).Render(
		styles.AddressLock.Render(styles.IconLock) + " " + siteOrigin + styles.AddressPath.Render(app.Route))
}

// chrome renders one of the shared layout components, pulsing while its mock id is highlighted.
func (m BrowserModel) chrome(mockID string, width int, content string) string {
	style := styles.Block
	if m.store.Highlighted(mockID) {
		style = styles.BlockPulse
	}

	return style.Width(width - 2).Render(content)
}

func (m BrowserModel) headerLine(width int) string {
	return spread(width, "☰ "+siteTitle, "🔔 🔍 (U)")
}

func (m BrowserModel) footerLine(width int) string {
	return spread(width, siteCopy, strings.Join(footerLinks, " | "))
}

// navigation renders one shared button per application. Each is a click zone.
func (m BrowserModel) navigation() string {
	active := m.store.ActiveApp()
	buttons := make([]string, 0, len(m.store.Catalog().Apps))

	for _, app := range m.store.Catalog().Apps {
		var style lipgloss.Style
		switch {
		case m.store.Highlighted(catalog.MockSharedButton):
			style = styles.ButtonPulse
		case app.Name == active.Name:
			style = styles.Hint(app.Color + "-700").Padding(0, 1)
		default:
			style = styles.ButtonIdle.Foreground(styles.Shade(app.Color, 100))
		}

		buttons = append(buttons, zone.Mark(m.id+app.Name, style.Render(app.Name)))
	}

	return strings.Join(buttons, " ")
}

// body renders the active page inside a frame which pulses while the application's page entry is highlighted.
func (m BrowserModel) body(app catalog.Application, width int, height int) string {
	frame := styles.Block.BorderForeground(styles.Shade(app.Color, 700))
	if entry, found := app.PageEntry(); found && m.store.Highlighted(entry.ID) {
		frame = styles.BlockPulse
	}

	contentWidth := width - 4

	var content string
	switch m.store.Page() {
	case state.PageProducts:
		content = m.products(app, contentWidth)
	case state.PageAbout:
		content = m.about(contentWidth)
	case state.PageContact:
		content = m.contact(app, contentWidth)
	default:
		content = m.home(app, contentWidth)
	}

	return frame.Width(width - 2).Height(height - 2).MaxHeight(height).Render(content)
}

func (m BrowserModel) home(app catalog.Application, width int) string {
	page := homeFor(app.Name, app.Color)
	if len(page.blocks) == 0 {
		return ""
	}

	switch page.layout {
	case layoutSidebar:
		side := max(width/4, 16)
		if len(page.blocks) == 1 || side >= width-8 {
			return m.stack(page.blocks, width)
		}

		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderBlock(page.blocks[0], side),
			m.stack(page.blocks[1:], width-side))
	case layoutGrid:
		rows := []string{m.renderBlock(page.blocks[0], width)}
		for idx := 1; idx < len(page.blocks); idx += 2 {
			if idx+1 == len(page.blocks) {
				rows = append(rows, m.renderBlock(page.blocks[idx], width))

				continue
			}

			half := width / 2
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				m.renderBlock(page.blocks[idx], half),
				m.renderBlock(page.blocks[idx+1], width-half)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	default:
		return m.stack(page.blocks, width)
	}
}

func (m BrowserModel) stack(blocks []block, width int) string {
	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, m.renderBlock(b, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// renderBlock draws a card occupying exactly width columns.
func (m BrowserModel) renderBlock(b block, width int) string {
	style := styles.Block
	if b.id != "" && m.store.Highlighted(b.id) {
		style = styles.BlockPulse
	}

	style = style.Inherit(styles.Hint(b.style))
	textWidth := max(width-4, 1)

	var lines []string
	if b.title != "" {
		lines = append(lines, styles.BlockTitle.Render(b.title))
	}

	if b.heading != "" {
		lines = append(lines, styles.Title.Render(wordwrap.String(b.heading, textWidth)))
	}

	for _, line := range b.lines {
		lines = append(lines, wordwrap.String(line, textWidth))
	}

	for _, bullet := range b.bullets {
		lines = append(lines, wordwrap.String(styles.IconFile+" "+bullet, textWidth))
	}

	if b.input != "" {
		lines = append(lines, renderInput(b.input, textWidth))
	}

	if b.button != "" {
		lines = append(lines, m.sharedButton(b.button))
	}

	return style.Width(max(width-2, 1)).Render(strings.Join(lines, "\n"))
}

func (m BrowserModel) sharedButton(label string) string {
	if m.store.Highlighted(catalog.MockSharedButton) {
		return styles.ButtonPulse.Render(label)
	}

	return styles.Button.Render(label)
}

func (m BrowserModel) products(app catalog.Application, width int) string {
	button := styles.Hint(app.Color+"-500").Padding(0, 1).Render(productsButton)
	cards := make([][]string, 0, productCount/3)

	row := make([]string, 0, 3)
	for product := 1; product <= productCount; product++ {
		row = append(row, strings.Join([]string{
			styles.BlockTitle.Render(fmt.Sprintf("Product %d", product)),
			fmt.Sprintf("Description for Product %d", product),
			button,
		}, "\n"))

		if len(row) == 3 {
			cards = append(cards, row)
			row = make([]string, 0, 3)
		}
	}

	card := styles.Hint(app.Color+"-800").Padding(0, 1)
	grid := NewUnstyledTable().
		Rows(cards...).
		Width(width).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return card
		})

	return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(productsTitle), "", grid.Render())
}

func (m BrowserModel) about(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(aboutTitle), "", wordwrap.String(aboutText, width))
}

func (m BrowserModel) contact(app catalog.Application, width int) string {
	rows := []string{styles.Title.Render(contactTitle), ""}
	for _, field := range contactFields {
		rows = append(rows, renderInput(field, width))
	}

	message := NewTextAreaModel(contactMessage, max(width-4, 1), 3)
	rows = append(rows,
		styles.Input.Width(max(width-2, 1)).Render(message.View()),
		styles.Hint(app.Color+"-500").Padding(0, 1).Render(contactSend))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderInput(placeholder string, width int) string {
	field := NewTextInputModel("", placeholder, max(width-4, 1))

	return styles.Input.Width(max(width-2, 1)).Render(field.View())
}

// spread places left and right at the edges of width columns.
func spread(width int, left string, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}

	return left + strings.Repeat(" ", gap) + right
}
