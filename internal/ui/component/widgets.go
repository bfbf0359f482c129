package component

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
)

// NewTextInputModel builds the blurred input used to draw mock form fields.
func NewTextInputModel(value string, placeholder string, width int) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.NoStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle
	input.Prompt = ""
	input.Width = max(width, 1)
	input.Blur()

	return input
}

// NewTextAreaModel builds a blurred multi line field with no line numbers.
func NewTextAreaModel(placeholder string, width int, height int) textarea.Model {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.SetWidth(width)
	area.SetHeight(height)
	area.Blur()

	return area
}

func NewUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}
