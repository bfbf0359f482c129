package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mfe-tui/internal/ui/styles"
)

// Container draws content inside a titled border. Width and height are the outer dimensions.
func Container(title string, width int, height int, content string, active bool) string {
	innerWidth, innerHeight := width-2, height-2
	if innerHeight <= 0 || innerWidth <= 0 {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, innerWidth, title)).
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(content)
}
