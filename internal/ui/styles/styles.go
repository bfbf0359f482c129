package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#3e3e3e")
	White  = lipgloss.Color("#cccccc")
	Whiter = lipgloss.Color("#aaaaaa")
	Blue   = lipgloss.Color("#5885A2")
	Red    = lipgloss.Color("#B8383B")

	Green  = lipgloss.Color("#4d7455")
	Indigo = lipgloss.Color("#476291")
	Violet = lipgloss.Color("#8650ac")
	Orange = lipgloss.Color("#cf6a32")

	NoStyle = lipgloss.NewStyle()
	Title   = lipgloss.NewStyle().Bold(true).Foreground(White)

	TreeRow         = lipgloss.NewStyle().Padding(0)
	TreeRowHovered  = lipgloss.NewStyle().Bold(true).Underline(true)
	TreeFolderLabel = lipgloss.NewStyle().Bold(true)

	AddressBar  = lipgloss.NewStyle().Background(lipgloss.Color("#374151")).Foreground(lipgloss.Color("#d1d5db")).Padding(0, 1)
	AddressLock = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	AddressPath = lipgloss.NewStyle().Foreground(lipgloss.Color("#f3f4f6")).Bold(true)

	Block       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1)
	BlockPulse  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(Accent).Padding(0, 1).Bold(true)
	BlockTitle  = lipgloss.NewStyle().Bold(true)
	Button      = lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#9ca3af")).Padding(0, 1)
	ButtonPulse = Button.Background(Accent).Bold(true)
	ButtonIdle  = lipgloss.NewStyle().Foreground(White).Padding(0, 1)
	Input       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Whiter).Foreground(Whiter).Padding(0, 1)

	TabsInactive = lipgloss.NewStyle().Bold(true).Foreground(Indigo).PaddingLeft(2).PaddingRight(2)
	TabsActive   = lipgloss.NewStyle().Foreground(Violet).Underline(true).PaddingLeft(2).PaddingRight(2)

	StatusError     = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage   = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusApp       = lipgloss.NewStyle().Foreground(Orange).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusHighlight = lipgloss.NewStyle().Foreground(Indigo).PaddingRight(2)
	StatusHelp      = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion   = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(2)

	IconFolder     = "▸"
	IconFolderOpen = "▾"
	IconDir        = "▤"
	IconFile       = "•"
	IconPage       = "◆"
	IconLock       = "🔒"
)

// SetAccent replaces the accent colour used for pulsing blocks.
func SetAccent(colour string) {
	if colour == "" {
		return
	}

	Accent = lipgloss.Color(colour)
	BlockPulse = BlockPulse.BorderForeground(Accent)
	ButtonPulse = ButtonPulse.Background(Accent)
}

// Tailwind-like palette covering every colour used by the catalog. Missing shades fall back to gray.
var palette = map[string]map[int]string{ //nolint:gochecknoglobals
	"gray": {
		100: "#f3f4f6", 200: "#e5e7eb", 300: "#d1d5db", 400: "#9ca3af", 500: "#6b7280",
		600: "#4b5563", 700: "#374151", 800: "#1f2937", 900: "#111827", 950: "#030712",
	},
	"purple": {
		100: "#f3e8ff", 500: "#a855f7", 600: "#9333ea", 700: "#7e22ce",
		800: "#6b21a8", 900: "#581c87", 950: "#3b0764",
	},
	"green": {
		100: "#dcfce7", 500: "#22c55e", 600: "#16a34a", 700: "#15803d",
		800: "#166534", 900: "#14532d", 950: "#052e16",
	},
	"blue": {
		100: "#dbeafe", 500: "#3b82f6", 600: "#2563eb", 700: "#1d4ed8",
		800: "#1e40af", 900: "#1e3a8a", 950: "#172554",
	},
}

// Shade looks up a colour by name and shade, e.g. ("purple", 700).
func Shade(name string, shade int) lipgloss.Color {
	shades, found := palette[name]
	if !found {
		shades = palette["gray"]
	}

	value, found := shades[shade]
	if !found {
		value = palette["gray"][shade]
		if value == "" {
			value = palette["gray"][700]
		}
	}

	return lipgloss.Color(value)
}

// ParseShade splits a style hint like "green-600" into its name and shade.
func ParseShade(hint string) (string, int, bool) {
	name, shadeStr, found := strings.Cut(hint, "-")
	if !found {
		return hint, 0, false
	}

	shade, err := strconv.Atoi(shadeStr)
	if err != nil {
		return name, 0, false
	}

	return name, shade, true
}

// Hint converts a catalog style hint into a background style with a readable foreground.
func Hint(hint string) lipgloss.Style {
	name, shade, ok := ParseShade(hint)
	if !ok {
		return lipgloss.NewStyle()
	}

	foreground := White
	if shade <= 400 {
		foreground = Black
	}

	return lipgloss.NewStyle().Background(Shade(name, shade)).Foreground(foreground)
}

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
