package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/mynotes/internal/model"
)

// Color palette based on TUI design
var (
	// Status colors
	Checked = lipgloss.Color("#95E1A3") // Green
	Danger  = lipgloss.Color("#FF6B6B") // Red
	Warning = lipgloss.Color("#FFE66D") // Yellow

	// UI colors
	Primary    = lipgloss.Color("#4ECDC4")
	Secondary  = lipgloss.Color("#6C757D")
	Background = lipgloss.Color("#1a1a2e")
	Surface    = lipgloss.Color("#16213e")
	Text       = lipgloss.Color("#FFFFFF")
	TextMuted  = lipgloss.Color("#888888")
	Border     = lipgloss.Color("#333333")
	Highlight  = lipgloss.Color("#4ECDC4")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// List
	ListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	ItemDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true).
			Padding(0, 1)

	ItemMarkedStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Padding(0, 1)

	// Editor
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Width(10)

	LabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true).
				Width(10)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Confirmation modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Danger).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// Swatch renders a small block in the entry's color
func Swatch(c model.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render("●")
}

// FormatColor renders the swatch followed by the color name
func FormatColor(c model.Color) string {
	return Swatch(c) + " " + c.Name
}
