package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to max display width with ellipsis
func truncate(s string, max int) string {
	if max <= 3 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// firstLine returns s up to its first line break
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// clamp keeps a cursor inside a list of n items
func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// checkbox renders the check state of an entry
func checkbox(flag *bool) string {
	switch {
	case flag == nil:
		return "   "
	case *flag:
		return "[x]"
	default:
		return "[ ]"
	}
}
