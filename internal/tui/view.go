package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/mynotes/internal/routing"
	"github.com/existflow/mynotes/internal/viewmodel"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderTabs()
	statusBar := m.renderStatusBar()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)

	var body string
	switch m.mode {
	case ModeHelp:
		body = m.renderHelp()
	case ModeConfirm:
		body = lipgloss.Place(
			m.width, bodyHeight,
			lipgloss.Center, lipgloss.Center,
			m.renderConfirm(),
			lipgloss.WithWhitespaceChars(" "),
		)
	default:
		switch m.screen {
		case routing.SaveNote, routing.SaveContact:
			body = m.renderEditor()
		case routing.Trash:
			body = m.renderTrash()
		case routing.Contacts:
			body = m.renderContacts()
		default:
			body = m.renderNotes()
		}
	}

	body = lipgloss.NewStyle().Height(max(bodyHeight, 0)).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

func (m Model) renderTabs() string {
	tabs := []struct {
		label  string
		screen routing.Screen
	}{
		{"1 Notes", routing.Notes},
		{"2 Contacts", routing.Contacts},
		{"3 Trash", routing.Trash},
	}

	active := m.screen
	switch active {
	case routing.SaveNote:
		active = routing.Notes
	case routing.SaveContact:
		active = routing.Contacts
	}

	parts := []string{HeaderStyle.Render("MyNotes")}
	for _, t := range tabs {
		style := TabStyle
		if t.screen == active {
			style = TabActiveStyle
		}
		parts = append(parts, style.Render(t.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderNotes() string {
	width := m.width - 4
	var s string

	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(fmt.Sprintf("Notes (%d)", len(m.notes))) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n\n"

	if len(m.notes) == 0 {
		s += HelpStyle.Render("  No notes. Press 'a' to add one.")
	}

	for i, n := range m.notes {
		cursor := "  "
		style := ItemStyle
		if i == m.noteCursor {
			cursor = "❯ "
			style = ItemSelectedStyle
		}
		if n.Checked() {
			style = ItemDoneStyle
		}

		line := fmt.Sprintf("%s%s %s ", cursor, checkbox(n.IsCheckedOff), truncate(n.Title, 30))
		preview := HelpStyle.Render(truncate(firstLine(n.Content), max(width-45, 10)))
		s += Swatch(n.Color) + style.Render(line) + preview + "\n"
	}

	return ListStyle.Width(width).Render(s)
}

func (m Model) renderContacts() string {
	width := m.width - 4
	var s string

	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(fmt.Sprintf("Contacts (%d)", len(m.contacts))) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n\n"

	if len(m.contacts) == 0 {
		s += HelpStyle.Render("  No contacts. Press 'a' to add one.")
	}

	for i, c := range m.contacts {
		cursor := "  "
		style := ItemStyle
		if i == m.contactCursor {
			cursor = "❯ "
			style = ItemSelectedStyle
		}
		if c.Checked() {
			style = ItemDoneStyle
		}

		line := fmt.Sprintf("%s%s %-24s %-16s ", cursor, checkbox(c.IsCheckedOff), truncate(c.Title, 24), truncate(c.Number, 16))
		preview := HelpStyle.Render(truncate(firstLine(c.Content), max(width-60, 10)))
		s += Swatch(c.Color) + style.Render(line) + preview + "\n"
	}

	return ListStyle.Width(width).Render(s)
}

func (m Model) renderTrash() string {
	width := m.width - 4
	var s string

	notesTab, contactsTab := TabStyle, TabStyle
	if m.pane == PaneNotes {
		notesTab = TabActiveStyle
	} else {
		contactsTab = TabActiveStyle
	}
	s += notesTab.Render(fmt.Sprintf("Notes (%d)", len(m.trashedNotes))) +
		contactsTab.Render(fmt.Sprintf("Contacts (%d)", len(m.trashedContacts))) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n\n"

	type row struct {
		title    string
		selected bool
	}
	var rows []row
	if m.pane == PaneNotes {
		for _, n := range m.trashedNotes {
			rows = append(rows, row{Swatch(n.Color) + " " + n.Title, viewmodel.IsNoteSelected(m.selectedNotes, n.ID)})
		}
	} else {
		for _, c := range m.trashedContacts {
			rows = append(rows, row{Swatch(c.Color) + " " + c.Title + "  " + c.Number, viewmodel.IsContactSelected(m.selectedContact, c.ID)})
		}
	}

	if len(rows) == 0 {
		s += HelpStyle.Render("  Trash is empty.")
	}

	for i, r := range rows {
		cursor := "  "
		style := ItemStyle
		if i == m.trashCursor {
			cursor = "❯ "
			style = ItemSelectedStyle
		}
		mark := "[ ]"
		if r.selected {
			mark = "[*]"
			if i != m.trashCursor {
				style = ItemMarkedStyle
			}
		}
		s += style.Render(fmt.Sprintf("%s%s %s", cursor, mark, truncate(r.title, width-12))) + "\n"
	}

	return ListStyle.Width(width).Render(s)
}

func (m Model) renderEditor() string {
	heading := "Edit note"
	if m.screen == routing.SaveContact {
		heading = "Edit contact"
	}
	if m.editingID <= 0 {
		heading = strings.Replace(heading, "Edit", "New", 1)
	}

	label := func(f Field, text string) string {
		if m.field == f {
			return LabelFocusedStyle.Render(text)
		}
		return LabelStyle.Render(text)
	}

	var s string
	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(heading) + "\n\n"
	for _, f := range m.editorFields() {
		switch f {
		case FieldTitle:
			s += label(f, "Title") + m.title.View() + "\n"
		case FieldContent:
			s += label(f, "Content") + m.content.View() + "\n"
		case FieldNumber:
			s += label(f, "Number") + m.number.View() + "\n"
		case FieldCheckbox:
			state := "no checkbox"
			if m.checkable {
				state = checkbox(m.checkedFlag()) + " checkable"
			}
			s += label(f, "Checkbox") + state + "\n"
		case FieldColor:
			color := m.selectedColor()
			s += label(f, "Color") + "◂ " + FormatColor(color) + " ▸\n"
		}
	}

	s += "\n" + HelpStyle.Render("tab:next field  space:toggle checkbox  ←/→:color  ctrl+s:save  ctrl+d:trash  esc:back")
	return ListStyle.Render(s)
}

func (m Model) renderConfirm() string {
	content := lipgloss.NewStyle().Bold(true).Foreground(Danger).Render("Are you sure?") + "\n\n"
	content += m.confirmPrompt + "\n\n"
	content += HelpStyle.Render("y:confirm  any other key:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderStatusBar() string {
	var help string
	switch m.screen {
	case routing.SaveNote, routing.SaveContact:
		help = "ctrl+s:save  esc:back"
	case routing.Trash:
		help = "tab:switch  space:select  r:restore  D:delete  E:empty  esc:back  ?:help"
	default:
		help = "a:add  enter:edit  x:check  d:trash  1/2/3:screens  R:reload  ?:help  q:quit"
	}

	if m.lastErr != nil {
		return StatusBarStyle.Width(m.width).Render(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.lastErr)))
	}
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Padding(1, 2).Width(m.width)
	line := func(k, desc string) string {
		return fmt.Sprintf("  %-12s %s\n", k, desc)
	}

	s := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("MyNotes Help") + "\n\n"

	s += lipgloss.NewStyle().Bold(true).Render("Lists") + "\n"
	s += line("↑/k ↓/j", "move")
	s += line("g / G", "top / bottom")
	s += line("a", "new note or contact")
	s += line("enter", "edit")
	s += line("x / space", "check off (checkable entries)")
	s += line("d", "move to trash")
	s += line("1 2 3", "notes, contacts, trash")
	s += line("R", "reload from disk")
	s += "\n"

	s += lipgloss.NewStyle().Bold(true).Render("Editor") + "\n"
	s += line("tab", "next field")
	s += line("space", "cycle checkbox: none, unchecked, checked")
	s += line("←/→", "change color")
	s += line("ctrl+s", "save")
	s += line("ctrl+d", "move to trash")
	s += line("esc", "discard and go back")
	s += "\n"

	s += lipgloss.NewStyle().Bold(true).Render("Trash") + "\n"
	s += line("tab", "notes / contacts")
	s += line("space", "select")
	s += line("r", "restore selected (or current)")
	s += line("D", "delete selected forever")
	s += line("E", "empty trash")
	s += "\n"

	s += HelpStyle.Render("Press any key to close")
	return helpStyle.Render(s)
}
