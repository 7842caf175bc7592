package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/routing"
)

// refreshMsg is sent when the view model published new state
type refreshMsg struct{}

// loopMsg is sent when background work queued continuations
type loopMsg struct{}

// Init starts listening for view model changes and finished work
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForRefresh(), m.waitForLoop())
}

// waitForRefresh listens for view model change signals
func (m Model) waitForRefresh() tea.Cmd {
	if m.refreshChan == nil {
		return nil
	}
	return func() tea.Msg {
		<-m.refreshChan
		return refreshMsg{}
	}
}

// waitForLoop listens for continuations queued by background work
func (m Model) waitForLoop() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	return func() tea.Msg {
		<-m.loop.Ready()
		return loopMsg{}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.syncFromViewModel()
		return m, m.waitForRefresh()

	case loopMsg:
		m.loop.RunPending()
		m.syncFromViewModel()
		if m.lastErr != nil {
			m.message = fmt.Sprintf("Error: %v", m.lastErr)
		}
		return m, m.waitForLoop()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}

		switch m.screen {
		case routing.SaveNote, routing.SaveContact:
			return m.updateEditor(msg)
		case routing.Trash:
			return m.updateTrash(msg)
		case routing.Contacts:
			return m.updateContacts(msg)
		default:
			return m.updateNotes(msg)
		}
	}

	return m, nil
}

// handleGlobalKeys handles keys shared by the list screens. The second
// result reports whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
		return m, nil, true

	case key.Matches(msg, keys.Notes):
		m.navigate(routing.Notes)
		return m, nil, true

	case key.Matches(msg, keys.Contacts):
		m.navigate(routing.Contacts)
		return m, nil, true

	case key.Matches(msg, keys.TrashBin):
		m.navigate(routing.Trash)
		return m, nil, true

	case key.Matches(msg, keys.Refresh):
		m.handleRefresh()
		return m, nil, true
	}
	return m, nil, false
}

func (m *Model) navigate(s routing.Screen) {
	m.message = ""
	m.vm.ClearError()
	m.vm.Router().NavigateTo(s)
	m.syncFromViewModel()
}

func (m *Model) handleRefresh() {
	if m.refresh == nil {
		return
	}
	m.message = "Reloading..."
	log := m.log
	m.loop.Go(m.refresh, func(err error) {
		if err != nil {
			log.Error("Reload failed", logger.Err(err))
		}
	})
}

// Notes screen

func (m Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleGlobalKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.noteCursor > 0 {
			m.noteCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.noteCursor < len(m.notes)-1 {
			m.noteCursor++
		}

	case msg.String() == "G":
		m.noteCursor = max(len(m.notes)-1, 0)

	case msg.String() == "g":
		m.noteCursor = 0

	case key.Matches(msg, keys.Add):
		m.vm.OnCreateNewNoteClick()
		m.syncFromViewModel()
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if note := m.currentNote(); note != nil {
			m.vm.OnNoteClick(*note)
			m.syncFromViewModel()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Check), key.Matches(msg, keys.Select):
		if note := m.currentNote(); note != nil {
			if !note.CanBeCheckedOff() {
				m.message = "This note has no checkbox"
				break
			}
			m.vm.OnNoteCheckedChange(note.WithChecked(!note.Checked()))
		}

	case key.Matches(msg, keys.Trash):
		if note := m.currentNote(); note != nil {
			m.vm.MoveNoteToTrash(*note)
			m.message = fmt.Sprintf("Moved to trash: %s", note.Title)
		}
	}

	return m, nil
}

// Contacts screen

func (m Model) updateContacts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleGlobalKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.contactCursor > 0 {
			m.contactCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.contactCursor < len(m.contacts)-1 {
			m.contactCursor++
		}

	case msg.String() == "G":
		m.contactCursor = max(len(m.contacts)-1, 0)

	case msg.String() == "g":
		m.contactCursor = 0

	case key.Matches(msg, keys.Add):
		m.vm.OnCreateNewContactClick()
		m.syncFromViewModel()
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if contact := m.currentContact(); contact != nil {
			m.vm.OnContactClick(*contact)
			m.syncFromViewModel()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Check), key.Matches(msg, keys.Select):
		if contact := m.currentContact(); contact != nil {
			if !contact.CanBeCheckedOff() {
				m.message = "This contact has no checkbox"
				break
			}
			m.vm.OnContactCheckedChange(contact.WithChecked(!contact.Checked()))
		}

	case key.Matches(msg, keys.Trash):
		if contact := m.currentContact(); contact != nil {
			m.vm.MoveContactToTrash(*contact)
			m.message = fmt.Sprintf("Moved to trash: %s", contact.Title)
		}
	}

	return m, nil
}

// Trash screen

func (m Model) updateTrash(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Escape) {
		m.navigate(routing.Notes)
		return m, nil
	}
	if next, cmd, ok := m.handleGlobalKeys(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		if m.pane == PaneNotes {
			m.pane = PaneContacts
		} else {
			m.pane = PaneNotes
		}
		m.trashCursor = 0

	case key.Matches(msg, keys.Up):
		if m.trashCursor > 0 {
			m.trashCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.trashCursor < m.trashLen()-1 {
			m.trashCursor++
		}

	case key.Matches(msg, keys.Select), key.Matches(msg, keys.Enter):
		m.toggleTrashSelection()

	case key.Matches(msg, keys.Restore):
		m.restoreSelection()

	case key.Matches(msg, keys.Delete):
		return m.confirm(m.deletePrompt(), m.deleteSelection), nil

	case key.Matches(msg, keys.Empty):
		if len(m.trashedNotes)+len(m.trashedContacts) == 0 {
			m.message = "Trash is already empty"
			break
		}
		prompt := fmt.Sprintf("Permanently delete %d notes and %d contacts?", len(m.trashedNotes), len(m.trashedContacts))
		return m.confirm(prompt, m.vm.EmptyTrash), nil
	}

	return m, nil
}

func (m *Model) toggleTrashSelection() {
	if m.pane == PaneContacts {
		if m.trashCursor < len(m.trashedContacts) {
			m.vm.OnContactSelected(m.trashedContacts[m.trashCursor])
		}
	} else if m.trashCursor < len(m.trashedNotes) {
		m.vm.OnNoteSelected(m.trashedNotes[m.trashCursor])
	}
	m.syncFromViewModel()
}

// selectionOrCursor returns the selected items of the focused pane, or the
// item under the cursor when nothing is selected
func (m *Model) selectionOrCursor() ([]model.Note, []model.Contact) {
	if m.pane == PaneContacts {
		if len(m.selectedContact) > 0 {
			return nil, m.selectedContact
		}
		if m.trashCursor < len(m.trashedContacts) {
			return nil, []model.Contact{m.trashedContacts[m.trashCursor]}
		}
		return nil, nil
	}
	if len(m.selectedNotes) > 0 {
		return m.selectedNotes, nil
	}
	if m.trashCursor < len(m.trashedNotes) {
		return []model.Note{m.trashedNotes[m.trashCursor]}, nil
	}
	return nil, nil
}

func (m *Model) restoreSelection() {
	notes, contacts := m.selectionOrCursor()
	switch {
	case len(notes) > 0:
		m.vm.RestoreNotes(notes)
		m.message = fmt.Sprintf("Restored %d notes", len(notes))
	case len(contacts) > 0:
		m.vm.RestoreContacts(contacts)
		m.message = fmt.Sprintf("Restored %d contacts", len(contacts))
	}
}

func (m *Model) deletePrompt() string {
	notes, contacts := m.selectionOrCursor()
	if len(contacts) > 0 {
		return fmt.Sprintf("Permanently delete %d contacts?", len(contacts))
	}
	return fmt.Sprintf("Permanently delete %d notes?", len(notes))
}

func (m *Model) deleteSelection() {
	notes, contacts := m.selectionOrCursor()
	switch {
	case len(notes) > 0:
		m.vm.PermanentlyDeleteNotes(notes)
	case len(contacts) > 0:
		m.vm.PermanentlyDeleteContacts(contacts)
	}
}

// confirm runs action now, or asks first when deletes need confirmation
func (m Model) confirm(prompt string, action func()) Model {
	if !m.confirmDelete {
		action()
		return m
	}
	m.mode = ModeConfirm
	m.confirmPrompt = prompt
	m.confirmAction = action
	return m
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Yes) && m.confirmAction != nil {
		m.confirmAction()
	} else {
		m.message = "Cancelled"
	}
	m.mode = ModeNormal
	m.confirmPrompt = ""
	m.confirmAction = nil
	return m, nil
}

// Editor screens

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	backTo := routing.Notes
	if m.screen == routing.SaveContact {
		backTo = routing.Contacts
	}

	switch {
	case key.Matches(msg, keys.Escape):
		m.navigate(backTo)
		return m, nil

	case key.Matches(msg, keys.Save):
		m.saveEditor()
		return m, nil

	case msg.String() == "ctrl+d":
		m.trashEditor()
		return m, nil

	case key.Matches(msg, keys.Tab):
		m.cycleField(1)
		return m, textinput.Blink

	case key.Matches(msg, keys.ShiftTab):
		m.cycleField(-1)
		return m, textinput.Blink
	}

	switch m.field {
	case FieldCheckbox:
		switch {
		case key.Matches(msg, keys.Select), key.Matches(msg, keys.Enter):
			switch {
			case !m.checkable:
				m.checkable, m.checked = true, false
			case !m.checked:
				m.checked = true
			default:
				m.checkable, m.checked = false, false
			}
			m.pushEntry()
		}
		return m, nil

	case FieldColor:
		if len(m.colors) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
			m.colorCursor = (m.colorCursor - 1 + len(m.colors)) % len(m.colors)
			m.pushEntry()
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
			m.colorCursor = (m.colorCursor + 1) % len(m.colors)
			m.pushEntry()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.field {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldContent:
		m.content, cmd = m.content.Update(msg)
	case FieldNumber:
		m.number, cmd = m.number.Update(msg)
	}
	m.pushEntry()
	return m, cmd
}

func (m *Model) cycleField(step int) {
	fields := m.editorFields()
	idx := 0
	for i, f := range fields {
		if f == m.field {
			idx = i
		}
	}
	idx = (idx + step + len(fields)) % len(fields)
	m.focusField(fields[idx])
}

// pushEntry hands the edited values to the view model's entry buffer
func (m *Model) pushEntry() {
	if m.screen == routing.SaveContact {
		m.vm.OnContactEntryChange(m.editedContact())
		return
	}
	m.vm.OnNoteEntryChange(m.editedNote())
}

func (m *Model) saveEditor() {
	if m.title.Value() == "" {
		m.message = "Title is required"
		return
	}
	if m.screen == routing.SaveContact {
		contact := m.editedContact()
		m.vm.SaveContact(contact)
		m.message = fmt.Sprintf("Saved: %s", contact.Title)
		return
	}
	note := m.editedNote()
	m.vm.SaveNote(note)
	m.message = fmt.Sprintf("Saved: %s", note.Title)
}

func (m *Model) trashEditor() {
	if m.screen == routing.SaveContact {
		contact := m.editedContact()
		if contact.IsNew() {
			m.message = "Contact isn't saved yet"
			return
		}
		m.vm.MoveContactToTrash(contact)
		m.message = fmt.Sprintf("Moved to trash: %s", contact.Title)
		return
	}
	note := m.editedNote()
	if note.IsNew() {
		m.message = "Note isn't saved yet"
		return
	}
	m.vm.MoveNoteToTrash(note)
	m.message = fmt.Sprintf("Moved to trash: %s", note.Title)
}

// Run starts the program and waits for in-flight writes before returning
func Run(m Model, opts ...tea.ProgramOption) error {
	defer m.Close()
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	m.loop.Drain()
	return err
}
