package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/routing"
	"github.com/existflow/mynotes/internal/viewmodel"
	"github.com/google/uuid"
)

// Pane represents which list is focused on the trash screen
type Pane int

const (
	PaneNotes Pane = iota
	PaneContacts
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
	ModeHelp
)

// Field is the focused input of an editor screen
type Field int

const (
	FieldTitle Field = iota
	FieldContent
	FieldNumber
	FieldCheckbox
	FieldColor
)

// Options configure a Model
type Options struct {
	ConfirmDelete bool
	// Refresh rereads the store, bound to the refresh key
	Refresh func(ctx context.Context) error
	Log     *logger.Logger
}

// Model is the main TUI model
type Model struct {
	vm   *viewmodel.ViewModel
	loop *viewmodel.Loop
	log  *logger.Logger

	refresh       func(ctx context.Context) error
	confirmDelete bool

	// Signalled by view model subscriptions, drained by waitForRefresh
	refreshChan chan struct{}
	unsubscribe []func()

	// Copies of the view model state, taken in syncFromViewModel
	screen          routing.Screen
	notes           []model.Note
	contacts        []model.Contact
	trashedNotes    []model.Note
	trashedContacts []model.Contact
	selectedNotes   []model.Note
	selectedContact []model.Contact
	colors          []model.Color
	lastErr         error

	// UI state
	width         int
	height        int
	mode          Mode
	pane          Pane
	noteCursor    int
	contactCursor int
	trashCursor   int

	// Editor
	field       Field
	title       textinput.Model
	content     textinput.Model
	number      textinput.Model
	checkable   bool
	checked     bool
	colorCursor int
	editingID   int64

	confirmPrompt string
	confirmAction func()

	message string
}

// NewModel creates a new TUI model bound to vm
func NewModel(vm *viewmodel.ViewModel, loop *viewmodel.Loop, opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithFields(logger.F("session", uuid.NewString()))
	log.Info("Initializing TUI model")

	m := Model{
		vm:            vm,
		loop:          loop,
		log:           log,
		refresh:       opts.Refresh,
		confirmDelete: opts.ConfirmDelete,
		refreshChan:   make(chan struct{}, 1), // Buffered to avoid blocking
		title:         newInput("Title", 128),
		content:       newInput("Content", 1024),
		number:        newInput("Phone number", 32),
	}

	refreshChan := m.refreshChan
	signal := func() {
		// Non-blocking send to trigger UI refresh
		select {
		case refreshChan <- struct{}{}:
		default:
		}
	}
	m.unsubscribe = []func(){
		vm.NotesNotInTrash.Subscribe(func([]model.Note) { signal() }),
		vm.NotesInTrash.Subscribe(func([]model.Note) { signal() }),
		vm.ContactsNotInTrash.Subscribe(func([]model.Contact) { signal() }),
		vm.ContactsInTrash.Subscribe(func([]model.Contact) { signal() }),
		vm.Colors.Subscribe(func([]model.Color) { signal() }),
		vm.Router().Screen().Subscribe(func(routing.Screen) { signal() }),
	}

	m.screen = vm.Router().Current()
	m.syncFromViewModel()
	if isEditor(m.screen) {
		m.loadEditor()
	}

	log.Debug("TUI model initialized",
		logger.F("notes", len(m.notes)),
		logger.F("contacts", len(m.contacts)))
	return m
}

// Close drops the view model subscriptions
func (m Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 50
	return ti
}

func isEditor(s routing.Screen) bool {
	return s == routing.SaveNote || s == routing.SaveContact
}

// syncFromViewModel copies the latest view model state and reacts to
// screen changes
func (m *Model) syncFromViewModel() {
	m.notes = m.vm.NotesNotInTrash.Get()
	m.contacts = m.vm.ContactsNotInTrash.Get()
	m.trashedNotes = m.vm.NotesInTrash.Get()
	m.trashedContacts = m.vm.ContactsInTrash.Get()
	m.selectedNotes = m.vm.SelectedNotes.Get()
	m.selectedContact = m.vm.SelectedContacts.Get()
	m.colors = m.vm.Colors.Get()
	m.lastErr = m.vm.LastError.Get()

	m.noteCursor = clamp(m.noteCursor, len(m.notes))
	m.contactCursor = clamp(m.contactCursor, len(m.contacts))
	m.trashCursor = clamp(m.trashCursor, m.trashLen())

	screen := m.vm.Router().Current()
	if screen != m.screen {
		m.log.Debug("Screen changed", logger.F("from", m.screen.String()), logger.F("to", screen.String()))
		m.screen = screen
		if isEditor(screen) {
			m.loadEditor()
		}
	}
}

func (m *Model) trashLen() int {
	if m.pane == PaneContacts {
		return len(m.trashedContacts)
	}
	return len(m.trashedNotes)
}

func (m *Model) currentNote() *model.Note {
	if m.noteCursor < len(m.notes) {
		return &m.notes[m.noteCursor]
	}
	return nil
}

func (m *Model) currentContact() *model.Contact {
	if m.contactCursor < len(m.contacts) {
		return &m.contacts[m.contactCursor]
	}
	return nil
}

// loadEditor fills the editor inputs from the view model's entry
func (m *Model) loadEditor() {
	var (
		title, content, number string
		checked                *bool
		color                  model.Color
	)
	switch m.screen {
	case routing.SaveNote:
		n := m.vm.NoteEntry.Get()
		title, content, checked, color = n.Title, n.Content, n.IsCheckedOff, n.Color
		m.editingID = n.ID
	case routing.SaveContact:
		c := m.vm.ContactEntry.Get()
		title, content, number, checked, color = c.Title, c.Content, c.Number, c.IsCheckedOff, c.Color
		m.editingID = c.ID
	default:
		return
	}

	m.title.SetValue(title)
	m.content.SetValue(content)
	m.number.SetValue(number)
	m.checkable = checked != nil
	m.checked = checked != nil && *checked
	m.colorCursor = 0
	for i, c := range m.colors {
		if c.ID == color.ID {
			m.colorCursor = i
		}
	}
	m.focusField(FieldTitle)
}

func (m *Model) selectedColor() model.Color {
	if m.colorCursor < len(m.colors) {
		return m.colors[m.colorCursor]
	}
	return model.DefaultColor()
}

func (m *Model) checkedFlag() *bool {
	if !m.checkable {
		return nil
	}
	return model.Bool(m.checked)
}

// editedNote builds a note from the editor inputs
func (m *Model) editedNote() model.Note {
	n := m.vm.NoteEntry.Get()
	n.Title = m.title.Value()
	n.Content = m.content.Value()
	n.IsCheckedOff = m.checkedFlag()
	n.Color = m.selectedColor()
	return n
}

// editedContact builds a contact from the editor inputs
func (m *Model) editedContact() model.Contact {
	c := m.vm.ContactEntry.Get()
	c.Title = m.title.Value()
	c.Content = m.content.Value()
	c.Number = m.number.Value()
	c.IsCheckedOff = m.checkedFlag()
	c.Color = m.selectedColor()
	return c
}

// editorFields lists the inputs of the current editor in tab order
func (m *Model) editorFields() []Field {
	if m.screen == routing.SaveContact {
		return []Field{FieldTitle, FieldNumber, FieldContent, FieldCheckbox, FieldColor}
	}
	return []Field{FieldTitle, FieldContent, FieldCheckbox, FieldColor}
}

func (m *Model) focusField(f Field) {
	m.field = f
	m.title.Blur()
	m.content.Blur()
	m.number.Blur()
	switch f {
	case FieldTitle:
		m.title.Focus()
	case FieldContent:
		m.content.Focus()
	case FieldNumber:
		m.number.Focus()
	}
}
