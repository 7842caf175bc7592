// Package viewmodel holds the UI state shared by every screen: the entry
// being edited, the trash selections and the handlers the screens call.
package viewmodel

import (
	"context"

	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/observe"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/existflow/mynotes/internal/routing"
)

// Repository is the write side the view model drives
type Repository interface {
	SaveNote(ctx context.Context, note model.Note) (model.Note, error)
	DeleteNotes(ctx context.Context, ids []int64) error
	MoveNoteToTrash(ctx context.Context, id int64) error
	RestoreNotesFromTrash(ctx context.Context, ids []int64) error

	SaveContact(ctx context.Context, contact model.Contact) (model.Contact, error)
	DeleteContacts(ctx context.Context, ids []int64) error
	MoveContactToTrash(ctx context.Context, id int64) error
	RestoreContactsFromTrash(ctx context.Context, ids []int64) error

	EmptyTrash(ctx context.Context) (notes, contacts int64, err error)
}

// Snapshots are the read side: live views published by the repository
type Snapshots struct {
	NotesNotInTrash    *observe.Value[[]model.Note]
	NotesInTrash       *observe.Value[[]model.Note]
	ContactsNotInTrash *observe.Value[[]model.Contact]
	ContactsInTrash    *observe.Value[[]model.Contact]
	Colors             *observe.Value[[]model.Color]
}

// SnapshotsOf returns the snapshots published by repo
func SnapshotsOf(repo *repository.Repository) Snapshots {
	return Snapshots{
		NotesNotInTrash:    repo.NotesNotInTrash,
		NotesInTrash:       repo.NotesInTrash,
		ContactsNotInTrash: repo.ContactsNotInTrash,
		ContactsInTrash:    repo.ContactsInTrash,
		Colors:             repo.Colors,
	}
}

// ViewModel is the state behind the notes, contacts and trash screens
type ViewModel struct {
	Snapshots

	NoteEntry        *observe.Value[model.Note]
	ContactEntry     *observe.Value[model.Contact]
	SelectedNotes    *observe.Value[[]model.Note]
	SelectedContacts *observe.Value[[]model.Contact]
	LastError        *observe.Value[error]

	repo   Repository
	router *routing.Router
	loop   *Loop
	log    *logger.Logger

	newEntryColor model.Color
}

// New wires a view model to its repository, router and loop
func New(repo Repository, snapshots Snapshots, router *routing.Router, loop *Loop, log *logger.Logger) *ViewModel {
	if log == nil {
		log = logger.Nop()
	}
	return &ViewModel{
		Snapshots:        snapshots,
		NoteEntry:        observe.NewValue(model.NewNote()),
		ContactEntry:     observe.NewValue(model.NewContact()),
		SelectedNotes:    observe.NewValue([]model.Note{}),
		SelectedContacts: observe.NewValue([]model.Contact{}),
		LastError:        observe.NewValue[error](nil),
		repo:             repo,
		router:           router,
		loop:             loop,
		log:              log,
		newEntryColor:    model.DefaultColor(),
	}
}

// ForRepository builds a view model over a concrete repository
func ForRepository(repo *repository.Repository, router *routing.Router, loop *Loop, log *logger.Logger) *ViewModel {
	return New(repo, SnapshotsOf(repo), router, loop, log)
}

// Router returns the navigation state the view model drives
func (vm *ViewModel) Router() *routing.Router {
	return vm.router
}

// SetNewEntryColor sets the color given to entries created from now on
func (vm *ViewModel) SetNewEntryColor(c model.Color) {
	vm.newEntryColor = c
}

// ClearError forgets the last reported failure
func (vm *ViewModel) ClearError() {
	if vm.LastError.Get() != nil {
		vm.LastError.Post(nil)
	}
}

// run executes work in the background and, on the UI goroutine, either
// reports its failure or calls onSuccess
func (vm *ViewModel) run(action string, work func(ctx context.Context) error, onSuccess func()) {
	vm.loop.Go(work, func(err error) {
		if err != nil {
			vm.log.Error("Action failed", logger.F("action", action), logger.Err(err))
			vm.LastError.Post(err)
			return
		}
		vm.ClearError()
		if onSuccess != nil {
			onSuccess()
		}
	})
}

func (vm *ViewModel) newNote() model.Note {
	n := model.NewNote()
	n.Color = vm.newEntryColor
	return n
}

func (vm *ViewModel) newContact() model.Contact {
	c := model.NewContact()
	c.Color = vm.newEntryColor
	return c
}

// Notes

// OnCreateNewNoteClick opens the editor on a blank note
func (vm *ViewModel) OnCreateNewNoteClick() {
	vm.NoteEntry.Post(vm.newNote())
	vm.router.NavigateTo(routing.SaveNote)
}

// OnNoteClick opens the editor on note
func (vm *ViewModel) OnNoteClick(note model.Note) {
	vm.NoteEntry.Post(note)
	vm.router.NavigateTo(routing.SaveNote)
}

// OnNoteEntryChange replaces the edit buffer
func (vm *ViewModel) OnNoteEntryChange(note model.Note) {
	vm.NoteEntry.Post(note)
}

// OnNoteSelected toggles note in the trash selection
func (vm *ViewModel) OnNoteSelected(note model.Note) {
	vm.SelectedNotes.Post(toggleNote(vm.SelectedNotes.Get(), note))
}

// OnNoteCheckedChange stores a note whose checkbox was toggled
func (vm *ViewModel) OnNoteCheckedChange(note model.Note) {
	vm.run("check note", func(ctx context.Context) error {
		_, err := vm.repo.SaveNote(ctx, note)
		return err
	}, nil)
}

// SaveNote stores note, then returns to the notes list with a fresh buffer
func (vm *ViewModel) SaveNote(note model.Note) {
	vm.run("save note", func(ctx context.Context) error {
		_, err := vm.repo.SaveNote(ctx, note)
		return err
	}, func() {
		vm.router.NavigateTo(routing.Notes)
		vm.NoteEntry.Post(vm.newNote())
	})
}

// MoveNoteToTrash trashes note and returns to the notes list
func (vm *ViewModel) MoveNoteToTrash(note model.Note) {
	vm.run("trash note", func(ctx context.Context) error {
		return vm.repo.MoveNoteToTrash(ctx, note.ID)
	}, func() {
		vm.router.NavigateTo(routing.Notes)
	})
}

// RestoreNotes takes notes out of the trash and clears the selection
func (vm *ViewModel) RestoreNotes(notes []model.Note) {
	ids := noteIDs(notes)
	vm.run("restore notes", func(ctx context.Context) error {
		return vm.repo.RestoreNotesFromTrash(ctx, ids)
	}, func() {
		vm.SelectedNotes.Post([]model.Note{})
	})
}

// PermanentlyDeleteNotes deletes notes and clears the selection
func (vm *ViewModel) PermanentlyDeleteNotes(notes []model.Note) {
	ids := noteIDs(notes)
	vm.run("delete notes", func(ctx context.Context) error {
		return vm.repo.DeleteNotes(ctx, ids)
	}, func() {
		vm.SelectedNotes.Post([]model.Note{})
	})
}

// Contacts

// OnCreateNewContactClick opens the editor on a blank contact
func (vm *ViewModel) OnCreateNewContactClick() {
	vm.ContactEntry.Post(vm.newContact())
	vm.router.NavigateTo(routing.SaveContact)
}

// OnContactClick opens the editor on contact
func (vm *ViewModel) OnContactClick(contact model.Contact) {
	vm.ContactEntry.Post(contact)
	vm.router.NavigateTo(routing.SaveContact)
}

// OnContactEntryChange replaces the edit buffer
func (vm *ViewModel) OnContactEntryChange(contact model.Contact) {
	vm.ContactEntry.Post(contact)
}

// OnContactSelected toggles contact in the trash selection
func (vm *ViewModel) OnContactSelected(contact model.Contact) {
	vm.SelectedContacts.Post(toggleContact(vm.SelectedContacts.Get(), contact))
}

// OnContactCheckedChange stores a contact whose checkbox was toggled
func (vm *ViewModel) OnContactCheckedChange(contact model.Contact) {
	vm.run("check contact", func(ctx context.Context) error {
		_, err := vm.repo.SaveContact(ctx, contact)
		return err
	}, nil)
}

// SaveContact stores contact, then returns to the contacts list
func (vm *ViewModel) SaveContact(contact model.Contact) {
	vm.run("save contact", func(ctx context.Context) error {
		_, err := vm.repo.SaveContact(ctx, contact)
		return err
	}, func() {
		vm.router.NavigateTo(routing.Contacts)
		vm.ContactEntry.Post(vm.newContact())
	})
}

// MoveContactToTrash trashes contact and returns to the contacts list
func (vm *ViewModel) MoveContactToTrash(contact model.Contact) {
	vm.run("trash contact", func(ctx context.Context) error {
		return vm.repo.MoveContactToTrash(ctx, contact.ID)
	}, func() {
		vm.router.NavigateTo(routing.Contacts)
	})
}

// RestoreContacts takes contacts out of the trash and clears the selection
func (vm *ViewModel) RestoreContacts(contacts []model.Contact) {
	ids := contactIDs(contacts)
	vm.run("restore contacts", func(ctx context.Context) error {
		return vm.repo.RestoreContactsFromTrash(ctx, ids)
	}, func() {
		vm.SelectedContacts.Post([]model.Contact{})
	})
}

// PermanentlyDeleteContacts deletes contacts and clears the selection
func (vm *ViewModel) PermanentlyDeleteContacts(contacts []model.Contact) {
	ids := contactIDs(contacts)
	vm.run("delete contacts", func(ctx context.Context) error {
		return vm.repo.DeleteContacts(ctx, ids)
	}, func() {
		vm.SelectedContacts.Post([]model.Contact{})
	})
}

// EmptyTrash deletes everything in the trash and clears both selections
func (vm *ViewModel) EmptyTrash() {
	vm.run("empty trash", func(ctx context.Context) error {
		notes, contacts, err := vm.repo.EmptyTrash(ctx)
		if err == nil {
			vm.log.Info("Trash emptied", logger.F("notes", notes), logger.F("contacts", contacts))
		}
		return err
	}, func() {
		vm.SelectedNotes.Post([]model.Note{})
		vm.SelectedContacts.Post([]model.Contact{})
	})
}
