// Package routing holds the navigation state of a UI session.
package routing

import "github.com/existflow/mynotes/internal/observe"

// Screen identifies one of the application's screens
type Screen int

const (
	Notes Screen = iota
	SaveNote
	Trash
	Contacts
	SaveContact
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case Notes:
		return "notes"
	case SaveNote:
		return "save-note"
	case Trash:
		return "trash"
	case Contacts:
		return "contacts"
	case SaveContact:
		return "save-contact"
	default:
		return "unknown"
	}
}

// ParseScreen returns the screen with the given name
func ParseScreen(name string) (Screen, bool) {
	for _, s := range All() {
		if s.String() == name {
			return s, true
		}
	}
	return Notes, false
}

// All lists every screen in display order
func All() []Screen {
	return []Screen{Notes, SaveNote, Trash, Contacts, SaveContact}
}

// Router is the current-screen state owned by the UI composition root
type Router struct {
	screen *observe.Value[Screen]
}

// New creates a router showing start
func New(start Screen) *Router {
	return &Router{screen: observe.NewValue(start)}
}

// NavigateTo switches the current screen
func (r *Router) NavigateTo(s Screen) {
	r.screen.Post(s)
}

// Current returns the screen being shown
func (r *Router) Current() Screen {
	return r.screen.Get()
}

// Screen exposes the observable current screen
func (r *Router) Screen() *observe.Value[Screen] {
	return r.screen
}
