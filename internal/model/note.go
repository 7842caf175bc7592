package model

// NewNoteID marks a note that has not been persisted yet
const NewNoteID int64 = 0

// Note represents a single note with its resolved color
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=10000"`
	// IsCheckedOff is nil when the note can't be checked off
	IsCheckedOff *bool `json:"is_checked_off"`
	Color        Color `json:"color"`
	IsInTrash    bool  `json:"in_trash"`
}

// NewNote returns a blank note ready to be filled in and saved
func NewNote() Note {
	return Note{
		ID:    NewNoteID,
		Color: DefaultColor(),
	}
}

// IsNew reports whether the note still carries the "not yet saved" id
func (n Note) IsNew() bool {
	return n.ID == NewNoteID
}

// CanBeCheckedOff reports whether the note has a checkbox
func (n Note) CanBeCheckedOff() bool {
	return n.IsCheckedOff != nil
}

// Checked returns the checked flag, false for notes without a checkbox
func (n Note) Checked() bool {
	return n.IsCheckedOff != nil && *n.IsCheckedOff
}

// WithChecked returns a copy of the note with the given checked state
func (n Note) WithChecked(checked bool) Note {
	n.IsCheckedOff = Bool(checked)
	return n
}

// WithoutCheckbox returns a copy of the note that can't be checked off
func (n Note) WithoutCheckbox() Note {
	n.IsCheckedOff = nil
	return n
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}
