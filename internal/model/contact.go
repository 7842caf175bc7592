package model

// NewContactID marks a contact that has not been persisted yet
const NewContactID int64 = -1

// Contact represents a phone contact with a short memo and a color tag
type Contact struct {
	ID      int64  `json:"id"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=10000"`
	Number  string `json:"number" validate:"max=32,phone"`
	// IsCheckedOff is nil when the contact can't be checked off
	IsCheckedOff *bool `json:"is_checked_off"`
	Color        Color `json:"color"`
	IsInTrash    bool  `json:"in_trash"`
}

// NewContact returns a blank contact ready to be filled in and saved
func NewContact() Contact {
	return Contact{
		ID:    NewContactID,
		Color: DefaultColor(),
	}
}

// IsNew reports whether the contact still carries the "not yet saved" id
func (c Contact) IsNew() bool {
	return c.ID == NewContactID
}

// CanBeCheckedOff reports whether the contact has a checkbox
func (c Contact) CanBeCheckedOff() bool {
	return c.IsCheckedOff != nil
}

// Checked returns the checked flag, false for contacts without a checkbox
func (c Contact) Checked() bool {
	return c.IsCheckedOff != nil && *c.IsCheckedOff
}

// WithChecked returns a copy of the contact with the given checked state
func (c Contact) WithChecked(checked bool) Contact {
	c.IsCheckedOff = Bool(checked)
	return c
}

// WithoutCheckbox returns a copy of the contact that can't be checked off
func (c Contact) WithoutCheckbox() Contact {
	c.IsCheckedOff = nil
	return c
}
