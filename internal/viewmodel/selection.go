package viewmodel

import "github.com/existflow/mynotes/internal/model"

// toggleNote adds note to selected, or removes the entry with the same id
func toggleNote(selected []model.Note, note model.Note) []model.Note {
	out := make([]model.Note, 0, len(selected)+1)
	removed := false
	for _, n := range selected {
		if n.ID == note.ID {
			removed = true
			continue
		}
		out = append(out, n)
	}
	if !removed {
		out = append(out, note)
	}
	return out
}

func toggleContact(selected []model.Contact, contact model.Contact) []model.Contact {
	out := make([]model.Contact, 0, len(selected)+1)
	removed := false
	for _, c := range selected {
		if c.ID == contact.ID {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if !removed {
		out = append(out, contact)
	}
	return out
}

func noteIDs(notes []model.Note) []int64 {
	ids := make([]int64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func contactIDs(contacts []model.Contact) []int64 {
	ids := make([]int64, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}
	return ids
}

// IsNoteSelected reports whether a note with id is in selected
func IsNoteSelected(selected []model.Note, id int64) bool {
	for _, n := range selected {
		if n.ID == id {
			return true
		}
	}
	return false
}

// IsContactSelected reports whether a contact with id is in selected
func IsContactSelected(selected []model.Contact, id int64) bool {
	for _, c := range selected {
		if c.ID == id {
			return true
		}
	}
	return false
}
