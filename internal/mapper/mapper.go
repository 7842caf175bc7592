// Package mapper translates between storage records and domain models.
// A color id missing from the lookup resolves to the default color.
package mapper

import (
	"github.com/existflow/mynotes/internal/db"
	"github.com/existflow/mynotes/internal/model"
)

// ToDomainColor converts a color row
func ToDomainColor(rec db.ColorRecord) model.Color {
	return model.Color{ID: rec.ID, Name: rec.Name, Hex: rec.Hex}
}

// ToDomainColors converts a list of color rows
func ToDomainColors(recs []db.ColorRecord) []model.Color {
	colors := make([]model.Color, 0, len(recs))
	for _, rec := range recs {
		colors = append(colors, ToDomainColor(rec))
	}
	return colors
}

// ColorsByID indexes color rows by id
func ColorsByID(recs []db.ColorRecord) map[int64]db.ColorRecord {
	byID := make(map[int64]db.ColorRecord, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}
	return byID
}

func resolveColor(id int64, colors map[int64]db.ColorRecord) model.Color {
	if rec, ok := colors[id]; ok {
		return ToDomainColor(rec)
	}
	return model.DefaultColor()
}

func checkedFlag(canBeCheckedOff, isCheckedOff bool) *bool {
	if !canBeCheckedOff {
		return nil
	}
	return model.Bool(isCheckedOff)
}

// ToDomainNote converts a note row, resolving its color through colors
func ToDomainNote(rec db.NoteRecord, colors map[int64]db.ColorRecord) model.Note {
	return model.Note{
		ID:           rec.ID,
		Title:        rec.Title,
		Content:      rec.Content,
		IsCheckedOff: checkedFlag(rec.CanBeCheckedOff, rec.IsCheckedOff),
		Color:        resolveColor(rec.ColorID, colors),
		IsInTrash:    rec.IsInTrash,
	}
}

// ToDomainNotes converts a list of note rows
func ToDomainNotes(recs []db.NoteRecord, colors map[int64]db.ColorRecord) []model.Note {
	notes := make([]model.Note, 0, len(recs))
	for _, rec := range recs {
		notes = append(notes, ToDomainNote(rec, colors))
	}
	return notes
}

// ToStorageNote converts a note back to its row form
func ToStorageNote(n model.Note) db.NoteRecord {
	return db.NoteRecord{
		ID:              n.ID,
		Title:           n.Title,
		Content:         n.Content,
		CanBeCheckedOff: n.CanBeCheckedOff(),
		IsCheckedOff:    n.Checked(),
		ColorID:         n.Color.ID,
		IsInTrash:       n.IsInTrash,
	}
}

// ToDomainContact converts a contact row, resolving its color through colors
func ToDomainContact(rec db.ContactRecord, colors map[int64]db.ColorRecord) model.Contact {
	return model.Contact{
		ID:           rec.ID,
		Title:        rec.Title,
		Content:      rec.Content,
		Number:       rec.Number,
		IsCheckedOff: checkedFlag(rec.CanBeCheckedOff, rec.IsCheckedOff),
		Color:        resolveColor(rec.ColorID, colors),
		IsInTrash:    rec.IsInTrash,
	}
}

// ToDomainContacts converts a list of contact rows
func ToDomainContacts(recs []db.ContactRecord, colors map[int64]db.ColorRecord) []model.Contact {
	contacts := make([]model.Contact, 0, len(recs))
	for _, rec := range recs {
		contacts = append(contacts, ToDomainContact(rec, colors))
	}
	return contacts
}

// ToStorageContact converts a contact back to its row form
func ToStorageContact(c model.Contact) db.ContactRecord {
	return db.ContactRecord{
		ID:              c.ID,
		Title:           c.Title,
		Content:         c.Content,
		Number:          c.Number,
		CanBeCheckedOff: c.CanBeCheckedOff(),
		IsCheckedOff:    c.Checked(),
		ColorID:         c.Color.ID,
		IsInTrash:       c.IsInTrash,
	}
}
