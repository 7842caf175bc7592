package mapper

import (
	"testing"

	"github.com/existflow/mynotes/internal/db"
	"github.com/existflow/mynotes/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var work = model.Color{ID: 6, Name: "Work", Hex: "#00ACC1"}

func lookupFor(c model.Color) map[int64]db.ColorRecord {
	return map[int64]db.ColorRecord{c.ID: {ID: c.ID, Name: c.Name, Hex: c.Hex}}
}

func TestNoteRoundTrip(t *testing.T) {
	notes := []model.Note{
		{ID: 7, Title: "plain", Content: "no checkbox", Color: work},
		{ID: 8, Title: "unchecked", IsCheckedOff: model.Bool(false), Color: work},
		{ID: 9, Title: "checked", IsCheckedOff: model.Bool(true), Color: work, IsInTrash: true},
		{ID: model.NewNoteID, Title: "new", Color: model.DefaultColor()},
	}

	for _, n := range notes {
		t.Run(n.Title, func(t *testing.T) {
			got := ToDomainNote(ToStorageNote(n), lookupFor(n.Color))
			if diff := cmp.Diff(n, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContactRoundTrip(t *testing.T) {
	contacts := []model.Contact{
		{ID: 1, Title: "Alice", Number: "555-0100", Color: work},
		{ID: 2, Title: "Bob", Number: "555-0101", IsCheckedOff: model.Bool(true), Color: work, IsInTrash: true},
	}

	for _, c := range contacts {
		got := ToDomainContact(ToStorageContact(c), lookupFor(c.Color))
		if diff := cmp.Diff(c, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestMissingColorFallsBackToDefault(t *testing.T) {
	note := ToDomainNote(db.NoteRecord{ID: 1, ColorID: 77}, lookupFor(work))
	assert.Equal(t, model.DefaultColor(), note.Color)

	contact := ToDomainContact(db.ContactRecord{ID: 1, ColorID: 77}, nil)
	assert.Equal(t, model.DefaultColor(), contact.Color)
}

func TestCheckedFlagMapping(t *testing.T) {
	notCheckable := ToDomainNote(db.NoteRecord{CanBeCheckedOff: false, IsCheckedOff: true}, nil)
	assert.Nil(t, notCheckable.IsCheckedOff, "not checkable is nil, never false")

	checkable := ToDomainNote(db.NoteRecord{CanBeCheckedOff: true, IsCheckedOff: false}, nil)
	require.NotNil(t, checkable.IsCheckedOff)
	assert.False(t, *checkable.IsCheckedOff)

	rec := ToStorageNote(model.Note{})
	assert.False(t, rec.CanBeCheckedOff)
	assert.False(t, rec.IsCheckedOff)
}

func TestColors(t *testing.T) {
	recs := db.DefaultColors()
	byID := ColorsByID(recs)
	assert.Len(t, byID, len(recs))
	assert.Equal(t, "Gray", byID[14].Name)

	colors := ToDomainColors(recs)
	require.Len(t, colors, 14)
	assert.Equal(t, model.DefaultColor(), colors[0])
}

func TestListConversionsPreserveOrder(t *testing.T) {
	byID := ColorsByID(db.DefaultColors())

	notes := ToDomainNotes(db.DefaultNotes(), byID)
	require.Len(t, notes, 4)
	for i, n := range notes {
		assert.Equal(t, int64(i+1), n.ID)
		assert.Equal(t, int64(i+1), n.Color.ID)
	}

	contacts := ToDomainContacts(nil, byID)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}
