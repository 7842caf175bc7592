package repository

import (
	"context"

	"github.com/existflow/mynotes/internal/db"
)

// Store is the persistence surface the repository needs. *db.DB satisfies it.
type Store interface {
	AllColors(ctx context.Context) ([]db.ColorRecord, error)
	InsertColors(ctx context.Context, colors ...db.ColorRecord) error

	AllNotes(ctx context.Context) ([]db.NoteRecord, error)
	NotesByIDs(ctx context.Context, ids []int64) ([]db.NoteRecord, error)
	FindNote(ctx context.Context, id int64) (db.NoteRecord, error)
	UpsertNote(ctx context.Context, n db.NoteRecord) (int64, error)
	InsertNotes(ctx context.Context, notes ...db.NoteRecord) error
	DeleteNotes(ctx context.Context, ids []int64) error
	DeleteTrashedNotes(ctx context.Context) (int64, error)

	AllContacts(ctx context.Context) ([]db.ContactRecord, error)
	ContactsByIDs(ctx context.Context, ids []int64) ([]db.ContactRecord, error)
	FindContact(ctx context.Context, id int64) (db.ContactRecord, error)
	UpsertContact(ctx context.Context, c db.ContactRecord) (int64, error)
	InsertContacts(ctx context.Context, contacts ...db.ContactRecord) error
	DeleteContacts(ctx context.Context, ids []int64) error
	DeleteTrashedContacts(ctx context.Context) (int64, error)
}

var _ Store = (*db.DB)(nil)
