package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NoteRecord is a row of the notes table
type NoteRecord struct {
	ID              int64
	Title           string
	Content         string
	CanBeCheckedOff bool
	IsCheckedOff    bool
	ColorID         int64
	IsInTrash       bool
}

const noteColumns = "id, title, content, can_be_checked_off, is_checked_off, color_id, in_trash"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(s rowScanner) (NoteRecord, error) {
	var n NoteRecord
	err := s.Scan(&n.ID, &n.Title, &n.Content, &n.CanBeCheckedOff, &n.IsCheckedOff, &n.ColorID, &n.IsInTrash)
	return n, err
}

func (db *DB) queryNotes(ctx context.Context, query string, args ...interface{}) ([]NoteRecord, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []NoteRecord
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// AllNotes returns every note, trashed or not, ordered by id
func (db *DB) AllNotes(ctx context.Context) ([]NoteRecord, error) {
	return db.queryNotes(ctx, "SELECT "+noteColumns+" FROM notes ORDER BY id")
}

// NotesByIDs returns the notes whose id is in ids. Unknown ids are skipped.
func (db *DB) NotesByIDs(ctx context.Context, ids []int64) ([]NoteRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	in, args := inClause(ids)
	return db.queryNotes(ctx, "SELECT "+noteColumns+" FROM notes WHERE id IN "+in+" ORDER BY id", args...)
}

// FindNote returns a note by id or ErrNotFound
func (db *DB) FindNote(ctx context.Context, id int64) (NoteRecord, error) {
	row := db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return NoteRecord{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return NoteRecord{}, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return n, nil
}

// UpsertNote inserts the note or replaces the row with the same id.
// A sentinel id (<= 0) inserts a new row; the assigned id is returned.
func (db *DB) UpsertNote(ctx context.Context, n NoteRecord) (int64, error) {
	result, err := db.ExecContext(ctx,
		"INSERT OR REPLACE INTO notes ("+noteColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		nullableID(n.ID), n.Title, n.Content, n.CanBeCheckedOff, n.IsCheckedOff, n.ColorID, n.IsInTrash,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save note: %w", err)
	}
	if n.ID > 0 {
		return n.ID, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get note id: %w", err)
	}
	return id, nil
}

// InsertNotes bulk-inserts notes in a single transaction
func (db *DB) InsertNotes(ctx context.Context, notes ...NoteRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, n := range notes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO notes ("+noteColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			nullableID(n.ID), n.Title, n.Content, n.CanBeCheckedOff, n.IsCheckedOff, n.ColorID, n.IsInTrash,
		); err != nil {
			return fmt.Errorf("failed to insert note %q: %w", n.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notes: %w", err)
	}
	return nil
}

// DeleteNotes permanently removes the notes with the given ids
func (db *DB) DeleteNotes(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	in, args := inClause(ids)
	if _, err := db.ExecContext(ctx, "DELETE FROM notes WHERE id IN "+in, args...); err != nil {
		return fmt.Errorf("failed to delete notes: %w", err)
	}
	return nil
}

// DeleteTrashedNotes permanently removes every note in the trash
func (db *DB) DeleteTrashedNotes(ctx context.Context) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM notes WHERE in_trash = 1")
	if err != nil {
		return 0, fmt.Errorf("failed to empty note trash: %w", err)
	}
	return result.RowsAffected()
}
