package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ContactRecord is a row of the contacts table
type ContactRecord struct {
	ID              int64
	Title           string
	Content         string
	Number          string
	CanBeCheckedOff bool
	IsCheckedOff    bool
	ColorID         int64
	IsInTrash       bool
}

const contactColumns = "id, title, content, number, can_be_checked_off, is_checked_off, color_id, in_trash"

func scanContact(s rowScanner) (ContactRecord, error) {
	var c ContactRecord
	err := s.Scan(&c.ID, &c.Title, &c.Content, &c.Number, &c.CanBeCheckedOff, &c.IsCheckedOff, &c.ColorID, &c.IsInTrash)
	return c, err
}

func (db *DB) queryContacts(ctx context.Context, query string, args ...interface{}) ([]ContactRecord, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []ContactRecord
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// AllContacts returns every contact, trashed or not, ordered by id
func (db *DB) AllContacts(ctx context.Context) ([]ContactRecord, error) {
	return db.queryContacts(ctx, "SELECT "+contactColumns+" FROM contacts ORDER BY id")
}

// ContactsByIDs returns the contacts whose id is in ids. Unknown ids are skipped.
func (db *DB) ContactsByIDs(ctx context.Context, ids []int64) ([]ContactRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	in, args := inClause(ids)
	return db.queryContacts(ctx, "SELECT "+contactColumns+" FROM contacts WHERE id IN "+in+" ORDER BY id", args...)
}

// FindContact returns a contact by id or ErrNotFound
func (db *DB) FindContact(ctx context.Context, id int64) (ContactRecord, error) {
	row := db.QueryRowContext(ctx, "SELECT "+contactColumns+" FROM contacts WHERE id = ?", id)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ContactRecord{}, fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return ContactRecord{}, fmt.Errorf("failed to get contact %d: %w", id, err)
	}
	return c, nil
}

// UpsertContact inserts the contact or replaces the row with the same id.
// A sentinel id (<= 0) inserts a new row; the assigned id is returned.
func (db *DB) UpsertContact(ctx context.Context, c ContactRecord) (int64, error) {
	result, err := db.ExecContext(ctx,
		"INSERT OR REPLACE INTO contacts ("+contactColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		nullableID(c.ID), c.Title, c.Content, c.Number, c.CanBeCheckedOff, c.IsCheckedOff, c.ColorID, c.IsInTrash,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save contact: %w", err)
	}
	if c.ID > 0 {
		return c.ID, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get contact id: %w", err)
	}
	return id, nil
}

// InsertContacts bulk-inserts contacts in a single transaction
func (db *DB) InsertContacts(ctx context.Context, contacts ...ContactRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range contacts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO contacts ("+contactColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			nullableID(c.ID), c.Title, c.Content, c.Number, c.CanBeCheckedOff, c.IsCheckedOff, c.ColorID, c.IsInTrash,
		); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", c.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contacts: %w", err)
	}
	return nil
}

// DeleteContacts permanently removes the contacts with the given ids
func (db *DB) DeleteContacts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	in, args := inClause(ids)
	if _, err := db.ExecContext(ctx, "DELETE FROM contacts WHERE id IN "+in, args...); err != nil {
		return fmt.Errorf("failed to delete contacts: %w", err)
	}
	return nil
}

// DeleteTrashedContacts permanently removes every contact in the trash
func (db *DB) DeleteTrashedContacts(ctx context.Context) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM contacts WHERE in_trash = 1")
	if err != nil {
		return 0, fmt.Errorf("failed to empty contact trash: %w", err)
	}
	return result.RowsAffected()
}
