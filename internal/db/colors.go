package db

import (
	"context"
	"fmt"
)

// ColorRecord is a row of the colors table
type ColorRecord struct {
	ID   int64
	Hex  string
	Name string
}

// AllColors returns the full color catalog ordered by id
func (db *DB) AllColors(ctx context.Context) ([]ColorRecord, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, hex, name FROM colors ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	var colors []ColorRecord
	for rows.Next() {
		var c ColorRecord
		if err := rows.Scan(&c.ID, &c.Hex, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, rows.Err()
}

// InsertColors bulk-inserts colors in a single transaction
func (db *DB) InsertColors(ctx context.Context, colors ...ColorRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range colors {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO colors (id, hex, name) VALUES (?, ?, ?)",
			nullableID(c.ID), c.Hex, c.Name,
		); err != nil {
			return fmt.Errorf("failed to insert color %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit colors: %w", err)
	}
	return nil
}
