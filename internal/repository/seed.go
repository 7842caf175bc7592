package repository

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/db"
	"golang.org/x/sync/errgroup"
)

// Seed fills empty collections with the default colors, notes and contacts.
// A collection that already has rows is left alone, so Seed can run on
// every start.
func Seed(ctx context.Context, store Store) error {
	colors, err := store.AllColors(ctx)
	if err != nil {
		return fmt.Errorf("failed to read colors: %w", err)
	}
	if len(colors) == 0 {
		if err := store.InsertColors(ctx, db.DefaultColors()...); err != nil {
			return fmt.Errorf("failed to seed colors: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		notes, err := store.AllNotes(gctx)
		if err != nil {
			return fmt.Errorf("failed to read notes: %w", err)
		}
		if len(notes) > 0 {
			return nil
		}
		if err := store.InsertNotes(gctx, db.DefaultNotes()...); err != nil {
			return fmt.Errorf("failed to seed notes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		contacts, err := store.AllContacts(gctx)
		if err != nil {
			return fmt.Errorf("failed to read contacts: %w", err)
		}
		if len(contacts) > 0 {
			return nil
		}
		if err := store.InsertContacts(gctx, db.DefaultContacts()...); err != nil {
			return fmt.Errorf("failed to seed contacts: %w", err)
		}
		return nil
	})
	return g.Wait()
}
