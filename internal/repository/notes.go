package repository

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/mapper"
	"github.com/existflow/mynotes/internal/model"
)

// Notes returns the notes in the given trash partition
func (r *Repository) Notes(ctx context.Context, inTrash bool) ([]model.Note, error) {
	recs, err := r.store.AllNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	colors, err := r.colorLookup(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]model.Note, 0, len(recs))
	for _, rec := range recs {
		if rec.IsInTrash == inTrash {
			notes = append(notes, mapper.ToDomainNote(rec, colors))
		}
	}
	return notes, nil
}

// Note returns a single note by id
func (r *Repository) Note(ctx context.Context, id int64) (model.Note, error) {
	rec, err := r.store.FindNote(ctx, id)
	if err != nil {
		return model.Note{}, err
	}
	colors, err := r.colorLookup(ctx)
	if err != nil {
		return model.Note{}, err
	}
	return mapper.ToDomainNote(rec, colors), nil
}

func (r *Repository) publishNotes(ctx context.Context) error {
	r.notesMu.Lock()
	defer r.notesMu.Unlock()

	active, err := r.Notes(ctx, false)
	if err != nil {
		return err
	}
	trashed, err := r.Notes(ctx, true)
	if err != nil {
		return err
	}

	r.NotesNotInTrash.Post(active)
	r.NotesInTrash.Post(trashed)
	return nil
}

// SaveNote inserts a new note or replaces an existing one and returns it
// with its stored id
func (r *Repository) SaveNote(ctx context.Context, note model.Note) (model.Note, error) {
	id, err := r.store.UpsertNote(ctx, mapper.ToStorageNote(note))
	if err != nil {
		return model.Note{}, err
	}
	note.ID = id
	r.log.Debug("Note saved", logger.F("id", id))

	if err := r.publishNotes(ctx); err != nil {
		return note, err
	}
	return note, nil
}

// DeleteNotes permanently removes the notes with the given ids
func (r *Repository) DeleteNotes(ctx context.Context, ids []int64) error {
	if err := r.store.DeleteNotes(ctx, ids); err != nil {
		return err
	}
	r.log.Debug("Notes deleted", logger.F("ids", ids))
	return r.publishNotes(ctx)
}

// MoveNoteToTrash soft-deletes a note
func (r *Repository) MoveNoteToTrash(ctx context.Context, id int64) error {
	rec, err := r.store.FindNote(ctx, id)
	if err != nil {
		return err
	}
	rec.IsInTrash = true
	if _, err := r.store.UpsertNote(ctx, rec); err != nil {
		return err
	}
	r.log.Debug("Note moved to trash", logger.F("id", id))
	return r.publishNotes(ctx)
}

// RestoreNotesFromTrash moves the given notes out of the trash. Ids that
// don't exist are reported through an ErrNotFound error after the others
// have been restored.
func (r *Repository) RestoreNotesFromTrash(ctx context.Context, ids []int64) error {
	recs, err := r.store.NotesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[int64]bool, len(recs))
	for _, rec := range recs {
		found[rec.ID] = true
		rec.IsInTrash = false
		if _, err := r.store.UpsertNote(ctx, rec); err != nil {
			// Rows restored before the failure stay restored
			if pubErr := r.publishNotes(ctx); pubErr != nil {
				r.log.Warn("Failed to republish notes", logger.Err(pubErr))
			}
			return err
		}
	}
	r.log.Debug("Notes restored", logger.F("count", len(recs)))

	if err := r.publishNotes(ctx); err != nil {
		return err
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return notFound("note", missing)
	}
	return nil
}
