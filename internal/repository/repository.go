// Package repository is the single source of truth for notes, contacts and
// colors. It seeds the store on first use, maps rows to domain models and
// republishes the active and trashed snapshots after every write.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/existflow/mynotes/internal/db"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/mapper"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/observe"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when an operation names an id the store doesn't have
var ErrNotFound = db.ErrNotFound

// Repository owns the store and the observable snapshots derived from it
type Repository struct {
	store Store
	log   *logger.Logger

	NotesNotInTrash    *observe.Value[[]model.Note]
	NotesInTrash       *observe.Value[[]model.Note]
	ContactsNotInTrash *observe.Value[[]model.Contact]
	ContactsInTrash    *observe.Value[[]model.Contact]
	Colors             *observe.Value[[]model.Color]

	// publishing holds a query and its post together so a slower refresh
	// can't overwrite a newer snapshot
	notesMu    sync.Mutex
	contactsMu sync.Mutex
	colorsMu   sync.Mutex

	ready   chan struct{}
	seedErr error
}

// New returns a repository and starts seeding in the background. Use Wait
// or Ready to find out when the first snapshots have been published.
func New(ctx context.Context, store Store, log *logger.Logger) *Repository {
	if log == nil {
		log = logger.Nop()
	}

	r := &Repository{
		store:              store,
		log:                log,
		NotesNotInTrash:    observe.NewValue([]model.Note{}),
		NotesInTrash:       observe.NewValue([]model.Note{}),
		ContactsNotInTrash: observe.NewValue([]model.Contact{}),
		ContactsInTrash:    observe.NewValue([]model.Contact{}),
		Colors:             observe.NewValue([]model.Color{}),
		ready:              make(chan struct{}),
	}

	go r.init(ctx)
	return r
}

func (r *Repository) init(ctx context.Context) {
	defer close(r.ready)

	if err := Seed(ctx, r.store); err != nil {
		r.log.Error("Seeding failed", logger.Err(err))
		r.seedErr = err
		return
	}
	if err := r.Refresh(ctx); err != nil {
		r.log.Error("Initial refresh failed", logger.Err(err))
		r.seedErr = err
		return
	}
	r.log.Debug("Repository ready")
}

// Ready is closed once seeding and the first publication have finished
func (r *Repository) Ready() <-chan struct{} {
	return r.ready
}

// Wait blocks until the repository is ready and returns the seeding error
func (r *Repository) Wait(ctx context.Context) error {
	select {
	case <-r.ready:
		return r.seedErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Refresh rereads everything from the store and republishes every snapshot
func (r *Repository) Refresh(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.publishColors(gctx) })
	g.Go(func() error { return r.publishNotes(gctx) })
	g.Go(func() error { return r.publishContacts(gctx) })
	return g.Wait()
}

func (r *Repository) colorLookup(ctx context.Context) (map[int64]db.ColorRecord, error) {
	colors, err := r.store.AllColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read colors: %w", err)
	}
	return mapper.ColorsByID(colors), nil
}

func (r *Repository) publishColors(ctx context.Context) error {
	r.colorsMu.Lock()
	defer r.colorsMu.Unlock()

	colors, err := r.ListColors(ctx)
	if err != nil {
		return err
	}
	r.Colors.Post(colors)
	return nil
}

// ListColors returns the full color catalog
func (r *Repository) ListColors(ctx context.Context) ([]model.Color, error) {
	recs, err := r.store.AllColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read colors: %w", err)
	}
	return mapper.ToDomainColors(recs), nil
}

// Color looks up a color by id
func (r *Repository) Color(ctx context.Context, id int64) (model.Color, error) {
	colors, err := r.colorLookup(ctx)
	if err != nil {
		return model.Color{}, err
	}
	rec, ok := colors[id]
	if !ok {
		return model.Color{}, fmt.Errorf("color %d: %w", id, ErrNotFound)
	}
	return mapper.ToDomainColor(rec), nil
}

// EmptyTrash permanently deletes every trashed note and contact
func (r *Repository) EmptyTrash(ctx context.Context) (notes, contacts int64, err error) {
	notes, err = r.store.DeleteTrashedNotes(ctx)
	if err != nil {
		return 0, 0, err
	}
	if err := r.publishNotes(ctx); err != nil {
		return notes, 0, err
	}

	contacts, err = r.store.DeleteTrashedContacts(ctx)
	if err != nil {
		return notes, 0, err
	}
	if err := r.publishContacts(ctx); err != nil {
		return notes, contacts, err
	}

	r.log.Info("Trash emptied", logger.F("notes", notes), logger.F("contacts", contacts))
	return notes, contacts, nil
}

func missingIDs(requested []int64, found map[int64]bool) []int64 {
	var missing []int64
	for _, id := range requested {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func notFound(kind string, ids []int64) error {
	if len(ids) == 1 {
		return fmt.Errorf("%s %d: %w", kind, ids[0], ErrNotFound)
	}
	return fmt.Errorf("%s %v: %w", kind, ids, ErrNotFound)
}

// IsNotFound reports whether err means an id was missing from the store
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
