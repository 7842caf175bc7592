package repository

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/mapper"
	"github.com/existflow/mynotes/internal/model"
)

// Contacts returns the contacts in the given trash partition
func (r *Repository) Contacts(ctx context.Context, inTrash bool) ([]model.Contact, error) {
	recs, err := r.store.AllContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}
	colors, err := r.colorLookup(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]model.Contact, 0, len(recs))
	for _, rec := range recs {
		if rec.IsInTrash == inTrash {
			contacts = append(contacts, mapper.ToDomainContact(rec, colors))
		}
	}
	return contacts, nil
}

// Contact returns a single contact by id
func (r *Repository) Contact(ctx context.Context, id int64) (model.Contact, error) {
	rec, err := r.store.FindContact(ctx, id)
	if err != nil {
		return model.Contact{}, err
	}
	colors, err := r.colorLookup(ctx)
	if err != nil {
		return model.Contact{}, err
	}
	return mapper.ToDomainContact(rec, colors), nil
}

func (r *Repository) publishContacts(ctx context.Context) error {
	r.contactsMu.Lock()
	defer r.contactsMu.Unlock()

	active, err := r.Contacts(ctx, false)
	if err != nil {
		return err
	}
	trashed, err := r.Contacts(ctx, true)
	if err != nil {
		return err
	}

	r.ContactsNotInTrash.Post(active)
	r.ContactsInTrash.Post(trashed)
	return nil
}

// SaveContact inserts a new contact or replaces an existing one
func (r *Repository) SaveContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	id, err := r.store.UpsertContact(ctx, mapper.ToStorageContact(contact))
	if err != nil {
		return model.Contact{}, err
	}
	contact.ID = id
	r.log.Debug("Contact saved", logger.F("id", id))

	if err := r.publishContacts(ctx); err != nil {
		return contact, err
	}
	return contact, nil
}

// DeleteContacts permanently removes the contacts with the given ids
func (r *Repository) DeleteContacts(ctx context.Context, ids []int64) error {
	if err := r.store.DeleteContacts(ctx, ids); err != nil {
		return err
	}
	r.log.Debug("Contacts deleted", logger.F("ids", ids))
	return r.publishContacts(ctx)
}

// MoveContactToTrash soft-deletes a contact
func (r *Repository) MoveContactToTrash(ctx context.Context, id int64) error {
	rec, err := r.store.FindContact(ctx, id)
	if err != nil {
		return err
	}
	rec.IsInTrash = true
	if _, err := r.store.UpsertContact(ctx, rec); err != nil {
		return err
	}
	r.log.Debug("Contact moved to trash", logger.F("id", id))
	return r.publishContacts(ctx)
}

// RestoreContactsFromTrash moves the given contacts out of the trash
func (r *Repository) RestoreContactsFromTrash(ctx context.Context, ids []int64) error {
	recs, err := r.store.ContactsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[int64]bool, len(recs))
	for _, rec := range recs {
		found[rec.ID] = true
		rec.IsInTrash = false
		if _, err := r.store.UpsertContact(ctx, rec); err != nil {
			// Rows restored before the failure stay restored
			if pubErr := r.publishContacts(ctx); pubErr != nil {
				r.log.Warn("Failed to republish contacts", logger.Err(pubErr))
			}
			return err
		}
	}
	r.log.Debug("Contacts restored", logger.F("count", len(recs)))

	if err := r.publishContacts(ctx); err != nil {
		return err
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return notFound("contact", missing)
	}
	return nil
}
