package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/existflow/mynotes/internal/model"
	"github.com/labstack/echo/v4"
)

// ContactRequest is the body of POST /contacts. An ID of zero or less
// creates a contact. Updates work like NoteRequest: absent fields keep
// their stored values.
type ContactRequest struct {
	ID           int64        `json:"id"`
	Title        *string      `json:"title"`
	Content      *string      `json:"content"`
	Number       *string      `json:"number"`
	IsCheckedOff OptionalBool `json:"is_checked_off"`
	ColorID      *int64       `json:"color_id"`
}

func (s *Server) handleListContacts(c echo.Context) error {
	inTrash := false
	if v := c.QueryParam("trash"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest("invalid trash value %q", v)
		}
		inTrash = b
	}

	contacts, err := s.repo.Contacts(c.Request().Context(), inTrash)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

func (s *Server) handleGetContact(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	contact, err := s.repo.Contact(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

func (s *Server) handleSaveContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	ctx := c.Request().Context()

	contact := model.NewContact()
	if req.ID > 0 {
		existing, err := s.repo.Contact(ctx, req.ID)
		if err != nil {
			return err
		}
		contact = existing
	}

	if req.Title != nil {
		contact.Title = *req.Title
	}
	if req.Content != nil {
		contact.Content = *req.Content
	}
	if req.Number != nil {
		contact.Number = *req.Number
	}
	if req.IsCheckedOff.Set {
		contact.IsCheckedOff = req.IsCheckedOff.Value
	}
	if req.ColorID != nil {
		color, err := s.resolveColor(c, *req.ColorID)
		if err != nil {
			return err
		}
		contact.Color = color
	}

	if err := s.validate.Struct(contact); err != nil {
		return err
	}

	saved, err := s.repo.SaveContact(ctx, contact)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if contact.IsNew() {
		status = http.StatusCreated
	}
	return c.JSON(status, saved)
}

func (s *Server) handleTrashContact(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.repo.MoveContactToTrash(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleRestoreContacts(c echo.Context) error {
	ids, err := s.bindIDs(c)
	if err != nil {
		return err
	}
	if err := s.repo.RestoreContactsFromTrash(c.Request().Context(), ids); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// handleDeleteContacts permanently deletes contacts that are already in the trash
func (s *Server) handleDeleteContacts(c echo.Context) error {
	ids, err := s.bindIDs(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	for _, id := range ids {
		contact, err := s.repo.Contact(ctx, id)
		if err != nil {
			return err
		}
		if !contact.IsInTrash {
			return fmt.Errorf("contact %d is not in the trash: %w", id, errConflict)
		}
	}

	if err := s.repo.DeleteContacts(ctx, ids); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
