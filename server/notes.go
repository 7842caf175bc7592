package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/existflow/mynotes/internal/model"
	"github.com/labstack/echo/v4"
)

// NoteRequest is the body of POST /notes. ID 0 creates a note. On an
// update, fields left out of the body keep their stored values; an explicit
// "is_checked_off": null removes the checkbox.
type NoteRequest struct {
	ID           int64        `json:"id"`
	Title        *string      `json:"title"`
	Content      *string      `json:"content"`
	IsCheckedOff OptionalBool `json:"is_checked_off"`
	ColorID      *int64       `json:"color_id"`
}

func (s *Server) handleListNotes(c echo.Context) error {
	inTrash := false
	if v := c.QueryParam("trash"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest("invalid trash value %q", v)
		}
		inTrash = b
	}

	notes, err := s.repo.Notes(c.Request().Context(), inTrash)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

func (s *Server) handleGetNote(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	note, err := s.repo.Note(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (s *Server) handleSaveNote(c echo.Context) error {
	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	ctx := c.Request().Context()

	note := model.NewNote()
	if req.ID != model.NewNoteID {
		existing, err := s.repo.Note(ctx, req.ID)
		if err != nil {
			return err
		}
		note = existing
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.IsCheckedOff.Set {
		note.IsCheckedOff = req.IsCheckedOff.Value
	}
	if req.ColorID != nil {
		color, err := s.resolveColor(c, *req.ColorID)
		if err != nil {
			return err
		}
		note.Color = color
	}

	if err := s.validate.Struct(note); err != nil {
		return err
	}

	saved, err := s.repo.SaveNote(ctx, note)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if note.IsNew() {
		status = http.StatusCreated
	}
	return c.JSON(status, saved)
}

func (s *Server) handleTrashNote(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.repo.MoveNoteToTrash(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleRestoreNotes(c echo.Context) error {
	ids, err := s.bindIDs(c)
	if err != nil {
		return err
	}
	if err := s.repo.RestoreNotesFromTrash(c.Request().Context(), ids); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// handleDeleteNotes permanently deletes notes that are already in the trash
func (s *Server) handleDeleteNotes(c echo.Context) error {
	ids, err := s.bindIDs(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	for _, id := range ids {
		note, err := s.repo.Note(ctx, id)
		if err != nil {
			return err
		}
		if !note.IsInTrash {
			return fmt.Errorf("note %d is not in the trash: %w", id, errConflict)
		}
	}

	if err := s.repo.DeleteNotes(ctx, ids); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
