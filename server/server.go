// Package server exposes the notes and contacts over a local JSON API.
package server

import (
	"context"
	"net/http"

	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/validate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Repository is what the API reads and writes
type Repository interface {
	ListColors(ctx context.Context) ([]model.Color, error)
	Color(ctx context.Context, id int64) (model.Color, error)

	Notes(ctx context.Context, inTrash bool) ([]model.Note, error)
	Note(ctx context.Context, id int64) (model.Note, error)
	SaveNote(ctx context.Context, note model.Note) (model.Note, error)
	MoveNoteToTrash(ctx context.Context, id int64) error
	RestoreNotesFromTrash(ctx context.Context, ids []int64) error
	DeleteNotes(ctx context.Context, ids []int64) error

	Contacts(ctx context.Context, inTrash bool) ([]model.Contact, error)
	Contact(ctx context.Context, id int64) (model.Contact, error)
	SaveContact(ctx context.Context, contact model.Contact) (model.Contact, error)
	MoveContactToTrash(ctx context.Context, id int64) error
	RestoreContactsFromTrash(ctx context.Context, ids []int64) error
	DeleteContacts(ctx context.Context, ids []int64) error

	EmptyTrash(ctx context.Context) (notes, contacts int64, err error)
}

// Server is the local API server
type Server struct {
	repo     Repository
	validate *validate.Validator
	log      *logger.Logger
	echo     *echo.Echo
}

// New creates a new server
func New(repo Repository, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		repo:     repo,
		validate: validate.New(),
		log:      log.WithFields(logger.F("component", "server")),
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.requestLogger)
	e.Use(middleware.Recover())
	e.Use(localOrigin)
	e.Use(jsonBody)

	// Health check
	e.GET("/health", s.handleHealth)

	// API v1
	api := e.Group("/api/v1")
	api.GET("/colors", s.handleListColors)

	api.GET("/notes", s.handleListNotes)
	api.GET("/notes/:id", s.handleGetNote)
	api.POST("/notes", s.handleSaveNote)
	api.POST("/notes/:id/trash", s.handleTrashNote)
	api.POST("/notes/restore", s.handleRestoreNotes)
	api.POST("/notes/delete", s.handleDeleteNotes)

	api.GET("/contacts", s.handleListContacts)
	api.GET("/contacts/:id", s.handleGetContact)
	api.POST("/contacts", s.handleSaveContact)
	api.POST("/contacts/:id/trash", s.handleTrashContact)
	api.POST("/contacts/restore", s.handleRestoreContacts)
	api.POST("/contacts/delete", s.handleDeleteContacts)

	api.POST("/trash/empty", s.handleEmptyTrash)

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	s.log.Info("API server listening", logger.F("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListColors(c echo.Context) error {
	colors, err := s.repo.ListColors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, colors)
}

func (s *Server) handleEmptyTrash(c echo.Context) error {
	notes, contacts, err := s.repo.EmptyTrash(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{
		"notes":    notes,
		"contacts": contacts,
	})
}
