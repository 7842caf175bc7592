package server

import (
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/existflow/mynotes/internal/validate"
	"github.com/labstack/echo/v4"
)

// errConflict marks a request that doesn't fit the current state
var errConflict = errors.New("conflict")

// requestLogger logs every request with its status and duration
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			// Let the error handler set the status before we log it
			c.Error(err)
		}

		res := c.Response()
		s.log.Info("HTTP Request",
			logger.F("request_id", res.Header().Get(echo.HeaderXRequestID)),
			logger.F("method", req.Method),
			logger.F("uri", req.RequestURI),
			logger.F("status", res.Status),
			logger.F("size", res.Size),
			logger.F("duration", time.Since(start).String()))

		return nil
	}
}

// localOrigin rejects browser requests coming from pages that aren't
// served from this machine. Requests without an Origin header (curl, the
// CLI, scripts) pass. No CORS headers are sent, so foreign pages can't read
// responses either.
func localOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		origin := c.Request().Header.Get(echo.HeaderOrigin)
		if origin != "" && !isLoopbackOrigin(origin) {
			return echo.NewHTTPError(http.StatusForbidden, "origin not allowed")
		}
		return next(c)
	}
}

func isLoopbackOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// jsonBody requires a JSON content type on requests that carry a body, so
// HTML forms can't post to the API
func jsonBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.ContentLength == 0 {
			return next(c)
		}
		mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
		if err != nil || mediaType != echo.MIMEApplicationJSON {
			return echo.NewHTTPError(http.StatusUnsupportedMediaType, "content type must be application/json")
		}
		return next(c)
	}
}

// errorHandler turns handler errors into JSON responses
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := map[string]interface{}{"error": "internal error"}

	var verrs validate.Errors
	var herr *echo.HTTPError
	switch {
	case errors.As(err, &verrs):
		status = http.StatusBadRequest
		body["error"] = verrs.Error()
		body["fields"] = verrs
	case errors.As(err, &herr):
		status = herr.Code
		body["error"] = fmt.Sprint(herr.Message)
	case repository.IsNotFound(err):
		status = http.StatusNotFound
		body["error"] = err.Error()
	case errors.Is(err, errConflict):
		status = http.StatusConflict
		body["error"] = err.Error()
	default:
		s.log.Error("Request failed",
			logger.F("uri", c.Request().RequestURI),
			logger.Err(err))
	}

	if err := c.JSON(status, body); err != nil {
		s.log.Warn("Failed to write error response", logger.Err(err))
	}
}

func badRequest(format string, args ...interface{}) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// idsRequest is the body of the restore and delete endpoints
type idsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

func (s *Server) bindIDs(c echo.Context) ([]int64, error) {
	var req idsRequest
	if err := c.Bind(&req); err != nil {
		return nil, badRequest("invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return req.IDs, nil
}

// resolveColor maps a color id from a request to a catalog color. Zero
// means the default color.
func (s *Server) resolveColor(c echo.Context, id int64) (model.Color, error) {
	if id == 0 {
		return model.DefaultColor(), nil
	}
	color, err := s.repo.Color(c.Request().Context(), id)
	if repository.IsNotFound(err) {
		return model.Color{}, badRequest("unknown color_id %d", id)
	}
	return color, err
}
