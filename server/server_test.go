package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/existflow/mynotes/internal/db"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) (*Server, *repository.Repository) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	repo := repository.New(context.Background(), database, nil)
	require.NoError(t, repo.Wait(context.Background()))

	return New(repo, nil), repo
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestListColors(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/colors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var colors []model.Color
	decode(t, rec, &colors)
	assert.Len(t, colors, 14)
	assert.Equal(t, model.DefaultColor(), colors[0])
}

func TestListNotes(t *testing.T) {
	s, repo := newTestServer(t)
	require.NoError(t, repo.MoveNoteToTrash(context.Background(), 2))

	var active, trashed []model.Note
	rec := do(t, s, http.MethodGet, "/api/v1/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &active)
	assert.Len(t, active, 3)

	rec = do(t, s, http.MethodGet, "/api/v1/notes?trash=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &trashed)
	require.Len(t, trashed, 1)
	assert.Equal(t, int64(2), trashed[0].ID)

	rec = do(t, s, http.MethodGet, "/api/v1/notes?trash=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveNote(t *testing.T) {
	s, repo := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/notes",
		`{"title":"Groceries","content":"eggs","is_checked_off":false,"color_id":12}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Note
	decode(t, rec, &created)
	assert.NotEqual(t, model.NewNoteID, created.ID)
	assert.Equal(t, "Orange", created.Color.Name)
	assert.True(t, created.CanBeCheckedOff())

	body := `{"id":` + jsonInt(created.ID) + `,"title":"Groceries","is_checked_off":true,"color_id":12}`
	rec = do(t, s, http.MethodPost, "/api/v1/notes", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := repo.Note(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Checked())
	assert.Equal(t, "eggs", stored.Content)
}

func TestSaveNoteKeepsAbsentFields(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()

	rec := do(t, s, http.MethodPost, "/api/v1/notes",
		`{"title":"Plants","content":"water","is_checked_off":true,"color_id":8}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created model.Note
	decode(t, rec, &created)
	id := jsonInt(created.ID)

	rec = do(t, s, http.MethodPost, "/api/v1/notes", `{"id":`+id+`,"title":"House plants"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := repo.Note(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "House plants", stored.Title)
	assert.Equal(t, "water", stored.Content)
	assert.Equal(t, int64(8), stored.Color.ID)
	assert.True(t, stored.Checked())

	rec = do(t, s, http.MethodPost, "/api/v1/notes", `{"id":`+id+`,"is_checked_off":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err = repo.Note(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.CanBeCheckedOff())
	assert.Equal(t, "House plants", stored.Title)
}

func TestSaveContactKeepsAbsentFields(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()

	before, err := repo.Contact(ctx, 1)
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/api/v1/contacts", `{"id":1,"number":"555-0101"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after, err := repo.Contact(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "555-0101", after.Number)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Content, after.Content)
	assert.Equal(t, before.Color, after.Color)
	assert.Equal(t, before.IsCheckedOff, after.IsCheckedOff)
}

func TestForeignOriginRejected(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, repo.MoveNoteToTrash(ctx, 1))

	for _, tc := range []struct {
		method, target string
	}{
		{http.MethodGet, "/api/v1/notes"},
		{http.MethodPost, "/api/v1/trash/empty"},
		{http.MethodPost, "/api/v1/notes/2/trash"},
	} {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, tc.target)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), tc.target)
		assert.NotContains(t, rec.Body.String(), "RW Meeting", tc.target)
	}

	trashed, err := repo.Notes(ctx, true)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Equal(t, int64(1), trashed[0].ID)
}

func TestLoopbackOriginAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	for _, origin := range []string{"http://localhost:3000", "http://127.0.0.1:8765", "http://[::1]:8080"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, origin)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	req.Header.Set("Origin", "null")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFormPostRejected(t *testing.T) {
	s, repo := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", strings.NewReader("title=pwned"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	notes, err := repo.Notes(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, notes, 4)
}

func TestSaveNoteValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/notes", `{"title":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
			Tag   string `json:"tag"`
		} `json:"fields"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "title is required", body.Error)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "title", body.Fields[0].Field)

	rec = do(t, s, http.MethodPost, "/api/v1/notes", `{"title":"x","color_id":99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown color_id 99")

	rec = do(t, s, http.MethodPost, "/api/v1/notes", `{"id":77,"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/notes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveNoteKeepsTrashFlag(t *testing.T) {
	s, repo := newTestServer(t)
	require.NoError(t, repo.MoveNoteToTrash(context.Background(), 1))

	rec := do(t, s, http.MethodPost, "/api/v1/notes", `{"id":1,"title":"still trashed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	note, err := repo.Note(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, note.IsInTrash)
}

func TestNoteTrashRestoreDelete(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()

	rec := do(t, s, http.MethodPost, "/api/v1/notes/3/trash", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	trashed, err := repo.Notes(ctx, true)
	require.NoError(t, err)
	assert.Len(t, trashed, 1)

	rec = do(t, s, http.MethodPost, "/api/v1/notes/restore", `{"ids":[3]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/notes/delete", `{"ids":[3]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	do(t, s, http.MethodPost, "/api/v1/notes/3/trash", "")
	rec = do(t, s, http.MethodPost, "/api/v1/notes/delete", `{"ids":[3]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = repo.Note(ctx, 3)
	assert.True(t, repository.IsNotFound(err))

	rec = do(t, s, http.MethodPost, "/api/v1/notes/restore", `{"ids":[3]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/notes/restore", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/notes/x/trash", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/notes/42/trash", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContacts(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()

	rec := do(t, s, http.MethodPost, "/api/v1/contacts", `{"title":"Dentist","number":"+1 (555) 010-0000"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created model.Contact
	decode(t, rec, &created)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, model.DefaultColor(), created.Color)

	rec = do(t, s, http.MethodPost, "/api/v1/contacts", `{"title":"Spam","number":"call me maybe"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "number may only contain")

	rec = do(t, s, http.MethodGet, "/api/v1/contacts/"+jsonInt(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/contacts/"+jsonInt(created.ID)+"/trash", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	var trashed []model.Contact
	rec = do(t, s, http.MethodGet, "/api/v1/contacts?trash=1", "")
	decode(t, rec, &trashed)
	require.Len(t, trashed, 1)
	assert.Equal(t, "Dentist", trashed[0].Title)

	rec = do(t, s, http.MethodPost, "/api/v1/contacts/delete", `{"ids":[`+jsonInt(created.ID)+`]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	active, err := repo.Contacts(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 4)
}

func TestEmptyTrash(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, repo.MoveNoteToTrash(ctx, 1))
	require.NoError(t, repo.MoveContactToTrash(ctx, 1))
	require.NoError(t, repo.MoveContactToTrash(ctx, 2))

	rec := do(t, s, http.MethodPost, "/api/v1/trash/empty", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notes":1,"contacts":2}`, rec.Body.String())

	notes, err := repo.Notes(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func jsonInt(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
