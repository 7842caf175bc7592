package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/existflow/mynotes/internal/config"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("MYNOTES_HOME", home)
	for _, key := range []string{
		"MYNOTES_DB_PATH", "MYNOTES_SERVER_ADDR", "MYNOTES_LOG_LEVEL", "MYNOTES_LOG_FILE",
		"MYNOTES_LOG_CONSOLE", "MYNOTES_CONFIRM_DELETE", "MYNOTES_WATCH_CHANGES",
	} {
		t.Setenv(key, "")
	}
	return home
}

// run executes the command tree with args and returns what it printed
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { _ = logger.Close() })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func listNotes(t *testing.T, args ...string) []model.Note {
	t.Helper()
	out := mustRun(t, append([]string{"note", "list", "--json"}, args...)...)
	var notes []model.Note
	require.NoError(t, json.Unmarshal([]byte(out), &notes), out)
	return notes
}

func listContacts(t *testing.T, args ...string) []model.Contact {
	t.Helper()
	out := mustRun(t, append([]string{"contact", "list", "--json"}, args...)...)
	var contacts []model.Contact
	require.NoError(t, json.Unmarshal([]byte(out), &contacts), out)
	return contacts
}

func findNote(notes []model.Note, title string) (model.Note, bool) {
	for _, n := range notes {
		if n.Title == title {
			return n, true
		}
	}
	return model.Note{}, false
}

func TestNoteListSeedsDefaults(t *testing.T) {
	home := setHome(t)

	notes := listNotes(t)
	assert.Len(t, notes, 4)
	assert.FileExists(t, filepath.Join(home, "notes.db"))
	assert.Empty(t, listNotes(t, "--trash"))

	out := mustRun(t, "note", "list")
	assert.Contains(t, out, "Notes (4)")
}

func TestNoteAdd(t *testing.T) {
	setHome(t)

	out := mustRun(t, "note", "add", "Buy", "milk", "-c", "2 liters", "--checkable", "--color", "5")
	assert.Contains(t, out, "Added note 5: Buy milk")

	note, ok := findNote(listNotes(t), "Buy milk")
	require.True(t, ok)
	assert.Equal(t, "2 liters", note.Content)
	assert.Equal(t, "Family", note.Color.Name)
	require.NotNil(t, note.IsCheckedOff)
	assert.False(t, *note.IsCheckedOff)
}

func TestNoteAddUnknownColor(t *testing.T) {
	setHome(t)

	_, err := run(t, "", "note", "add", "x", "--color", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color 99")
}

func TestNoteAddUsesDefaultColor(t *testing.T) {
	setHome(t)

	out := mustRun(t, "colors", "use", "11")
	assert.Contains(t, out, "Yellow")
	assert.Equal(t, int64(11), config.DefaultColorID())

	mustRun(t, "note", "add", "Sunny")
	note, ok := findNote(listNotes(t), "Sunny")
	require.True(t, ok)
	assert.Equal(t, int64(11), note.Color.ID)

	mustRun(t, "colors", "clear")
	assert.Equal(t, int64(0), config.DefaultColorID())
}

func TestNoteEditAndCheck(t *testing.T) {
	setHome(t)

	mustRun(t, "note", "add", "Draft")
	note, _ := findNote(listNotes(t), "Draft")
	id := strconv.FormatInt(note.ID, 10)

	_, err := run(t, "", "note", "check", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no checkbox")

	mustRun(t, "note", "edit", id, "--title", "Final", "--checkable")
	mustRun(t, "note", "check", id)

	note, ok := findNote(listNotes(t), "Final")
	require.True(t, ok)
	assert.True(t, note.Checked())

	mustRun(t, "note", "check", id, "--undo")
	note, _ = findNote(listNotes(t), "Final")
	assert.False(t, note.Checked())

	mustRun(t, "note", "edit", id, "--no-checkbox")
	note, _ = findNote(listNotes(t), "Final")
	assert.False(t, note.CanBeCheckedOff())
}

func TestNoteEditRejectsEmptyTitle(t *testing.T) {
	setHome(t)

	_, err := run(t, "", "note", "edit", "1", "--title", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestNoteTrashRestoreDelete(t *testing.T) {
	setHome(t)

	mustRun(t, "note", "trash", "1")
	assert.Len(t, listNotes(t), 3)
	assert.Len(t, listNotes(t, "--trash"), 1)

	mustRun(t, "note", "restore", "1")
	assert.Len(t, listNotes(t), 4)

	_, err := run(t, "", "note", "delete", "1", "--force")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the trash")

	mustRun(t, "note", "trash", "1")
	out, err := run(t, "n\n", "note", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.Len(t, listNotes(t, "--trash"), 1)

	out, err = run(t, "y\n", "note", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 notes")
	assert.Empty(t, listNotes(t, "--trash"))
	assert.Len(t, listNotes(t), 3)

	_, err = run(t, "", "note", "restore", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNoteTrashMissing(t *testing.T) {
	setHome(t)

	_, err := run(t, "", "note", "trash", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, "", "note", "trash", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
}

func TestContactLifecycle(t *testing.T) {
	setHome(t)
	t.Setenv("MYNOTES_CONFIRM_DELETE", "false")

	assert.Len(t, listContacts(t), 4)

	out := mustRun(t, "contact", "add", "Mom", "--number", "+1 555 0100")
	assert.Contains(t, out, "Added contact 5: Mom")

	_, err := run(t, "", "contact", "add", "Bad", "--number", "call me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number may only contain")

	mustRun(t, "contact", "edit", "5", "--number", "555-0199", "--checkable")
	mustRun(t, "contact", "check", "5")
	var mom model.Contact
	for _, c := range listContacts(t) {
		if c.ID == 5 {
			mom = c
		}
	}
	assert.Equal(t, "555-0199", mom.Number)
	assert.True(t, mom.Checked())

	mustRun(t, "contact", "trash", "5")
	assert.Len(t, listContacts(t, "--trash"), 1)
	mustRun(t, "contact", "restore", "5")
	mustRun(t, "contact", "trash", "5")

	out = mustRun(t, "contact", "delete", "5")
	assert.Contains(t, out, "Deleted 1 contacts")
	assert.Empty(t, listContacts(t, "--trash"))
	assert.Len(t, listContacts(t), 4)
}

func TestEmptyTrash(t *testing.T) {
	setHome(t)

	mustRun(t, "note", "trash", "1")
	mustRun(t, "note", "trash", "2")
	mustRun(t, "contact", "trash", "3")

	out := mustRun(t, "empty-trash", "--force")
	assert.Contains(t, out, "Deleted 2 notes and 1 contacts")
	assert.Empty(t, listNotes(t, "--trash"))
	assert.Empty(t, listContacts(t, "--trash"))
	assert.Len(t, listNotes(t), 2)
}

func TestColorsList(t *testing.T) {
	setHome(t)

	out := mustRun(t, "colors", "list", "--json")
	var colors []model.Color
	require.NoError(t, json.Unmarshal([]byte(out), &colors))
	assert.Len(t, colors, 14)
	assert.Equal(t, model.DefaultColor(), colors[0])

	out = mustRun(t, "colors", "list")
	assert.Contains(t, out, "❯ 1")

	_, err := run(t, "", "colors", "use", "15")
	require.Error(t, err)
}

func TestLogFlagsPersist(t *testing.T) {
	setHome(t)

	mustRun(t, "--log-level", "DEBUG", "colors")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)

	_, err = run(t, "", "--log-level", "LOUD", "colors")
	require.Error(t, err)
}
