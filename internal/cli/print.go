package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/existflow/mynotes/internal/model"
)

func checkbox(checked *bool) string {
	switch {
	case checked == nil:
		return "   "
	case *checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

func shorten(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func printNotes(w io.Writer, heading string, notes []model.Note) {
	printf(w, "\n📝 %s (%d)\n", heading, len(notes))
	printf(w, "%s\n", strings.Repeat("─", 60))
	for _, n := range notes {
		printf(w, "  %s  %-4d  %-24s  %-20s  %s\n",
			checkbox(n.IsCheckedOff), n.ID, shorten(n.Title, 24), shorten(n.Content, 20), n.Color.Name)
	}
	printf(w, "\n")
}

func printContacts(w io.Writer, heading string, contacts []model.Contact) {
	printf(w, "\n📇 %s (%d)\n", heading, len(contacts))
	printf(w, "%s\n", strings.Repeat("─", 60))
	for _, c := range contacts {
		printf(w, "  %s  %-4d  %-20s  %-16s  %s\n",
			checkbox(c.IsCheckedOff), c.ID, shorten(c.Title, 20), c.Number, c.Color.Name)
	}
	printf(w, "\n")
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
