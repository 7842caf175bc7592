package cli

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/spf13/cobra"
)

func newNoteCmd(a *app) *cobra.Command {
	noteCmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes", "n"},
		Short:   "Manage notes",
		Long: `Add, list, edit and trash notes.

Examples:
  mynotes note add "Buy milk" --checkable
  mynotes note list
  mynotes note check 3
  mynotes note trash 3
  mynotes note restore 3
  mynotes note delete 3`,
	}

	noteCmd.AddCommand(
		newNoteAddCmd(a),
		newNoteListCmd(a),
		newNoteEditCmd(a),
		newNoteCheckCmd(a),
		newNoteTrashCmd(a),
		newNoteRestoreCmd(a),
		newNoteDeleteCmd(a),
	)
	return noteCmd
}

func newNoteAddCmd(a *app) *cobra.Command {
	var (
		content   string
		colorID   int64
		checkable bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				color, err := a.resolveColor(ctx, repo, colorID)
				if err != nil {
					return err
				}

				note := model.NewNote()
				note.Title = joinArgs(args)
				note.Content = content
				note.Color = color
				if checkable {
					note = note.WithChecked(false)
				}
				if err := a.validate.Struct(note); err != nil {
					return err
				}

				saved, err := repo.SaveNote(ctx, note)
				if err != nil {
					return fmt.Errorf("failed to add note: %w", err)
				}
				printf(cmd.OutOrStdout(), "✓ Added note %d: %s\n", saved.ID, saved.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "Note body")
	cmd.Flags().Int64Var(&colorID, "color", 0, "Color id (see 'mynotes colors list')")
	cmd.Flags().BoolVarP(&checkable, "checkable", "x", false, "Give the note a checkbox")
	return cmd
}

func newNoteListCmd(a *app) *cobra.Command {
	var (
		trash  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				notes, err := repo.Notes(ctx, trash)
				if err != nil {
					return fmt.Errorf("failed to list notes: %w", err)
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), notes)
				}

				if len(notes) == 0 {
					if trash {
						printf(cmd.OutOrStdout(), "Trash is empty.\n")
					} else {
						printf(cmd.OutOrStdout(), "No notes found. Add one with: mynotes note add \"Your note\"\n")
					}
					return nil
				}

				heading := "Notes"
				if trash {
					heading = "Trashed notes"
				}
				printNotes(cmd.OutOrStdout(), heading, notes)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&trash, "trash", "t", false, "List trashed notes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newNoteEditCmd(a *app) *cobra.Command {
	var (
		title      string
		content    string
		colorID    int64
		checkable  bool
		noCheckbox bool
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if checkable && noCheckbox {
				return fmt.Errorf("--checkable and --no-checkbox can't be used together")
			}

			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				note, err := repo.Note(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to find note: %w", err)
				}

				flags := cmd.Flags()
				if flags.Changed("title") {
					note.Title = title
				}
				if flags.Changed("content") {
					note.Content = content
				}
				if flags.Changed("color") {
					if note.Color, err = a.resolveColor(ctx, repo, colorID); err != nil {
						return err
					}
				}
				if checkable && !note.CanBeCheckedOff() {
					note = note.WithChecked(false)
				}
				if noCheckbox {
					note = note.WithoutCheckbox()
				}
				if err := a.validate.Struct(note); err != nil {
					return err
				}

				if _, err := repo.SaveNote(ctx, note); err != nil {
					return fmt.Errorf("failed to save note: %w", err)
				}
				printf(cmd.OutOrStdout(), "✓ Updated note %d\n", note.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New body")
	cmd.Flags().Int64Var(&colorID, "color", 0, "New color id")
	cmd.Flags().BoolVarP(&checkable, "checkable", "x", false, "Give the note a checkbox")
	cmd.Flags().BoolVar(&noCheckbox, "no-checkbox", false, "Remove the checkbox")
	return cmd
}

func newNoteCheckCmd(a *app) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check [id]",
		Short: "Check off a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				note, err := repo.Note(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to find note: %w", err)
				}
				if !note.CanBeCheckedOff() {
					return fmt.Errorf("note %d has no checkbox (use 'mynotes note edit %d --checkable')", id, id)
				}

				if _, err := repo.SaveNote(ctx, note.WithChecked(!undo)); err != nil {
					return fmt.Errorf("failed to save note: %w", err)
				}
				if undo {
					printf(cmd.OutOrStdout(), "○ Unchecked: %s\n", note.Title)
				} else {
					printf(cmd.OutOrStdout(), "✓ Checked: %s\n", note.Title)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Uncheck instead")
	return cmd
}

func newNoteTrashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trash [id]",
		Short: "Move a note to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				if err := repo.MoveNoteToTrash(ctx, id); err != nil {
					return fmt.Errorf("failed to trash note: %w", err)
				}
				printf(cmd.OutOrStdout(), "🗑  Moved note %d to the trash\n", id)
				return nil
			})
		},
	}
}

func newNoteRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [id...]",
		Short: "Restore notes from the trash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				if err := repo.RestoreNotesFromTrash(ctx, ids); err != nil {
					return fmt.Errorf("failed to restore notes: %w", err)
				}
				printf(cmd.OutOrStdout(), "↩ Restored %d notes\n", len(ids))
				return nil
			})
		},
	}
}

func newNoteDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [id...]",
		Short: "Permanently delete trashed notes",
		Long:  `Permanently delete notes. Only notes already in the trash can be deleted.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				for _, id := range ids {
					note, err := repo.Note(ctx, id)
					if err != nil {
						return fmt.Errorf("failed to find note: %w", err)
					}
					if !note.IsInTrash {
						return fmt.Errorf("note %d is not in the trash (use 'mynotes note trash %d' first)", id, id)
					}
				}

				if !a.confirm(cmd, force, fmt.Sprintf("Permanently delete %d notes?", len(ids))) {
					return nil
				}
				if err := repo.DeleteNotes(ctx, ids); err != nil {
					return fmt.Errorf("failed to delete notes: %w", err)
				}
				printf(cmd.OutOrStdout(), "✗ Deleted %d notes\n", len(ids))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask for confirmation")
	return cmd
}
