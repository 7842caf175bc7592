package cli

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/spf13/cobra"
)

func newContactCmd(a *app) *cobra.Command {
	contactCmd := &cobra.Command{
		Use:     "contact",
		Aliases: []string{"contacts", "c"},
		Short:   "Manage contacts",
		Long: `Add, list, edit and trash contacts.

Examples:
  mynotes contact add "Mom" --number "+1 555 0100"
  mynotes contact list
  mynotes contact trash 2
  mynotes contact delete 2 --force`,
	}

	contactCmd.AddCommand(
		newContactAddCmd(a),
		newContactListCmd(a),
		newContactEditCmd(a),
		newContactCheckCmd(a),
		newContactTrashCmd(a),
		newContactRestoreCmd(a),
		newContactDeleteCmd(a),
	)
	return contactCmd
}

func newContactAddCmd(a *app) *cobra.Command {
	var (
		number    string
		content   string
		colorID   int64
		checkable bool
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new contact",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				color, err := a.resolveColor(ctx, repo, colorID)
				if err != nil {
					return err
				}

				contact := model.NewContact()
				contact.Title = joinArgs(args)
				contact.Number = number
				contact.Content = content
				contact.Color = color
				if checkable {
					contact = contact.WithChecked(false)
				}
				if err := a.validate.Struct(contact); err != nil {
					return err
				}

				saved, err := repo.SaveContact(ctx, contact)
				if err != nil {
					return fmt.Errorf("failed to add contact: %w", err)
				}
				printf(cmd.OutOrStdout(), "✓ Added contact %d: %s\n", saved.ID, saved.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&number, "number", "n", "", "Phone number")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Memo")
	cmd.Flags().Int64Var(&colorID, "color", 0, "Color id (see 'mynotes colors list')")
	cmd.Flags().BoolVarP(&checkable, "checkable", "x", false, "Give the contact a checkbox")
	return cmd
}

func newContactListCmd(a *app) *cobra.Command {
	var (
		trash  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				contacts, err := repo.Contacts(ctx, trash)
				if err != nil {
					return fmt.Errorf("failed to list contacts: %w", err)
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), contacts)
				}

				if len(contacts) == 0 {
					if trash {
						printf(cmd.OutOrStdout(), "Trash is empty.\n")
					} else {
						printf(cmd.OutOrStdout(), "No contacts found. Add one with: mynotes contact add \"Name\" --number 555\n")
					}
					return nil
				}

				heading := "Contacts"
				if trash {
					heading = "Trashed contacts"
				}
				printContacts(cmd.OutOrStdout(), heading, contacts)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&trash, "trash", "t", false, "List trashed contacts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newContactEditCmd(a *app) *cobra.Command {
	var (
		title      string
		number     string
		content    string
		colorID    int64
		checkable  bool
		noCheckbox bool
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a contact",
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
				contact, err := repo.Contact(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to find contact: %w", err)
				}

				flags := cmd.Flags()
				if flags.Changed("title") {
					contact.Title = title
				}
				if flags.Changed("number") {
					contact.Number = number
				}
				if flags.Changed("content") {
					contact.Content = content
				}
				if flags.Changed("color") {
					if contact.Color, err = a.resolveColor(ctx, repo, colorID); err != nil {
						return err
					}
				}
				if checkable && !contact.CanBeCheckedOff() {
					contact = contact.WithChecked(false)
				}
				if noCheckbox {
					contact = contact.WithoutCheckbox()
				}
				if err := a.validate.Struct(contact); err != nil {
					return err
				}

				if _, err := repo.SaveContact(ctx, contact); err != nil {
					return fmt.Errorf("failed to save contact: %w", err)
				}
				printf(cmd.OutOrStdout(), "✓ Updated contact %d\n", contact.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New name")
	cmd.Flags().StringVarP(&number, "number", "n", "", "New phone number")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New memo")
	cmd.Flags().Int64Var(&colorID, "color", 0, "New color id")
	cmd.Flags().BoolVarP(&checkable, "checkable", "x", false, "Give the contact a checkbox")
	cmd.Flags().BoolVar(&noCheckbox, "no-checkbox", false, "Remove the checkbox")
	return cmd
}

func newContactCheckCmd(a *app) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check [id]",
		Short: "Check off a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				contact, err := repo.Contact(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to find contact: %w", err)
				}
				if !contact.CanBeCheckedOff() {
					return fmt.Errorf("contact %d has no checkbox (use 'mynotes contact edit %d --checkable')", id, id)
				}

				if _, err := repo.SaveContact(ctx, contact.WithChecked(!undo)); err != nil {
					return fmt.Errorf("failed to save contact: %w", err)
				}
				if undo {
					printf(cmd.OutOrStdout(), "○ Unchecked: %s\n", contact.Title)
				} else {
					printf(cmd.OutOrStdout(), "✓ Checked: %s\n", contact.Title)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Uncheck instead")
	return cmd
}

func newContactTrashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trash [id]",
		Short: "Move a contact to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				if err := repo.MoveContactToTrash(ctx, id); err != nil {
					return fmt.Errorf("failed to trash contact: %w", err)
				}
				printf(cmd.OutOrStdout(), "🗑  Moved contact %d to the trash\n", id)
				return nil
			})
		},
	}
}

func newContactRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [id...]",
		Short: "Restore contacts from the trash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				if err := repo.RestoreContactsFromTrash(ctx, ids); err != nil {
					return fmt.Errorf("failed to restore contacts: %w", err)
				}
				printf(cmd.OutOrStdout(), "↩ Restored %d contacts\n", len(ids))
				return nil
			})
		},
	}
}

func newContactDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [id...]",
		Short: "Permanently delete trashed contacts",
		Long:  `Permanently delete contacts. Only contacts already in the trash can be deleted.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				for _, id := range ids {
					contact, err := repo.Contact(ctx, id)
					if err != nil {
						return fmt.Errorf("failed to find contact: %w", err)
					}
					if !contact.IsInTrash {
						return fmt.Errorf("contact %d is not in the trash (use 'mynotes contact trash %d' first)", id, id)
					}
				}

				if !a.confirm(cmd, force, fmt.Sprintf("Permanently delete %d contacts?", len(ids))) {
					return nil
				}
				if err := repo.DeleteContacts(ctx, ids); err != nil {
					return fmt.Errorf("failed to delete contacts: %w", err)
				}
				printf(cmd.OutOrStdout(), "✗ Deleted %d contacts\n", len(ids))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask for confirmation")
	return cmd
}
