package cli

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/repository"
	"github.com/spf13/cobra"
)

func newEmptyTrashCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "empty-trash",
		Short: "Permanently delete everything in the trash",
		Long: `Permanently delete every trashed note and contact.
Asks for confirmation unless --force is given or confirm_delete is off.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.confirm(cmd, force, "Permanently delete everything in the trash?") {
				return nil
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				notes, contacts, err := repo.EmptyTrash(ctx)
				if err != nil {
					return fmt.Errorf("failed to empty trash: %w", err)
				}
				printf(cmd.OutOrStdout(), "🧹 Deleted %d notes and %d contacts\n", notes, contacts)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask for confirmation")
	return cmd
}
