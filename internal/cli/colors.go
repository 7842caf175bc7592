package cli

import (
	"context"
	"fmt"

	"github.com/existflow/mynotes/internal/config"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/spf13/cobra"
)

func newColorsCmd(a *app) *cobra.Command {
	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "Manage the color for new entries",
		Long: `Show the color catalog and choose the color new notes and contacts get.

Examples:
  mynotes colors              # Show the current default
  mynotes colors list         # List all colors
  mynotes colors use 5        # New entries get color 5
  mynotes colors clear        # Back to the built-in default`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				c := a.newEntryColor(ctx, repo)
				printf(cmd.OutOrStdout(), "🎨 New entries use: %s %s (#%d)\n", c.Name, c.Hex, c.ID)
				return nil
			})
		},
	}

	var asJSON bool
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				colors, err := repo.ListColors(ctx)
				if err != nil {
					return fmt.Errorf("failed to list colors: %w", err)
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), colors)
				}

				current := a.newEntryColor(ctx, repo)
				w := cmd.OutOrStdout()
				printf(w, "\n")
				for _, c := range colors {
					marker := "  "
					if c.ID == current.ID {
						marker = "❯ "
					}
					printf(w, "%s%-4d  %-12s  %s\n", marker, c.ID, c.Name, c.Hex)
				}
				printf(w, "\nUse 'mynotes colors use <id>' to change the default\n")
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	useCmd := &cobra.Command{
		Use:   "use [color-id]",
		Short: "Set the color for new entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(cmd, func(ctx context.Context, repo *repository.Repository) error {
				c, err := repo.Color(ctx, id)
				if err != nil {
					return fmt.Errorf("color not found: %d", id)
				}
				if err := config.SetDefaultColorID(id); err != nil {
					return fmt.Errorf("failed to set default color: %w", err)
				}
				printf(cmd.OutOrStdout(), "🎨 New entries use: %s %s\n", c.Name, c.Hex)
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Use the built-in default color",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearDefaultColorID(); err != nil {
				return fmt.Errorf("failed to clear default color: %w", err)
			}
			printf(cmd.OutOrStdout(), "🎨 Default color cleared\n")
			return nil
		},
	}

	colorsCmd.AddCommand(listCmd, useCmd, clearCmd)
	return colorsCmd
}
