package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/existflow/mynotes/internal/config"
	"github.com/existflow/mynotes/internal/db"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/model"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/existflow/mynotes/internal/validate"
	"github.com/spf13/cobra"
)

// app carries what PersistentPreRunE loaded to the subcommands
type app struct {
	cfg      *config.Config
	validate *validate.Validator
}

// openRepository opens the configured database and waits for seeding.
// The returned func closes the database.
func (a *app) openRepository(ctx context.Context) (*repository.Repository, func(), error) {
	database, err := db.Open(a.cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeDB := func() {
		_ = database.Close()
		logger.Debug("Database closed")
	}

	repo := repository.New(ctx, database, logger.L())
	if err := repo.Wait(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to prepare database: %w", err)
	}
	return repo, closeDB, nil
}

// withRepository runs fn against an open repository
func (a *app) withRepository(cmd *cobra.Command, fn func(ctx context.Context, repo *repository.Repository) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repo, closeDB, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeDB()
	return fn(ctx, repo)
}

// newEntryColor returns the saved default color, or the built-in default
func (a *app) newEntryColor(ctx context.Context, repo *repository.Repository) model.Color {
	id := config.DefaultColorID()
	if id == 0 {
		return model.DefaultColor()
	}
	c, err := repo.Color(ctx, id)
	if err != nil {
		logger.Warn("Saved default color not found", logger.F("color", id))
		return model.DefaultColor()
	}
	return c
}

// resolveColor returns the color named by flag, or the default for new entries
func (a *app) resolveColor(ctx context.Context, repo *repository.Repository, flag int64) (model.Color, error) {
	if flag == 0 {
		return a.newEntryColor(ctx, repo), nil
	}
	c, err := repo.Color(ctx, flag)
	if err != nil {
		return model.Color{}, fmt.Errorf("unknown color %d (see 'mynotes colors list')", flag)
	}
	return c, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// confirm asks a y/N question unless confirmations are off or force is set
func (a *app) confirm(cmd *cobra.Command, force bool, question string) bool {
	if force || !a.cfg.ConfirmDelete {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", question)
	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if strings.ToLower(strings.TrimSpace(response)) != "y" {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return false
	}
	return true
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
