package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"restaurant_scout/internal/domain"
)

// history is the read side of the MySQL store.
type history interface {
	ListTable(ctx context.Context, name string) ([]domain.RestaurantRecord, error)
	GetRun(ctx context.Context, id string) (domain.SearchRun, error)
}

var errNoStore = errors.New("MYSQL_DSN is not set or unreachable")

func newShowCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Read saved tables and search runs back from MySQL",
	}
	withStore := func(run func(cmd *cobra.Command, h history, arg string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			deps := st.deps(cmd)
			defer deps.Close()
			if deps.Store == nil {
				return errNoStore
			}
			return run(cmd, deps.Store, args[0])
		}
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "table NAME",
			Short: "Print the rows stored under an export table name",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(cmd *cobra.Command, h history, name string) error {
				return showTable(cmd.Context(), cmd.OutOrStdout(), h, name)
			}),
		},
		&cobra.Command{
			Use:   "run ID",
			Short: "Print one recorded search-and-save run",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(cmd *cobra.Command, h history, id string) error {
				return showRun(cmd.Context(), cmd.OutOrStdout(), h, id)
			}),
		},
	)
	return cmd
}

func showTable(ctx context.Context, w io.Writer, h history, name string) error {
	rows, err := h.ListTable(ctx, name)
	if err != nil {
		return fmt.Errorf("list %q: %w", name, err)
	}
	if len(rows) == 0 {
		_, _ = color.New(color.FgYellow).Fprintf(w, "%s: boş\n", name)
		return nil
	}
	printResults(w, domain.SearchResult{Location: name, FoodType: "kayıt"}, rows, 0)
	return nil
}

func showRun(ctx context.Context, w io.Writer, h history, id string) error {
	run, err := h.GetRun(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return err
	}
	q := run.Request
	_, _ = color.New(color.FgCyan, color.Bold).Fprintf(w, "run %s\n", run.ID)
	_, _ = fmt.Fprintf(w, "  konum:     %s\n", q.Location())
	_, _ = fmt.Fprintf(w, "  tür:       %s\n", q.EffectiveFoodType())
	if q.RestaurantName != "" {
		_, _ = fmt.Fprintf(w, "  restoran:  %s\n", q.RestaurantName)
	}
	_, _ = fmt.Fprintf(w, "  minRating: %.1f\n", q.MinRating)
	_, _ = fmt.Fprintf(w, "  sonuç:     %d\n", run.TotalCount)
	_, _ = fmt.Fprintf(w, "  başladı:   %s (%s)\n", run.StartedAt.Format("2006-01-02 15:04:05"), run.Duration)
	printSave(w, domain.SaveResult{Saved: run.Saved, Message: run.Message, SheetName: run.SheetName}, "")
	return nil
}
