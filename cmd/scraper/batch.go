package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"restaurant_scout/internal/app"
	"restaurant_scout/internal/domain"
	"restaurant_scout/internal/shared"
)

func newBatchCmd(st *rootState) *cobra.Command {
	var (
		file    string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Search and save every entry of a batch file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := shared.DefaultBatch()
			if file != "" {
				var err error
				if entries, err = shared.LoadBatch(file); err != nil {
					return err
				}
			}
			if workers <= 0 {
				workers = st.cfg.Workers
			}

			deps := st.deps(cmd)
			defer deps.Close()

			log.Info().Int("entries", len(entries)).Int("workers", workers).Msg("batch starting")
			results := runBatch(cmd.Context(), deps.Export, entries, workers)

			failed := 0
			for _, r := range results {
				name := app.SheetName(r.Entry.Request)
				if r.Entry.SheetName != "" {
					name = r.Entry.SheetName
				}
				switch {
				case r.Err != nil:
					failed++
					_, _ = color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", name, r.Err)
				case !r.Save.Saved:
					failed++
					_, _ = color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "- %s: %s\n", name, r.Save.Message)
				default:
					_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s: %s\n", name, r.Save.Message)
				}
			}
			log.Info().Int("entries", len(results)).Int("failed", failed).Msg("batch completed")
			if failed == len(results) && failed > 0 {
				return fmt.Errorf("all %d batch entries failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML batch file (built-in list when empty)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel searches (BATCH_WORKERS when 0)")
	return cmd
}

// runBatch bounds concurrency with a weighted semaphore. Each search stays
// sequential internally; results keep entry order.
func runBatch(ctx context.Context, x *app.ExportService, entries []domain.BatchSearch, workers int) []app.BatchResult {
	if workers <= 1 {
		return x.Batch(ctx, entries)
	}
	out := make([]app.BatchResult, len(entries))
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for i, e := range entries {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			out[i] = app.BatchResult{Entry: e, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, e domain.BatchSearch) {
			defer wg.Done()
			defer sem.Release(1)
			out[i] = x.RunBatch(ctx, e)
			if out[i].Err != nil {
				log.Warn().Err(out[i].Err).Str("location", e.Request.Location()).Msg("batch entry failed")
			}
		}(i, e)
	}
	wg.Wait()
	return out
}
