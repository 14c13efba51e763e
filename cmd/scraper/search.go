package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"restaurant_scout/internal/domain"
)

type searchFlags struct {
	req   domain.SearchRequest
	save  bool
	sheet string
	limit int
}

func newSearchCmd(st *rootState) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the ranked results",
		Example: `  scraper search --city İstanbul --district Üsküdar --food köfteci
  scraper search --city İstanbul --name "Köfteci Yusuf" --full-scan --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := st.deps(cmd)
			defer deps.Close()

			f.req.Page = 1
			f.req.PerPage = domain.DefaultPerPage
			res, err := deps.Export.SearchAndSave(cmd.Context(), f.req, f.save, f.sheet)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), res.SearchResult, res.All, f.limit)
			if res.Save != nil {
				printSave(cmd.OutOrStdout(), *res.Save, res.RunID)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.req.City, "city", "İstanbul", "city")
	fl.StringVar(&f.req.District, "district", "", "district")
	fl.StringVar(&f.req.FoodType, "food", "", "food type, e.g. köfteci")
	fl.StringVar(&f.req.RestaurantName, "name", "", "restaurant name filter")
	fl.Float64Var(&f.req.MinRating, "min-rating", domain.DefaultMinRating, "minimum rating")
	fl.BoolVar(&f.req.FullScan, "full-scan", false, "also sweep a grid over the city for --name only searches (many requests)")
	fl.BoolVar(&f.save, "save", false, "write the results to the export target")
	fl.StringVar(&f.sheet, "sheet", "", "export table name (derived when empty)")
	fl.IntVar(&f.limit, "limit", 20, "rows to print, 0 for all")
	return cmd
}

// printResults walks the whole ranked list, not just the first API page.
// limit 0 prints everything.
func printResults(w io.Writer, res domain.SearchResult, all []domain.RestaurantRecord, limit int) {
	head := color.New(color.FgCyan, color.Bold)
	_, _ = head.Fprintf(w, "%s / %s: %d restoran\n", res.Location, res.FoodType, len(all))

	rating := color.New(color.FgYellow)
	for i, r := range all {
		if limit > 0 && i >= limit {
			_, _ = fmt.Fprintf(w, "... %d more\n", len(all)-limit)
			break
		}
		_, _ = fmt.Fprintf(w, "%3d. %s ", i+1, r.Name)
		_, _ = rating.Fprintf(w, "%.1f", r.Rating)
		_, _ = fmt.Fprintf(w, " (%d)\n     %s\n     %s\n", r.ReviewCount, r.Address, r.Phone)
	}
}

func printSave(w io.Writer, s domain.SaveResult, runID string) {
	c := color.New(color.FgGreen)
	if !s.Saved {
		c = color.New(color.FgRed)
	}
	_, _ = c.Fprintf(w, "%s", s.Message)
	if s.SheetName != "" {
		_, _ = fmt.Fprintf(w, " [%s]", s.SheetName)
	}
	if runID != "" {
		_, _ = fmt.Fprintf(w, " run %s", runID)
	}
	_, _ = fmt.Fprintln(w)
}
