package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/domain"
	"restaurant_scout/internal/text"
)

const (
	msgNothingFound  = "Restoran bulunamadı"
	msgExportFailed  = "Sheet güncellenemedi"
	msgSavedFmt      = "%d restoran bulundu ve kaydedildi"
	msgNoExportSetup = "Dışa aktarma hedefi yapılandırılmamış"

	maxSheetName = 100
)

// characters a spreadsheet tab title may not contain
var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_", "'", "",
)

type ExportService struct {
	search   *SearchService
	exporter domain.Exporter
	target   string
	runs     domain.RunLog
	now      func() time.Time
}

// NewExportService wires the export step. exporter and runs may be nil.
func NewExportService(s *SearchService, e domain.Exporter, target string, runs domain.RunLog) *ExportService {
	if target == "" {
		target = "none"
	}
	return &ExportService{search: s, exporter: e, target: target, runs: runs, now: time.Now}
}

type SearchAndSaveResult struct {
	domain.SearchResult
	Save *domain.SaveResult
	// All is the whole ranked list the page was cut from.
	All []domain.RestaurantRecord
	// RunID names the run log entry; empty when no run log is wired.
	RunID string
}

// SearchAndSave runs the search once and, when save is set, writes the whole
// ranked list to the export target. Export trouble only shows in Save.
func (x *ExportService) SearchAndSave(ctx context.Context, req domain.SearchRequest, save bool, sheetName string) (SearchAndSaveResult, error) {
	req = req.Trimmed()
	started := x.now()

	all, err := x.search.Collect(ctx, req)
	if err != nil {
		return SearchAndSaveResult{}, err
	}
	out := SearchAndSaveResult{SearchResult: pageOf(all, req), All: all}
	if !save {
		return out, nil
	}

	if sheetName == "" {
		sheetName = SheetName(req)
	}
	res := x.save(ctx, sheetName, all)
	out.Save = &res
	out.RunID = x.record(ctx, req, res, len(all), started)
	return out, nil
}

func (x *ExportService) save(ctx context.Context, sheet string, rows []domain.RestaurantRecord) domain.SaveResult {
	res := domain.SaveResult{SheetName: sheet, Count: len(rows)}
	switch {
	case x.exporter == nil:
		res.Message = msgNoExportSetup
		return res
	case len(rows) == 0:
		res.Message = msgNothingFound
		return res
	}

	err := x.exporter.UpsertTable(ctx, sheet, rows)
	observability.ObserveExport(x.target, err)
	if err != nil {
		log.Error().Err(err).Str("target", x.target).Str("sheet", sheet).Msg("export failed")
		res.Message = msgExportFailed
		return res
	}
	log.Info().Str("target", x.target).Str("sheet", sheet).Int("rows", len(rows)).Msg("exported")
	res.Saved = true
	res.Message = fmt.Sprintf(msgSavedFmt, len(rows))
	return res
}

func (x *ExportService) record(ctx context.Context, req domain.SearchRequest, res domain.SaveResult, total int, started time.Time) string {
	if x.runs == nil {
		return ""
	}
	run := domain.SearchRun{
		ID:         uuid.NewString(),
		Request:    req,
		TotalCount: total,
		SheetName:  res.SheetName,
		Saved:      res.Saved,
		Message:    res.Message,
		StartedAt:  started,
		Duration:   x.now().Sub(started),
	}
	if err := x.runs.RecordRun(ctx, run); err != nil {
		log.Warn().Err(err).Str("run_id", run.ID).Msg("run log write failed")
		return ""
	}
	return run.ID
}

type BatchResult struct {
	Entry domain.BatchSearch
	Total int
	Save  domain.SaveResult
	Err   error
}

// RunBatch searches and saves one batch entry.
func (x *ExportService) RunBatch(ctx context.Context, b domain.BatchSearch) BatchResult {
	r, err := x.SearchAndSave(ctx, b.Request, true, b.SheetName)
	if err != nil {
		return BatchResult{Entry: b, Err: err}
	}
	return BatchResult{Entry: b, Total: r.TotalCount, Save: *r.Save}
}

// Batch runs entries one after another. Callers wanting parallelism run
// RunBatch from their own workers.
func (x *ExportService) Batch(ctx context.Context, entries []domain.BatchSearch) []BatchResult {
	out := make([]BatchResult, 0, len(entries))
	for _, b := range entries {
		if ctx.Err() != nil {
			out = append(out, BatchResult{Entry: b, Err: ctx.Err()})
			continue
		}
		out = append(out, x.RunBatch(ctx, b))
	}
	return out
}

// SheetName derives the export table name from the request, e.g.
// "Uskudar_Kofteci_4.5+".
func SheetName(req domain.SearchRequest) string {
	var parts []string
	for _, p := range []string{req.District, req.RestaurantName, req.FoodType} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, strconv.FormatFloat(req.MinRating, 'f', -1, 64)+"+")
	name := sheetNameReplacer.Replace(text.Fold(strings.Join(parts, "_")))
	for utf8.RuneCountInString(name) > maxSheetName {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return name
}
