// Package sheets writes result tables to a Google spreadsheet, one tab per
// saved search.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/domain"
)

type Exporter struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// New builds an exporter for one spreadsheet. credsJSON is a service account
// key; it may be empty when opts already carry credentials or a client.
func New(ctx context.Context, spreadsheetID string, credsJSON []byte, opts ...option.ClientOption) (*Exporter, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id: %w", domain.ErrNotConfigured)
	}
	all := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	if len(credsJSON) > 0 {
		all = append(all, option.WithCredentialsJSON(credsJSON))
	}
	all = append(all, opts...)

	svc, err := gsheets.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("sheets: client: %w", err)
	}
	return &Exporter{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// UpsertTable makes sure the tab exists, replaces its contents with the
// header plus rows and styles the header. Styling trouble is only logged.
func (e *Exporter) UpsertTable(ctx context.Context, name string, rows []domain.RestaurantRecord) error {
	sheetID, err := e.ensureSheet(ctx, name)
	if err != nil {
		return err
	}

	quoted := quote(name)
	if err := observe("values.clear", func() error {
		_, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, quoted+"!A:Z", &gsheets.ClearValuesRequest{}).Context(ctx).Do()
		return err
	}); err != nil {
		return fmt.Errorf("sheets: clear %q: %w", name, err)
	}

	values := make([][]any, 0, len(rows)+1)
	header := make([]any, len(domain.RecordHeader))
	for i, h := range domain.RecordHeader {
		header[i] = h
	}
	values = append(values, header)
	for _, r := range rows {
		values = append(values, r.Row())
	}
	if err := observe("values.update", func() error {
		_, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, quoted+"!A1", &gsheets.ValueRange{Values: values}).
			ValueInputOption("RAW").Context(ctx).Do()
		return err
	}); err != nil {
		return fmt.Errorf("sheets: write %q: %w", name, err)
	}

	if err := e.styleHeader(ctx, sheetID); err != nil {
		log.Warn().Err(err).Str("sheet", name).Msg("header formatting failed")
	}
	return nil
}

func (e *Exporter) ensureSheet(ctx context.Context, name string) (int64, error) {
	var ss *gsheets.Spreadsheet
	if err := observe("spreadsheets.get", func() error {
		var err error
		ss, err = e.svc.Spreadsheets.Get(e.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
		return err
	}); err != nil {
		return 0, fmt.Errorf("sheets: open spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == name {
			return s.Properties.SheetId, nil
		}
	}

	var resp *gsheets.BatchUpdateSpreadsheetResponse
	if err := observe("spreadsheets.batchUpdate", func() error {
		var err error
		resp, err = e.svc.Spreadsheets.BatchUpdate(e.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
			Requests: []*gsheets.Request{{AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: name},
			}}},
		}).Context(ctx).Do()
		return err
	}); err != nil {
		return 0, fmt.Errorf("sheets: add %q: %w", name, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return 0, errors.New("sheets: add sheet returned no properties")
	}
	log.Info().Str("sheet", name).Msg("sheet created")
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func (e *Exporter) styleHeader(ctx context.Context, sheetID int64) error {
	reqs := []*gsheets.Request{
		{RepeatCell: &gsheets.RepeatCellRequest{
			Range: &gsheets.GridRange{SheetId: sheetID, StartRowIndex: 0, EndRowIndex: 1, ForceSendFields: []string{"SheetId", "StartRowIndex"}},
			Cell: &gsheets.CellData{UserEnteredFormat: &gsheets.CellFormat{
				TextFormat:      &gsheets.TextFormat{Bold: true},
				BackgroundColor: &gsheets.Color{Red: 0.9, Green: 0.9, Blue: 0.9},
			}},
			Fields: "userEnteredFormat(textFormat,backgroundColor)",
		}},
		{AutoResizeDimensions: &gsheets.AutoResizeDimensionsRequest{
			Dimensions: &gsheets.DimensionRange{
				SheetId: sheetID, Dimension: "COLUMNS", StartIndex: 0, EndIndex: int64(len(domain.RecordHeader)),
				ForceSendFields: []string{"SheetId", "StartIndex"},
			},
		}},
	}
	return observe("spreadsheets.batchUpdate", func() error {
		_, err := e.svc.Spreadsheets.BatchUpdate(e.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).Context(ctx).Do()
		return err
	})
}

// quote wraps a tab title for A1 notation.
func quote(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func observe(endpoint string, call func() error) error {
	start := time.Now()
	err := call()
	status := http.StatusOK
	if err != nil {
		status = 0
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			status = gerr.Code
		}
	}
	observability.ObserveExternal("sheets", endpoint, status, time.Since(start))
	return err
}
