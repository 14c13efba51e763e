// Package mysql is the SQL export target: each saved search becomes a set of
// rows keyed by its table name, plus a log of search-and-save runs.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_scout/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertTable replaces every row stored under name in one transaction.
func (r *Repo) UpsertTable(ctx context.Context, name string, rows []domain.RestaurantRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteTableSQL, name); err != nil {
		return fmt.Errorf("clear %q: %w", name, err)
	}
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		values := make([]string, 0, end-start)
		args := make([]any, 0, (end-start)*10)
		for i := start; i < end; i++ {
			rec := rows[i]
			values = append(values, insertRowPlaceholders)
			args = append(args,
				name,
				i,
				rec.PlaceID,
				rec.Name,
				valStr(rec.Address),
				rec.Rating,
				rec.ReviewCount,
				rec.Phone,
				rec.Hours,
				rec.MapsURL,
			)
		}
		if _, err = tx.ExecContext(ctx, insertRowsPrefix+strings.Join(values, ","), args...); err != nil {
			return fmt.Errorf("insert %q: %w", name, err)
		}
	}
	return tx.Commit()
}

// ListTable returns the rows stored under name in export order.
func (r *Repo) ListTable(ctx context.Context, name string) ([]domain.RestaurantRecord, error) {
	rows, err := r.db.QueryContext(ctx, listTableSQL, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RestaurantRecord
	for rows.Next() {
		var rec domain.RestaurantRecord
		var addr sql.NullString
		if err := rows.Scan(&rec.Name, &addr, &rec.Rating, &rec.ReviewCount, &rec.Phone, &rec.Hours, &rec.MapsURL, &rec.PlaceID); err != nil {
			return nil, err
		}
		rec.Address = addr.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repo) RecordRun(ctx context.Context, run domain.SearchRun) error {
	q := run.Request
	_, err := r.db.ExecContext(ctx, insertRunSQL,
		run.ID,
		q.City,
		valStr(q.District),
		valStr(q.FoodType),
		valStr(q.RestaurantName),
		q.MinRating,
		q.FullScan,
		run.TotalCount,
		valStr(run.SheetName),
		run.Saved,
		run.Message,
		run.StartedAt.UTC(),
		run.Duration.Milliseconds(),
	)
	return err
}

func (r *Repo) GetRun(ctx context.Context, id string) (domain.SearchRun, error) {
	var (
		run                  domain.SearchRun
		district, food, name sql.NullString
		sheet                sql.NullString
		durMS                int64
	)
	err := r.db.QueryRowContext(ctx, getRunSQL, id).Scan(
		&run.ID,
		&run.Request.City,
		&district, &food, &name,
		&run.Request.MinRating,
		&run.Request.FullScan,
		&run.TotalCount,
		&sheet,
		&run.Saved,
		&run.Message,
		&run.StartedAt,
		&durMS,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SearchRun{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.SearchRun{}, err
	}
	run.Request.District = district.String
	run.Request.FoodType = food.String
	run.Request.RestaurantName = name.String
	run.SheetName = sheet.String
	run.Duration = time.Duration(durMS) * time.Millisecond
	return run, nil
}
