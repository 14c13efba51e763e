// Package bootstrap wires adapters into the search and export services for
// the binaries under cmd/.
package bootstrap

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"restaurant_scout/internal/adapters/places"
	redisad "restaurant_scout/internal/adapters/redis"
	"restaurant_scout/internal/adapters/sheets"
	"restaurant_scout/internal/app"
	"restaurant_scout/internal/domain"
	"restaurant_scout/internal/geo"
	"restaurant_scout/internal/shared"
	mysqlrepo "restaurant_scout/internal/storage/mysql"
)

const (
	TargetSheets = "sheets"
	TargetMySQL  = "mysql"
	TargetNone   = "none"
)

type Deps struct {
	Search *app.SearchService
	Export *app.ExportService
	// Store is the MySQL repo when MYSQL_DSN is reachable, else nil.
	Store *mysqlrepo.Repo

	closers []func() error
}

// Close releases the database and cache connections.
func (d *Deps) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			log.Warn().Err(err).Msg("close failed")
		}
	}
}

// Build never fails on a missing optional backend: without a maps key every
// search reports domain.ErrNotConfigured, without redis nothing is cached and
// without an export target saves report so.
func Build(ctx context.Context, cfg shared.Config) *Deps {
	d := &Deps{}

	var pc domain.PlacesClient
	if client, err := places.New(cfg.MapsBase, cfg.MapsKey, cfg.MapsRPS); err != nil {
		log.Warn().Err(err).Msg("places client disabled")
	} else {
		pc = client
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rc.Ping(pctx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, caching disabled")
			_ = rc.Close()
		} else {
			cache = rc
			d.closers = append(d.closers, rc.Close)
		}
	}

	var repo *mysqlrepo.Repo
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err == nil {
			err = db.PingContext(ctx)
		}
		if err != nil {
			log.Warn().Err(err).Msg("mysql unavailable")
		} else {
			log.Info().Msg("database connection ok")
			repo = mysqlrepo.New(db)
			d.closers = append(d.closers, db.Close)
		}
	}

	search := app.NewSearchService(pc, cache, app.SearchOptions{
		Language:     cfg.MapsLanguage,
		MaxPages:     cfg.MaxPages,
		MaxTerms:     cfg.MaxTerms,
		PageDelay:    cfg.PageDelay,
		NearbyRadius: cfg.NearbyRadius,
		CacheTTL:     cfg.CacheTTL,
		Geo:          geo.New(shared.Cities),
	})

	var (
		exporter domain.Exporter
		runs     domain.RunLog
	)
	if repo != nil {
		runs = repo
	}
	switch cfg.ExportTarget {
	case TargetSheets:
		if e, err := newSheets(ctx, cfg); err != nil {
			log.Warn().Err(err).Msg("sheets export disabled")
		} else {
			exporter = e
		}
	case TargetMySQL:
		if repo != nil {
			exporter = repo
		} else {
			log.Warn().Msg("EXPORT_TARGET=mysql without a reachable MYSQL_DSN")
		}
	case TargetNone:
	default:
		log.Warn().Str("target", cfg.ExportTarget).Msg("unknown export target")
	}

	d.Search = search
	d.Store = repo
	d.Export = app.NewExportService(search, exporter, cfg.ExportTarget, runs)
	return d
}

func newSheets(ctx context.Context, cfg shared.Config) (*sheets.Exporter, error) {
	creds, err := cfg.SheetsCredentialsJSON()
	if err != nil {
		return nil, err
	}
	return sheets.New(ctx, cfg.SpreadsheetID, creds)
}
