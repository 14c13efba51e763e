package domain

import (
	"context"
	"time"
)

// PlacesClient is the external search provider. Payloads come back raw and
// are decoded by the app mappers.
type PlacesClient interface {
	TextSearch(ctx context.Context, query, placeType, lang, pageToken string) (map[string]any, error)
	NearbySearch(ctx context.Context, center Coords, radius int, keyword, placeType, pageToken string) (map[string]any, error)
	Geocode(ctx context.Context, address string) (map[string]any, error)
	PlaceDetails(ctx context.Context, placeID, lang string) (map[string]any, error)
}

// Exporter creates the named table if missing, replaces its contents with
// a header row plus rows, and styles the header.
type Exporter interface {
	UpsertTable(ctx context.Context, name string, rows []RestaurantRecord) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// RunLog records search-and-save runs.
type RunLog interface {
	RecordRun(ctx context.Context, run SearchRun) error
}

type SearchRun struct {
	ID         string
	Request    SearchRequest
	TotalCount int
	SheetName  string
	Saved      bool
	Message    string
	StartedAt  time.Time
	Duration   time.Duration
}
