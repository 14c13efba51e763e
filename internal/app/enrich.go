package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/domain"
)

// Enricher adds phone and opening hours from a detail lookup. It never fails:
// missing data becomes domain.UnknownValue.
type Enricher struct {
	places domain.PlacesClient
	lang   string
}

func NewEnricher(p domain.PlacesClient, lang string) *Enricher {
	if lang == "" {
		lang = "tr"
	}
	return &Enricher{places: p, lang: lang}
}

func (e *Enricher) Enrich(ctx context.Context, c domain.PlaceCandidate) domain.RestaurantRecord {
	rec := domain.RestaurantRecord{
		Name:        c.Name,
		Address:     c.Address,
		Rating:      c.Rating,
		ReviewCount: c.ReviewCount,
		Phone:       domain.UnknownValue,
		Hours:       domain.UnknownValue,
		MapsURL:     domain.MapsURL(c.PlaceID),
		PlaceID:     c.PlaceID,
	}

	raw, err := e.places.PlaceDetails(ctx, c.PlaceID, e.lang)
	if err != nil {
		log.Warn().Err(err).Str("place_id", c.PlaceID).Str("name", c.Name).Msg("details unavailable")
		observability.ObserveEnrichment(true)
		return rec
	}

	phone, hours := mapDetails(raw)
	if phone != "" {
		rec.Phone = phone
	}
	if hours != "" {
		rec.Hours = hours
	}
	observability.ObserveEnrichment(phone == "")
	return rec
}
