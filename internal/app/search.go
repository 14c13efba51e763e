package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/domain"
	"restaurant_scout/internal/geo"
	"restaurant_scout/internal/terms"
	"restaurant_scout/internal/text"
)

const (
	DefaultMaxTerms = 12
	DefaultCacheTTL = 15 * time.Minute

	// full-scan grid over the city rectangle
	gridRows = 3
	gridCols = 3
)

type SearchOptions struct {
	Language     string
	MaxPages     int
	MaxTerms     int
	PageDelay    time.Duration
	NearbyRadius int
	CacheTTL     time.Duration
	Wait         func(ctx context.Context, d time.Duration) bool
	Terms        *terms.Expander
	Geo          *geo.Resolver
}

// SearchService runs one search at a time end to end. Provider calls inside a
// search are sequential.
type SearchService struct {
	places   domain.PlacesClient
	cache    domain.Cache
	orch     *Orchestrator
	filter   *Filter
	enricher *Enricher
	terms    *terms.Expander
	geo      *geo.Resolver
	maxTerms int
	ttl      time.Duration
}

// NewSearchService accepts a nil places client; every search then fails
// with domain.ErrNotConfigured. cache may be nil.
func NewSearchService(p domain.PlacesClient, c domain.Cache, o SearchOptions) *SearchService {
	if o.Terms == nil {
		o.Terms = terms.Default()
	}
	if o.Geo == nil {
		o.Geo = geo.Default()
	}
	if o.MaxTerms <= 0 {
		o.MaxTerms = DefaultMaxTerms
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return &SearchService{
		places: p,
		cache:  c,
		orch: NewOrchestrator(p, OrchestratorOptions{
			Language:  o.Language,
			MaxPages:  o.MaxPages,
			PageDelay: o.PageDelay,
			Radius:    o.NearbyRadius,
			Wait:      o.Wait,
		}),
		filter:   NewFilter(o.Terms, o.Geo),
		enricher: NewEnricher(p, o.Language),
		terms:    o.Terms,
		geo:      o.Geo,
		maxTerms: o.MaxTerms,
		ttl:      o.CacheTTL,
	}
}

// Search returns one page of the ranked, enriched result list.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	req = req.Trimmed()
	all, err := s.Collect(ctx, req)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return pageOf(all, req), nil
}

func pageOf(all []domain.RestaurantRecord, req domain.SearchRequest) domain.SearchResult {
	data, more := domain.Paginate(all, req.Page, req.PerPage)
	return domain.SearchResult{
		Data:       data,
		Count:      len(data),
		TotalCount: len(all),
		Page:       req.Page,
		PerPage:    req.PerPage,
		HasMore:    more,
		Location:   req.Location(),
		FoodType:   req.EffectiveFoodType(),
	}
}

// Collect returns the full ranked, enriched list for req.
func (s *SearchService) Collect(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error) {
	req = req.Trimmed()
	if s.places == nil {
		return nil, domain.ErrNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := cacheKey(req)
	if s.cache != nil {
		var cached []domain.RestaurantRecord
		ok, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	start := time.Now()
	q := s.Plan(req)
	h := s.orch.Search(ctx, q)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := s.filter.Apply(h.Candidates, req)
	out := make([]domain.RestaurantRecord, 0, len(kept))
	for _, c := range kept {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, s.enricher.Enrich(ctx, c))
	}

	dur := time.Since(start)
	observability.ObserveSearch(dur)
	log.Info().
		Str("location", q.Location).
		Str("food_type", req.EffectiveFoodType()).
		Str("name", req.RestaurantName).
		Int("candidates", len(h.Candidates)).
		Int("kept", len(out)).
		Int("skipped_units", h.Skipped()).
		Dur("took", dur).
		Msg("search done")

	// A partial harvest is returned but not remembered.
	if s.cache != nil && h.Skipped() == 0 {
		if err := s.cache.Set(ctx, key, out, int(s.ttl/time.Second)); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
		}
	}
	return out, nil
}

// Plan turns a trimmed request into provider queries.
func (s *SearchService) Plan(req domain.SearchRequest) Query {
	loc := req.Location()
	q := Query{Location: loc, Keyword: req.EffectiveFoodType()}

	var expanded []string
	if req.NameOnly() {
		expanded = s.terms.Expand(req.RestaurantName)
	} else {
		expanded = s.terms.Expand(req.EffectiveFoodType())
	}
	if len(expanded) > s.maxTerms {
		expanded = expanded[:s.maxTerms]
	}

	// full scan sweeps the city for a named restaurant on top of the text queries
	if req.FullScan && req.NameOnly() {
		if b, ok := s.geo.CityBounds(req.City); ok {
			q.Grid = geo.GridCenters(b, gridRows, gridCols)
			q.GridTerms = expanded
		} else {
			log.Warn().Str("city", req.City).Msg("no city bounds for full scan, using text search")
		}
	}

	seen := map[string]struct{}{}
	for _, t := range expanded {
		var qs string
		switch {
		case req.NameOnly() || req.RestaurantName == "":
			qs = fmt.Sprintf("%s in %s", t, loc)
		case s.terms.IsGeneric(t):
			qs = fmt.Sprintf("%s in %s", req.RestaurantName, loc)
		default:
			qs = fmt.Sprintf("%s %s in %s", req.RestaurantName, t, loc)
		}
		if _, dup := seen[qs]; dup {
			continue
		}
		seen[qs] = struct{}{}
		q.Texts = append(q.Texts, qs)
	}
	return q
}

func cacheKey(req domain.SearchRequest) string {
	parts := []string{
		text.Normalize(req.City),
		text.Normalize(req.District),
		text.Normalize(req.FoodType),
		text.Normalize(req.RestaurantName),
		strconv.FormatFloat(req.MinRating, 'f', -1, 64),
		strconv.FormatBool(req.FullScan),
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return "search:v1:" + hex.EncodeToString(sum[:])
}
