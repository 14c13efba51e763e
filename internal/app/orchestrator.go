package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/domain"
)

const (
	DefaultMaxPages     = 3
	DefaultPageDelay    = 2 * time.Second
	DefaultNearbyRadius = 2000

	// below this many unique hits a nearby search around the geocoded
	// location tops the set up
	supplementThreshold = 30
	placeCategory       = "restaurant"
)

// Query is what the orchestrator fetches for one search request.
type Query struct {
	Location  string          // free text, also geocoded for the nearby supplement
	Texts     []string        // one paginated text search each
	Grid      []domain.Coords // full-scan centers
	GridTerms []string        // keywords searched around every grid center
	Keyword   string          // nearby supplement keyword
}

// UnitResult is the outcome of one provider page. Err != nil means the unit
// was skipped; whatever earlier units gathered is kept.
type UnitResult struct {
	Phase string // text|grid|nearby|geocode
	Label string
	Page  int
	Added int
	Err   error
}

// Harvest is the deduplicated candidate set plus the per-unit trail.
type Harvest struct {
	Candidates []domain.PlaceCandidate
	Units      []UnitResult
}

func (h Harvest) Skipped() int {
	n := 0
	for _, u := range h.Units {
		if u.Err != nil {
			n++
		}
	}
	return n
}

type OrchestratorOptions struct {
	Language  string
	MaxPages  int
	PageDelay time.Duration
	Radius    int
	// Wait blocks for d before a continuation token is used. false aborts
	// the current pagination. Defaults to a context-aware sleep.
	Wait func(ctx context.Context, d time.Duration) bool
}

// Orchestrator issues provider calls strictly one after another.
type Orchestrator struct {
	places    domain.PlacesClient
	lang      string
	maxPages  int
	pageDelay time.Duration
	radius    int
	wait      func(ctx context.Context, d time.Duration) bool
}

func NewOrchestrator(p domain.PlacesClient, o OrchestratorOptions) *Orchestrator {
	if o.Language == "" {
		o.Language = "tr"
	}
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	if o.PageDelay <= 0 {
		o.PageDelay = DefaultPageDelay
	}
	if o.Radius <= 0 {
		o.Radius = DefaultNearbyRadius
	}
	if o.Wait == nil {
		o.Wait = sleepCtx
	}
	return &Orchestrator{places: p, lang: o.Language, maxPages: o.MaxPages, pageDelay: o.PageDelay, radius: o.Radius, wait: o.Wait}
}

type pageFetcher func(ctx context.Context, token string) (map[string]any, error)

var errNoLocation = errors.New("geocoder returned no coordinates")

// Search runs text searches, then the grid, then the nearby supplement,
// merging everything by place id. First sighting wins.
func (o *Orchestrator) Search(ctx context.Context, q Query) Harvest {
	col := newCollector()
	var units []UnitResult

	for _, text := range q.Texts {
		text := text
		units = append(units, o.paginate(ctx, col, "text", text, func(ctx context.Context, tok string) (map[string]any, error) {
			return o.places.TextSearch(ctx, text, placeCategory, o.lang, tok)
		})...)
	}

	for _, center := range q.Grid {
		for _, term := range q.GridTerms {
			center, term := center, term
			units = append(units, o.paginate(ctx, col, "grid", term, func(ctx context.Context, tok string) (map[string]any, error) {
				return o.places.NearbySearch(ctx, center, o.radius, term, placeCategory, tok)
			})...)
		}
	}

	if col.len() < supplementThreshold && q.Location != "" && ctx.Err() == nil {
		units = append(units, o.supplement(ctx, col, q)...)
	}

	log.Debug().
		Str("location", q.Location).
		Int("texts", len(q.Texts)).
		Int("grid", len(q.Grid)*len(q.GridTerms)).
		Int("candidates", col.len()).
		Msg("provider harvest done")

	return Harvest{Candidates: col.items, Units: units}
}

// supplement geocodes the location and runs a nearby search around it.
func (o *Orchestrator) supplement(ctx context.Context, col *collector, q Query) []UnitResult {
	address := q.Location + ", Türkiye"
	raw, err := o.places.Geocode(ctx, address)
	if err == nil {
		if pts := mapGeocode(raw); len(pts) > 0 {
			center := pts[0]
			located := UnitResult{Phase: "geocode", Label: address, Page: 1}
			observability.ObserveUnit("geocode", nil)
			return append([]UnitResult{located}, o.paginate(ctx, col, "nearby", q.Keyword, func(ctx context.Context, tok string) (map[string]any, error) {
				return o.places.NearbySearch(ctx, center, o.radius, q.Keyword, placeCategory, tok)
			})...)
		}
		err = errNoLocation
	}
	log.Warn().Err(err).Str("address", address).Msg("nearby supplement skipped")
	observability.ObserveUnit("geocode", err)
	return []UnitResult{{Phase: "geocode", Label: address, Page: 1, Err: err}}
}

// paginate follows continuation tokens up to maxPages pages in total. Each
// page after the first waits pageDelay, since a fresh token is not yet valid.
// A failed page ends this pagination only.
func (o *Orchestrator) paginate(ctx context.Context, col *collector, phase, label string, fetch pageFetcher) []UnitResult {
	var out []UnitResult
	token := ""
	for page := 1; page <= o.maxPages; page++ {
		if page > 1 && !o.wait(ctx, o.pageDelay) {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			out = append(out, UnitResult{Phase: phase, Label: label, Page: page, Err: err})
			observability.ObserveUnit(phase, err)
			break
		}

		raw, err := fetch(ctx, token)
		if err != nil {
			log.Warn().Err(err).Str("phase", phase).Str("term", label).Int("page", page).Msg("search page skipped")
			out = append(out, UnitResult{Phase: phase, Label: label, Page: page, Err: err})
			observability.ObserveUnit(phase, err)
			break
		}

		cands, next := mapPlacesPage(raw)
		added := col.add(cands)
		out = append(out, UnitResult{Phase: phase, Label: label, Page: page, Added: added})
		observability.ObserveUnit(phase, nil)

		if next == "" {
			break
		}
		token = next
	}
	return out
}

// collector is request-local; it never outlives one Search call.
type collector struct {
	seen  map[string]struct{}
	items []domain.PlaceCandidate
}

func newCollector() *collector { return &collector{seen: map[string]struct{}{}} }

func (c *collector) len() int { return len(c.items) }

func (c *collector) add(cs []domain.PlaceCandidate) int {
	n := 0
	for _, p := range cs {
		if _, dup := c.seen[p.PlaceID]; dup {
			continue
		}
		c.seen[p.PlaceID] = struct{}{}
		c.items = append(c.items, p)
		n++
	}
	return n
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
