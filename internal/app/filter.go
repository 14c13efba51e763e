package app

import (
	"sort"
	"strings"

	"restaurant_scout/internal/domain"
	"restaurant_scout/internal/geo"
	"restaurant_scout/internal/terms"
	"restaurant_scout/internal/text"
)

// Reasons a candidate is dropped, in gate order.
const (
	RejectRating   = "rating"
	RejectLocality = "locality"
	RejectName     = "name"
	RejectCategory = "category"
)

// Words that mark a place as a general eatery whatever it serves.
var genericNameKeywords = []string{"restoran", "restaurant", "lokanta", "yemek evi", "evi", "salonu"}

// A well-reviewed place passes the category gate without a keyword hit.
const (
	popularRating  = 4.0
	popularReviews = 50
)

type Filter struct {
	terms *terms.Expander
	geo   *geo.Resolver
}

func NewFilter(t *terms.Expander, g *geo.Resolver) *Filter {
	if t == nil {
		t = terms.Default()
	}
	if g == nil {
		g = geo.Default()
	}
	return &Filter{terms: t, geo: g}
}

// rules are the request's gates resolved once and reused per candidate.
type rules struct {
	minRating float64

	district       string
	variations     []string
	districtBounds *domain.Bounds
	city           string
	cityBounds     *domain.Bounds
	competing      []string

	name string

	category      bool
	categoryTerms []string
}

func (f *Filter) rulesFor(req domain.SearchRequest) rules {
	r := rules{minRating: req.MinRating}

	if req.District != "" {
		r.district = text.Normalize(req.District)
		for _, v := range f.geo.Variations(req.District) {
			r.variations = append(r.variations, text.Normalize(v))
		}
		if b, ok := f.geo.Bounds(req.District); ok {
			r.districtBounds = &b
		}
		r.city = text.Normalize(req.City)
		if b, ok := f.geo.CityBounds(req.City); ok {
			r.cityBounds = &b
		}
		r.competing = f.geo.Competing(req.City, req.District)
	}

	r.name = text.Normalize(req.RestaurantName)

	if req.FoodType != "" && text.Normalize(req.FoodType) != domain.GenericFoodType {
		r.category = true
		for _, t := range f.terms.Expand(req.FoodType) {
			r.categoryTerms = append(r.categoryTerms, text.Normalize(t))
		}
	}
	return r
}

// Admit runs the gates for one candidate and names the first one it fails.
func (f *Filter) Admit(c domain.PlaceCandidate, req domain.SearchRequest) (bool, string) {
	return f.rulesFor(req).admit(c)
}

// Apply keeps admitted candidates, highest rating first. Equal ratings keep
// discovery order.
func (f *Filter) Apply(cands []domain.PlaceCandidate, req domain.SearchRequest) []domain.PlaceCandidate {
	r := f.rulesFor(req)
	out := make([]domain.PlaceCandidate, 0, len(cands))
	for _, c := range cands {
		if ok, _ := r.admit(c); ok {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out
}

func (r rules) admit(c domain.PlaceCandidate) (bool, string) {
	if c.Rating < r.minRating {
		return false, RejectRating
	}
	if r.district != "" && !r.locality(c) {
		return false, RejectLocality
	}
	if r.name != "" && !strings.Contains(text.Normalize(c.Name), r.name) {
		return false, RejectName
	}
	if r.category && !r.relevant(c) {
		return false, RejectCategory
	}
	return true, ""
}

func (r rules) locality(c domain.PlaceCandidate) bool {
	addr := text.Normalize(c.Address)
	if strings.Contains(addr, r.district) {
		return true
	}
	if containsAny(addr, r.variations) {
		return true
	}
	if c.Coords != nil && r.districtBounds != nil && r.districtBounds.Contains(*c.Coords) {
		return true
	}
	// Many records stop at the city. Accept those unless another district
	// is named or the point is plainly outside the city.
	if r.city == "" || !strings.Contains(addr, r.city) || containsAny(addr, r.competing) {
		return false
	}
	if c.Coords != nil && r.cityBounds != nil && !r.cityBounds.Contains(*c.Coords) {
		return false
	}
	return true
}

func (r rules) relevant(c domain.PlaceCandidate) bool {
	name := text.Normalize(c.Name)
	if containsAny(name, r.categoryTerms) || containsAny(name, genericNameKeywords) {
		return true
	}
	return c.Rating >= popularRating && c.ReviewCount >= popularReviews
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
