// Package geo resolves district spellings and approximate rectangles.
package geo

import (
	"restaurant_scout/internal/domain"
	"restaurant_scout/internal/text"
)

// Resolver is built once and only read afterwards.
type Resolver struct {
	variations map[string][]string
	alias      map[string]string // any normalized variant -> canonical key
	bounds     map[string]domain.Bounds
	cities     map[string]domain.Bounds
	competing  map[string][]string
}

var std = New(nil)

// Default resolves against the built-in İstanbul tables.
func Default() *Resolver { return std }

// New builds a resolver. cityDistricts (city -> district names) supplies the
// competing-district lists for cities without a curated one.
func New(cityDistricts map[string][]string) *Resolver {
	r := &Resolver{
		variations: districtVariations,
		alias:      map[string]string{},
		bounds:     districtBounds,
		cities:     cityBounds,
		competing:  map[string][]string{},
	}
	for key, vs := range districtVariations {
		r.alias[key] = key
		for _, v := range vs {
			r.alias[text.Normalize(v)] = key
		}
	}
	for city, ds := range cityDistricts {
		c := text.Normalize(city)
		names := make([]string, 0, len(ds))
		for _, d := range ds {
			names = append(names, text.Normalize(d))
		}
		r.competing[c] = names
	}
	for city, ds := range competingDistricts {
		r.competing[city] = ds
	}
	return r
}

func (r *Resolver) canonical(district string) string {
	n := text.Normalize(district)
	if k, ok := r.alias[n]; ok {
		return k
	}
	return n
}

// Variations returns the normalized district plus every known spelling.
// Unknown districts resolve to just themselves.
func (r *Resolver) Variations(district string) []string {
	n := text.Normalize(district)
	if n == "" {
		return nil
	}
	out := []string{n}
	seen := map[string]struct{}{n: {}}
	for _, v := range r.variations[r.canonical(n)] {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Bounds returns the district rectangle when one is known.
func (r *Resolver) Bounds(district string) (domain.Bounds, bool) {
	b, ok := r.bounds[r.canonical(district)]
	return b, ok
}

// CityBounds returns the coarse city rectangle when one is known.
func (r *Resolver) CityBounds(city string) (domain.Bounds, bool) {
	b, ok := r.cities[text.Normalize(city)]
	return b, ok
}

// Competing lists normalized names of districts other than district that,
// when present in an address, rule out a city-wide match.
func (r *Resolver) Competing(city, district string) []string {
	own := map[string]struct{}{}
	for _, v := range r.Variations(district) {
		own[text.Normalize(v)] = struct{}{}
	}
	var out []string
	for _, d := range r.competing[text.Normalize(city)] {
		if _, ok := own[d]; ok {
			continue
		}
		out = append(out, d)
	}
	return out
}

// GridCenters spreads rows*cols points evenly inside b, away from the edges.
func GridCenters(b domain.Bounds, rows, cols int) []domain.Coords {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	latStep := (b.North - b.South) / float64(rows+1)
	lngStep := (b.East - b.West) / float64(cols+1)
	out := make([]domain.Coords, 0, rows*cols)
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			out = append(out, domain.Coords{
				Lat: b.South + float64(i)*latStep,
				Lng: b.West + float64(j)*lngStep,
			})
		}
	}
	return out
}
