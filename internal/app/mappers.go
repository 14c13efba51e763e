package app

import (
	"strconv"
	"strings"

	"restaurant_scout/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Provider payloads differ between text search, nearby search and the newer
// places API shape, so every field is looked up through its aliases.
var placeAliases = map[string][]string{
	"id":      {"place_id", "placeId", "id"},
	"name":    {"name", "displayName.text", "display_name"},
	"address": {"formatted_address", "formattedAddress", "vicinity", "shortFormattedAddress", "address"},
	"lat":     {"geometry.location.lat", "location.latitude", "location.lat", "lat"},
	"lng":     {"geometry.location.lng", "location.longitude", "location.lng", "lng"},
	"rating":  {"rating", "rating.value"},
	"reviews": {"user_ratings_total", "userRatingCount", "reviews_count"},
}

var detailAliases = map[string][]string{
	"phone": {"result.formatted_phone_number", "result.international_phone_number", "nationalPhoneNumber", "internationalPhoneNumber"},
	"hours": {"result.opening_hours.weekday_text", "regularOpeningHours.weekdayDescriptions", "result.current_opening_hours.weekday_text"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// getFloatFlexible: number from several paths (float64/int/string like "4,5").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstInt64Flexible: int64 from several paths (float64/int/string).
func firstInt64Flexible(m map[string]any, paths ...string) *int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			x := int64(v)
			return &x
		case int:
			x := int64(v)
			return &x
		case int64:
			x := v
			return &x
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ".", ""))
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return &n
			}
		}
	}
	return nil
}

// firstSliceStrings: first non-empty []any of strings.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if raw, ok := lookupAny(m, k).([]any); ok {
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

/********** place mapper **********/

// mapCandidate decodes one search hit. Hits without an id are unusable
// for dedup and are dropped.
func mapCandidate(p map[string]any) (domain.PlaceCandidate, bool) {
	id := deref(firstNonEmptyAlias(p, placeAliases, "id"))
	if id == "" {
		return domain.PlaceCandidate{}, false
	}
	c := domain.PlaceCandidate{
		PlaceID: id,
		Name:    deref(firstNonEmptyAlias(p, placeAliases, "name")),
		Address: deref(firstNonEmptyAlias(p, placeAliases, "address")),
	}
	if f := getFloatFlexible(p, placeAliases["rating"]...); f != nil {
		c.Rating = *f
	}
	if n := firstInt64Flexible(p, placeAliases["reviews"]...); n != nil {
		c.ReviewCount = int(*n)
	}
	lat := getFloatFlexible(p, placeAliases["lat"]...)
	lng := getFloatFlexible(p, placeAliases["lng"]...)
	if lat != nil && lng != nil {
		c.Coords = &domain.Coords{Lat: *lat, Lng: *lng}
	}
	return c, true
}

// mapPlacesPage decodes a text/nearby search page and its continuation token.
func mapPlacesPage(raw map[string]any) ([]domain.PlaceCandidate, string) {
	var out []domain.PlaceCandidate
	items, _ := lookupAny(raw, "results").([]any)
	if items == nil {
		items, _ = lookupAny(raw, "places").([]any)
	}
	for _, it := range items {
		p, ok := it.(map[string]any)
		if !ok {
			continue
		}
		if c, ok := mapCandidate(p); ok {
			out = append(out, c)
		}
	}
	next := lookupStr(raw, "next_page_token")
	if next == "" {
		next = lookupStr(raw, "nextPageToken")
	}
	return out, next
}

// mapGeocode returns the coordinates of every geocoder result, best first.
func mapGeocode(raw map[string]any) []domain.Coords {
	items, _ := lookupAny(raw, "results").([]any)
	out := make([]domain.Coords, 0, len(items))
	for _, it := range items {
		p, ok := it.(map[string]any)
		if !ok {
			continue
		}
		lat := getFloatFlexible(p, "geometry.location.lat")
		lng := getFloatFlexible(p, "geometry.location.lng")
		if lat != nil && lng != nil {
			out = append(out, domain.Coords{Lat: *lat, Lng: *lng})
		}
	}
	return out
}

// mapDetails pulls the phone and the weekly hours; "" when absent.
func mapDetails(raw map[string]any) (phone, hours string) {
	phone = deref(firstNonEmptyAlias(raw, detailAliases, "phone"))
	if days := firstSliceStrings(raw, detailAliases["hours"]...); len(days) > 0 {
		hours = strings.Join(days, ", ")
	}
	return phone, hours
}
