package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"restaurant_scout/internal/domain"
)

// fakePlaces answers provider calls from the configured funcs. A nil func
// yields an empty OK page.
type fakePlaces struct {
	mu sync.Mutex

	text    func(query, token string) (map[string]any, error)
	nearby  func(center domain.Coords, keyword, token string) (map[string]any, error)
	geocode func(address string) (map[string]any, error)
	details func(id string) (map[string]any, error)

	textCalls    []string
	nearbyCalls  []string
	geocodeCalls []string
	detailCalls  []string
}

func (f *fakePlaces) TextSearch(_ context.Context, query, _, _, token string) (map[string]any, error) {
	f.mu.Lock()
	f.textCalls = append(f.textCalls, query+"|"+token)
	f.mu.Unlock()
	if f.text == nil {
		return page(""), nil
	}
	return f.text(query, token)
}

func (f *fakePlaces) NearbySearch(_ context.Context, center domain.Coords, _ int, keyword, _, token string) (map[string]any, error) {
	f.mu.Lock()
	f.nearbyCalls = append(f.nearbyCalls, keyword+"|"+token)
	f.mu.Unlock()
	if f.nearby == nil {
		return page(""), nil
	}
	return f.nearby(center, keyword, token)
}

func (f *fakePlaces) Geocode(_ context.Context, address string) (map[string]any, error) {
	f.mu.Lock()
	f.geocodeCalls = append(f.geocodeCalls, address)
	f.mu.Unlock()
	if f.geocode == nil {
		return geocoded(41.02, 29.03), nil
	}
	return f.geocode(address)
}

func (f *fakePlaces) PlaceDetails(_ context.Context, id, _ string) (map[string]any, error) {
	f.mu.Lock()
	f.detailCalls = append(f.detailCalls, id)
	f.mu.Unlock()
	if f.details == nil {
		return map[string]any{"status": "OK", "result": map[string]any{}}, nil
	}
	return f.details(id)
}

func (f *fakePlaces) calls() (text, nearby, geocode, details int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.textCalls), len(f.nearbyCalls), len(f.geocodeCalls), len(f.detailCalls)
}

func place(id, name, address string, rating float64, reviews int) map[string]any {
	return map[string]any{
		"place_id":           id,
		"name":               name,
		"formatted_address":  address,
		"rating":             rating,
		"user_ratings_total": float64(reviews),
	}
}

func placeAt(id, name, address string, rating float64, lat, lng float64) map[string]any {
	p := place(id, name, address, rating, 10)
	p["geometry"] = map[string]any{"location": map[string]any{"lat": lat, "lng": lng}}
	return p
}

func page(next string, items ...map[string]any) map[string]any {
	res := make([]any, 0, len(items))
	for _, it := range items {
		res = append(res, it)
	}
	out := map[string]any{"status": "OK", "results": res}
	if next != "" {
		out["next_page_token"] = next
	}
	return out
}

func geocoded(lat, lng float64) map[string]any {
	return map[string]any{"status": "OK", "results": []any{
		map[string]any{"geometry": map[string]any{"location": map[string]any{"lat": lat, "lng": lng}}},
	}}
}

func detailsOf(phone string, days ...string) map[string]any {
	res := map[string]any{}
	if phone != "" {
		res["formatted_phone_number"] = phone
	}
	if len(days) > 0 {
		wd := make([]any, 0, len(days))
		for _, d := range days {
			wd = append(wd, d)
		}
		res["opening_hours"] = map[string]any{"weekday_text": wd}
	}
	return map[string]any{"status": "OK", "result": res}
}

// waitRecorder stands in for the pagination delay.
type waitRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
	deny  bool
}

func (w *waitRecorder) wait(_ context.Context, d time.Duration) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.waits = append(w.waits, d)
	return !w.deny
}

// memCache is a JSON round-tripping domain.Cache.
type memCache struct {
	mu   sync.Mutex
	m    map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{m: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any, _ int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = b
	c.sets++
	return nil
}

func (c *memCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}

type fakeExporter struct {
	mu     sync.Mutex
	tables map[string][]domain.RestaurantRecord
	err    error
}

func (e *fakeExporter) UpsertTable(_ context.Context, name string, rows []domain.RestaurantRecord) error {
	if e.err != nil {
		return e.err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tables == nil {
		e.tables = map[string][]domain.RestaurantRecord{}
	}
	e.tables[name] = append([]domain.RestaurantRecord(nil), rows...)
	return nil
}

type fakeRunLog struct {
	mu   sync.Mutex
	runs []domain.SearchRun
}

func (r *fakeRunLog) RecordRun(_ context.Context, run domain.SearchRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

// uskudarFixture is 45 hits: 25 good Üsküdar köftecis, 5 good ones in
// Kadıköy and 15 below the rating bar.
func uskudarFixture() map[string]any {
	var items []map[string]any
	for i := 0; i < 25; i++ {
		items = append(items, place(fmt.Sprintf("u%02d", i), fmt.Sprintf("Köfteci %d", i),
			fmt.Sprintf("Mimar Sinan Mah. No:%d, Üsküdar, İstanbul", i), 4.5+float64(i%5)/10, 80))
	}
	for i := 0; i < 5; i++ {
		items = append(items, place(fmt.Sprintf("k%02d", i), fmt.Sprintf("Köfteci Kadıköy %d", i),
			fmt.Sprintf("Caferağa Mah. No:%d, Kadıköy, İstanbul", i), 4.8, 200))
	}
	for i := 0; i < 15; i++ {
		items = append(items, place(fmt.Sprintf("l%02d", i), fmt.Sprintf("Köfte Evi %d", i),
			"Üsküdar, İstanbul", 4.0, 30))
	}
	return page("", items...)
}

func noWait(context.Context, time.Duration) bool { return true }
