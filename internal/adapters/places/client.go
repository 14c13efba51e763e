// internal/adapters/places/client.go
package places

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"restaurant_scout/internal/adapters/observability"
	"restaurant_scout/internal/domain"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api"

type Client struct {
	base string
	hc   *http.Client
	key  string
	lang string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, domain.ErrNotConfigured
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		lang: "tr",
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

func (c *Client) TextSearch(ctx context.Context, query, placeType, lang, pageToken string) (map[string]any, error) {
	q := url.Values{}
	if pageToken != "" {
		// a token replaces every other parameter
		q.Set("pagetoken", pageToken)
	} else {
		q.Set("query", query)
		setIf(q, "type", placeType)
		setIf(q, "language", c.language(lang))
	}
	return c.call(ctx, "textsearch", "/place/textsearch/json", q)
}

func (c *Client) NearbySearch(ctx context.Context, center domain.Coords, radius int, keyword, placeType, pageToken string) (map[string]any, error) {
	q := url.Values{}
	if pageToken != "" {
		q.Set("pagetoken", pageToken)
	} else {
		q.Set("location", strconv.FormatFloat(center.Lat, 'f', 6, 64)+","+strconv.FormatFloat(center.Lng, 'f', 6, 64))
		q.Set("radius", strconv.Itoa(radius))
		setIf(q, "keyword", keyword)
		setIf(q, "type", placeType)
		setIf(q, "language", c.lang)
	}
	return c.call(ctx, "nearbysearch", "/place/nearbysearch/json", q)
}

func (c *Client) Geocode(ctx context.Context, address string) (map[string]any, error) {
	q := url.Values{}
	q.Set("address", address)
	setIf(q, "language", c.lang)
	return c.call(ctx, "geocode", "/geocode/json", q)
}

func (c *Client) PlaceDetails(ctx context.Context, placeID, lang string) (map[string]any, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "formatted_phone_number,international_phone_number,opening_hours")
	setIf(q, "language", c.language(lang))
	return c.call(ctx, "details", "/place/details/json", q)
}

func (c *Client) language(l string) string {
	if l != "" {
		return l
	}
	return c.lang
}

func setIf(q url.Values, k, v string) {
	if v != "" {
		q.Set(k, v)
	}
}

// ---- Internals ----

var (
	ErrNotFound       = fmt.Errorf("places: %w", domain.ErrNotFound)
	ErrUnauthorized   = errors.New("places: unauthorized")
	ErrForbidden      = errors.New("places: forbidden")
	ErrDenied         = errors.New("places: request denied")
	ErrInvalidRequest = errors.New("places: invalid request")
	ErrOverQueryLimit = errors.New("places: over query limit")
)

// statusError maps the provider's in-body status field.
func statusError(status, msg string) (err error, retry bool) {
	switch status {
	case "", "OK", "ZERO_RESULTS":
		return nil, false
	case "OVER_QUERY_LIMIT":
		return ErrOverQueryLimit, true
	case "UNKNOWN_ERROR":
		return fmt.Errorf("places: unknown error: %s", msg), true
	case "REQUEST_DENIED":
		return fmt.Errorf("%w: %s", ErrDenied, msg), false
	case "INVALID_REQUEST":
		return fmt.Errorf("%w: %s", ErrInvalidRequest, msg), false
	case "NOT_FOUND":
		return ErrNotFound, false
	default:
		return fmt.Errorf("places: status %s: %s", status, msg), false
	}
}

// call performs a GET with client-side rate limiting and retries on 429,
// transient 5xx and retryable provider statuses, honoring Retry-After.
func (c *Client) call(ctx context.Context, endpoint, path string, q url.Values) (map[string]any, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	q.Set("key", c.key)
	u := c.base + path + "?" + q.Encode()

	var lastErr error
	for i := 0; i < 4; i++ {
		start := time.Now()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "restaurant-scout/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			observability.ObserveExternal("places", endpoint, 0, time.Since(start))
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr
		}
		observability.ObserveExternal("places", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			var out map[string]any
			err := json.NewDecoder(resp.Body).Decode(&out)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("places: decode %s: %w", endpoint, err)
			}
			status, _ := out["status"].(string)
			msg, _ := out["error_message"].(string)
			serr, retry := statusError(status, msg)
			if serr == nil {
				return out, nil
			}
			lastErr = serr
			if retry && i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr

		case http.StatusNotFound:
			resp.Body.Close()
			return nil, ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return nil, ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return nil, ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("places: remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return nil, fmt.Errorf("places: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return nil, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
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

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff: 200ms doubling per attempt plus up to 50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
