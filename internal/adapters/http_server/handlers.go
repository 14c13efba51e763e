package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"restaurant_scout/internal/app"
	"restaurant_scout/internal/domain"
)

const (
	healthMessage  = "Restaurant Scraper API is running"
	msgBadJSONBody = "Geçersiz istek gövdesi"
)

type Handlers struct {
	Search    *app.SearchService
	Export    *app.ExportService
	Cities    map[string][]string
	FoodTypes []string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// searchBody is the JSON the web client posts. A missing minRating means the
// default bar, an explicit 0 means no bar.
type searchBody struct {
	City           string   `json:"city"`
	District       string   `json:"district"`
	FoodType       string   `json:"foodType"`
	RestaurantName string   `json:"restaurantName"`
	MinRating      *float64 `json:"minRating"`
	Page           int      `json:"page"`
	PerPage        int      `json:"perPage"`
	FullScan       bool     `json:"fullScan"`
	SaveToSheets   bool     `json:"saveToSheets"`
}

func (b searchBody) request() domain.SearchRequest {
	minRating := domain.DefaultMinRating
	if b.MinRating != nil {
		minRating = *b.MinRating
	}
	return domain.SearchRequest{
		City:           b.City,
		District:       b.District,
		FoodType:       b.FoodType,
		RestaurantName: b.RestaurantName,
		MinRating:      minRating,
		Page:           b.Page,
		PerPage:        b.PerPage,
		FullScan:       b.FullScan,
	}
}

type searchResponse struct {
	Success bool `json:"success"`
	domain.SearchResult
	Saved     *bool  `json:"saved,omitempty"`
	Message   string `json:"message,omitempty"`
	SheetName string `json:"sheetName,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/health", h.health)
	s.mux.Post("/api/search", h.search)
	s.mux.Post("/api/search-and-save", h.searchAndSave)
	s.mux.Get("/api/cities", h.cities)
	s.mux.Get("/api/food-types", h.foodTypes)
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "message": healthMessage})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Search.Search(searchContext(r), body.request())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Success: true, SearchResult: res})
}

func (h *Handlers) searchAndSave(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Export.SearchAndSave(searchContext(r), body.request(), body.SaveToSheets, "")
	if err != nil {
		writeError(w, err)
		return
	}
	out := searchResponse{Success: true, SearchResult: res.SearchResult}
	if res.Save != nil {
		saved := res.Save.Saved
		out.Saved = &saved
		out.Message = res.Save.Message
		out.SheetName = res.Save.SheetName
	}
	writeJSON(w, http.StatusOK, out)
}

// searchContext detaches a search from the client connection; a harvest
// always runs to the end.
func searchContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (h *Handlers) cities(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Cities)
}

func (h *Handlers) foodTypes(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.FoodTypes)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debug().Err(err).Msg("bad request body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadJSONBody})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	default:
		log.Error().Err(err).Msg("search failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeCached serves static reference data with a weak ETag.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write reference body")
	}
}
