package domain

import "fmt"

// UnknownValue is written in place of detail fields the provider did not return.
const UnknownValue = "Bilinmiyor"

// PlaceCandidate is one raw provider hit. It lives for a single search.
type PlaceCandidate struct {
	PlaceID     string
	Name        string
	Address     string
	Coords      *Coords
	Rating      float64
	ReviewCount int
}

// RestaurantRecord is the output row. JSON keys are the ones the web client
// and the spreadsheet header already use.
type RestaurantRecord struct {
	Name        string  `json:"İsim"`
	Address     string  `json:"Adres"`
	Rating      float64 `json:"Puan"`
	ReviewCount int     `json:"Yorum Sayısı"`
	Phone       string  `json:"Telefon"`
	Hours       string  `json:"Çalışma Saatleri"`
	MapsURL     string  `json:"Google Maps URL"`
	PlaceID     string  `json:"place_id"`
}

// RecordHeader is the column order used by tabular exports.
var RecordHeader = []string{"İsim", "Adres", "Puan", "Yorum Sayısı", "Telefon", "Çalışma Saatleri", "Google Maps URL", "place_id"}

// Row returns the record's values in RecordHeader order.
func (r RestaurantRecord) Row() []any {
	return []any{r.Name, r.Address, r.Rating, r.ReviewCount, r.Phone, r.Hours, r.MapsURL, r.PlaceID}
}

// MapsURL is derived from the place id alone.
func MapsURL(placeID string) string {
	return fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", placeID)
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is an approximate lat/lng rectangle.
type Bounds struct {
	North, South, East, West float64
}

func (b Bounds) Contains(c Coords) bool {
	return b.South <= c.Lat && c.Lat <= b.North && b.West <= c.Lng && c.Lng <= b.East
}
