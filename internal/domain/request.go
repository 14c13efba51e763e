package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultMinRating = 4.5
	DefaultPage      = 1
	DefaultPerPage   = 20
	MaxPerPage       = 100

	// GenericFoodType is searched when the caller names no food type.
	GenericFoodType = "restaurant"
)

type SearchRequest struct {
	City           string  `json:"city" yaml:"city"`
	District       string  `json:"district,omitempty" yaml:"district"`
	FoodType       string  `json:"foodType,omitempty" yaml:"foodType"`
	RestaurantName string  `json:"restaurantName,omitempty" yaml:"restaurantName"`
	MinRating      float64 `json:"minRating" yaml:"minRating"`
	Page           int     `json:"page" yaml:"-"`
	PerPage        int     `json:"perPage" yaml:"-"`
	// FullScan sweeps a grid over the city with nearby searches when only a
	// restaurant name is given. Costly.
	FullScan bool `json:"fullScan,omitempty" yaml:"fullScan"`
}

// Trimmed returns a copy with whitespace stripped and zero paging filled in.
func (r SearchRequest) Trimmed() SearchRequest {
	r.City = strings.TrimSpace(r.City)
	r.District = strings.TrimSpace(r.District)
	r.FoodType = strings.TrimSpace(r.FoodType)
	r.RestaurantName = strings.TrimSpace(r.RestaurantName)
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PerPage == 0 {
		r.PerPage = DefaultPerPage
	}
	return r
}

// Validate checks a trimmed request. Messages are user facing.
func (r SearchRequest) Validate() error {
	if r.City == "" {
		return &ValidationError{Field: "city", Msg: "Şehir seçimi zorunludur"}
	}
	if r.District == "" && r.FoodType == "" && r.RestaurantName == "" {
		return &ValidationError{Field: "district", Msg: "İlçe, yemek türü veya restoran adından en az birini belirtmelisiniz"}
	}
	if r.MinRating < 0 || r.MinRating > 5 {
		return &ValidationError{Field: "minRating", Msg: "minRating 0 ile 5 arasında olmalıdır"}
	}
	if r.Page < 1 {
		return &ValidationError{Field: "page", Msg: "page en az 1 olmalıdır"}
	}
	if r.PerPage < 1 || r.PerPage > MaxPerPage {
		return &ValidationError{Field: "perPage", Msg: fmt.Sprintf("perPage 1 ile %d arasında olmalıdır", MaxPerPage)}
	}
	return nil
}

// Location is the free-text place the provider is queried for.
func (r SearchRequest) Location() string {
	if r.District != "" {
		return r.District + ", " + r.City
	}
	return r.City
}

// EffectiveFoodType falls back to the generic category.
func (r SearchRequest) EffectiveFoodType() string {
	if r.FoodType == "" {
		return GenericFoodType
	}
	return r.FoodType
}

// NameOnly is true when only a restaurant name narrows the search.
func (r SearchRequest) NameOnly() bool {
	return r.RestaurantName != "" && r.FoodType == ""
}

type SearchResult struct {
	Data       []RestaurantRecord `json:"data"`
	Count      int                `json:"count"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PerPage    int                `json:"perPage"`
	HasMore    bool               `json:"hasMore"`
	Location   string             `json:"location"`
	FoodType   string             `json:"foodType"`
}

// Paginate slices the full ranked list for the requested page.
func Paginate(all []RestaurantRecord, page, perPage int) ([]RestaurantRecord, bool) {
	// compare page counts first so huge pages cannot overflow the offset
	if perPage <= 0 || page < 1 || page-1 >= (len(all)+perPage-1)/perPage {
		return []RestaurantRecord{}, false
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], end < len(all)
}

// SaveResult reports the export step on its own, apart from the search.
type SaveResult struct {
	Saved     bool   `json:"saved"`
	Message   string `json:"message"`
	SheetName string `json:"sheetName,omitempty"`
	Count     int    `json:"count"`
}

// BatchSearch is one saved search in a batch file. An empty SheetName is
// derived from the request.
type BatchSearch struct {
	Request   SearchRequest `yaml:",inline"`
	SheetName string        `yaml:"sheetName,omitempty"`
}
