package app

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_scout/internal/domain"
)

func newTestSearch(fp domain.PlacesClient, c domain.Cache) *SearchService {
	return NewSearchService(fp, c, SearchOptions{Wait: noWait})
}

func TestSearch_UskudarKofteci(t *testing.T) {
	fp := &fakePlaces{
		text: func(_ string, tok string) (map[string]any, error) {
			if tok != "" {
				return page(""), nil
			}
			return uskudarFixture(), nil
		},
		details: func(id string) (map[string]any, error) {
			return detailsOf("0216 000 00 " + id[1:]), nil
		},
	}
	svc := newTestSearch(fp, nil)

	res, err := svc.Search(context.Background(), domain.SearchRequest{
		City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, res.Count)
	assert.Equal(t, 25, res.TotalCount)
	assert.True(t, res.HasMore)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 20, res.PerPage)
	assert.Equal(t, "Üsküdar, İstanbul", res.Location)
	assert.Equal(t, "köfte", res.FoodType)
	for i, r := range res.Data {
		assert.True(t, strings.Contains(r.Address, "Üsküdar"), r.Address)
		assert.GreaterOrEqual(t, r.Rating, 4.5)
		if i > 0 {
			assert.LessOrEqual(t, r.Rating, res.Data[i-1].Rating)
		}
	}

	_, _, geocodes, details := fp.calls()
	assert.Zero(t, geocodes, "45 hits need no supplement")
	assert.Equal(t, 25, details)
}

func TestSearch_SecondPage(t *testing.T) {
	fp := &fakePlaces{text: func(string, string) (map[string]any, error) { return uskudarFixture(), nil }}
	svc := newTestSearch(fp, nil)

	res, err := svc.Search(context.Background(), domain.SearchRequest{
		City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5, Page: 2, PerPage: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Count)
	assert.False(t, res.HasMore)

	res, err = svc.Search(context.Background(), domain.SearchRequest{
		City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5, Page: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)

	res, err = svc.Search(context.Background(), domain.SearchRequest{
		City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5, Page: math.MaxInt64 / 100, PerPage: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.False(t, res.HasMore)
	assert.Equal(t, 25, res.TotalCount)
}

func TestSearch_NotConfiguredBeforeValidation(t *testing.T) {
	svc := NewSearchService(nil, nil, SearchOptions{})
	_, err := svc.Search(context.Background(), domain.SearchRequest{})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSearch_Validation(t *testing.T) {
	fp := &fakePlaces{}
	svc := newTestSearch(fp, nil)

	_, err := svc.Search(context.Background(), domain.SearchRequest{City: "İstanbul"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "İlçe, yemek türü veya restoran adından en az birini belirtmelisiniz", err.Error())

	_, err = svc.Search(context.Background(), domain.SearchRequest{District: "Kadıköy"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Şehir seçimi zorunludur", err.Error())

	text, _, _, _ := fp.calls()
	assert.Zero(t, text, "no provider call on invalid input")
}

func TestSearch_PlanQueries(t *testing.T) {
	svc := newTestSearch(&fakePlaces{}, nil)

	q := svc.Plan(domain.SearchRequest{City: "İstanbul", District: "Üsküdar", FoodType: "köfte"})
	assert.Equal(t, "Üsküdar, İstanbul", q.Location)
	assert.Equal(t, "köfte", q.Keyword)
	assert.Contains(t, q.Texts, "köfte in Üsküdar, İstanbul")
	assert.Contains(t, q.Texts, "köfteci in Üsküdar, İstanbul")
	assert.Contains(t, q.Texts, "lokanta in Üsküdar, İstanbul")

	q = svc.Plan(domain.SearchRequest{City: "İstanbul", FoodType: "köfte", RestaurantName: "Tarihi"})
	assert.Contains(t, q.Texts, "Tarihi köfte in İstanbul")
	assert.Contains(t, q.Texts, "Tarihi in İstanbul")
	assert.NotContains(t, q.Texts, "Tarihi restoran in İstanbul")

	q = svc.Plan(domain.SearchRequest{City: "İstanbul", RestaurantName: "Köfteci Yusuf"})
	assert.Equal(t, "köfteci yusuf in İstanbul", q.Texts[0])
	assert.Equal(t, domain.GenericFoodType, q.Keyword)
}

func TestSearch_PlanCapsTerms(t *testing.T) {
	svc := NewSearchService(&fakePlaces{}, nil, SearchOptions{MaxTerms: 2, Wait: noWait})
	q := svc.Plan(domain.SearchRequest{City: "İstanbul", FoodType: "kebap"})
	assert.Len(t, q.Texts, 2)
}

func TestSearch_PlanFullScan(t *testing.T) {
	svc := newTestSearch(&fakePlaces{}, nil)
	name := domain.SearchRequest{City: "İstanbul", RestaurantName: "Köfteci Yusuf", FullScan: true}

	q := svc.Plan(name)
	assert.Len(t, q.Grid, 9)
	want := svc.terms.Expand("Köfteci Yusuf")
	if len(want) > DefaultMaxTerms {
		want = want[:DefaultMaxTerms]
	}
	assert.Equal(t, want, q.GridTerms)
	assert.NotEmpty(t, q.Texts, "grid runs on top of the text queries")

	q = svc.Plan(domain.SearchRequest{City: "İstanbul", FoodType: "köfte", FullScan: true})
	assert.Empty(t, q.Grid)
	assert.Empty(t, q.GridTerms)
	assert.NotEmpty(t, q.Texts)

	q = svc.Plan(domain.SearchRequest{City: "İstanbul", RestaurantName: "Köfteci Yusuf", FoodType: "köfte", FullScan: true})
	assert.Empty(t, q.Grid)
	assert.NotEmpty(t, q.Texts)

	q = svc.Plan(domain.SearchRequest{City: "Ankara", RestaurantName: "Köfteci Yusuf", FullScan: true})
	assert.Empty(t, q.Grid)
	assert.NotEmpty(t, q.Texts)
}

func TestSearch_CachesCompleteHarvest(t *testing.T) {
	fp := &fakePlaces{text: func(string, string) (map[string]any, error) { return uskudarFixture(), nil }}
	cache := newMemCache()
	svc := newTestSearch(fp, cache)
	req := domain.SearchRequest{City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5}

	first, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	textBefore, _, _, _ := fp.calls()

	req.Page = 2
	second, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	textAfter, _, _, _ := fp.calls()

	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, textBefore, textAfter, "page flip served from cache")
	assert.Equal(t, first.TotalCount, second.TotalCount)
	assert.Equal(t, 5, second.Count)
}

func TestSearch_PartialHarvestNotCached(t *testing.T) {
	calls := 0
	fp := &fakePlaces{text: func(string, string) (map[string]any, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("provider hiccup")
		}
		return uskudarFixture(), nil
	}}
	cache := newMemCache()
	svc := newTestSearch(fp, cache)

	res, err := svc.Search(context.Background(), domain.SearchRequest{City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5})
	require.NoError(t, err)
	assert.Equal(t, 25, res.TotalCount)
	assert.Zero(t, cache.sets)
}

func TestSearch_CacheKeyIgnoresPaging(t *testing.T) {
	a := cacheKey(domain.SearchRequest{City: "İstanbul", District: "Üsküdar", Page: 1, PerPage: 20})
	b := cacheKey(domain.SearchRequest{City: "istanbul", District: "uskudar", Page: 3, PerPage: 50})
	c := cacheKey(domain.SearchRequest{City: "İstanbul", District: "Kadıköy"})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newTestSearch(&fakePlaces{}, nil)
	_, err := svc.Search(ctx, domain.SearchRequest{City: "İstanbul", FoodType: "pide"})
	assert.ErrorIs(t, err, context.Canceled)
}
