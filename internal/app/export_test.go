package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_scout/internal/domain"
)

var uskudarReq = domain.SearchRequest{City: "İstanbul", District: "Üsküdar", FoodType: "köfte", MinRating: 4.5}

func fixturePlaces() *fakePlaces {
	return &fakePlaces{text: func(string, string) (map[string]any, error) { return uskudarFixture(), nil }}
}

func TestSearchAndSave_WritesFullList(t *testing.T) {
	exp := &fakeExporter{}
	runs := &fakeRunLog{}
	x := NewExportService(newTestSearch(fixturePlaces(), nil), exp, "sheets", runs)

	res, err := x.SearchAndSave(context.Background(), uskudarReq, true, "")
	require.NoError(t, err)

	assert.Equal(t, 20, res.Count)
	assert.Len(t, res.All, 25)
	require.NotNil(t, res.Save)
	assert.True(t, res.Save.Saved)
	assert.Equal(t, "25 restoran bulundu ve kaydedildi", res.Save.Message)
	assert.Equal(t, "Uskudar_kofte_4.5+", res.Save.SheetName)
	assert.Len(t, exp.tables["Uskudar_kofte_4.5+"], 25, "export gets every page")

	require.Len(t, runs.runs, 1)
	assert.NotEmpty(t, runs.runs[0].ID)
	assert.Equal(t, runs.runs[0].ID, res.RunID)
	assert.True(t, runs.runs[0].Saved)
	assert.Equal(t, 25, runs.runs[0].TotalCount)
}

func TestSearchAndSave_ExportFailureKeepsSearch(t *testing.T) {
	exp := &fakeExporter{err: errors.New("quota")}
	x := NewExportService(newTestSearch(fixturePlaces(), nil), exp, "sheets", nil)

	res, err := x.SearchAndSave(context.Background(), uskudarReq, true, "")
	require.NoError(t, err)

	assert.Equal(t, 25, res.TotalCount)
	assert.False(t, res.Save.Saved)
	assert.Equal(t, "Sheet güncellenemedi", res.Save.Message)
}

func TestSearchAndSave_NothingFound(t *testing.T) {
	exp := &fakeExporter{}
	x := NewExportService(newTestSearch(&fakePlaces{}, nil), exp, "sheets", nil)

	res, err := x.SearchAndSave(context.Background(), uskudarReq, true, "")
	require.NoError(t, err)

	assert.Zero(t, res.TotalCount)
	assert.False(t, res.Save.Saved)
	assert.Equal(t, "Restoran bulunamadı", res.Save.Message)
	assert.Empty(t, exp.tables)
}

func TestSearchAndSave_NoTarget(t *testing.T) {
	x := NewExportService(newTestSearch(fixturePlaces(), nil), nil, "", nil)

	res, err := x.SearchAndSave(context.Background(), uskudarReq, true, "")
	require.NoError(t, err)
	assert.False(t, res.Save.Saved)
	assert.Equal(t, "Dışa aktarma hedefi yapılandırılmamış", res.Save.Message)
	assert.Empty(t, res.RunID)

	res, err = x.SearchAndSave(context.Background(), uskudarReq, false, "")
	require.NoError(t, err)
	assert.Nil(t, res.Save)
}

func TestSearchAndSave_ErrorsPassThrough(t *testing.T) {
	x := NewExportService(newTestSearch(&fakePlaces{}, nil), &fakeExporter{}, "sheets", nil)
	_, err := x.SearchAndSave(context.Background(), domain.SearchRequest{City: "İstanbul"}, true, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		req  domain.SearchRequest
		want string
	}{
		{uskudarReq, "Uskudar_kofte_4.5+"},
		{domain.SearchRequest{District: "Beşiktaş", RestaurantName: "Çiğ Köfteci Ömer", FoodType: "çiğ köfte", MinRating: 4}, "Besiktas_Cig Kofteci Omer_cig kofte_4+"},
		{domain.SearchRequest{City: "İzmir", FoodType: "balık", MinRating: 4.2}, "balik_4.2+"},
		{domain.SearchRequest{District: "Şişli", FoodType: "a/b:c?", MinRating: 0}, "Sisli_a_b_c__0+"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SheetName(tc.req))
	}

	long := SheetName(domain.SearchRequest{RestaurantName: strings.Repeat("ğ", 150), MinRating: 4.5})
	assert.Len(t, []rune(long), 100)
}

func TestBatch_RunsEveryEntry(t *testing.T) {
	exp := &fakeExporter{}
	x := NewExportService(newTestSearch(fixturePlaces(), nil), exp, "sheets", nil)

	out := x.Batch(context.Background(), []domain.BatchSearch{
		{Request: uskudarReq, SheetName: "custom"},
		{Request: domain.SearchRequest{City: "İstanbul"}},
	})

	require.Len(t, out, 2)
	assert.NoError(t, out[0].Err)
	assert.True(t, out[0].Save.Saved)
	assert.Contains(t, exp.tables, "custom")
	assert.ErrorIs(t, out[1].Err, domain.ErrValidation)
}
