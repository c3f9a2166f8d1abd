package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotrip/internal/models/db_models"
	"gotrip/internal/models/domain_models"
	"gotrip/pkg/memcache"
)

// fakePlaceRepository serves canned rows and counts catalog hits. The
// bounding-box arguments are ignored on purpose so the exact radius cut in
// the service is what gets exercised.
type fakePlaceRepository struct {
	rows  []db_models.PlaceRecord
	calls int
	err   error
}

func (f *fakePlaceRepository) CreatePlace(_ context.Context, _ *db_models.PlaceRecord) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakePlaceRepository) UpdatePlace(_ context.Context, _ *db_models.PlaceRecord) error {
	return nil
}
func (f *fakePlaceRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakePlaceRepository) GetByID(_ context.Context, _ string) (*db_models.PlaceRecord, error) {
	return nil, nil
}
func (f *fakePlaceRepository) List(_ context.Context, _, _ int) ([]db_models.PlaceRecord, error) {
	return nil, nil
}

func (f *fakePlaceRepository) ListByCategories(_ context.Context, _ []string, _ int) ([]db_models.PlaceRecord, error) {
	f.calls++
	return f.rows, f.err
}

func (f *fakePlaceRepository) ListByCategoriesWithin(_ context.Context, _ []string, _, _, _, _ float64, _ int) ([]db_models.PlaceRecord, error) {
	f.calls++
	return f.rows, f.err
}

func catalogRow(name, category string, lat, lon float64) db_models.PlaceRecord {
	return db_models.PlaceRecord{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
		Category:  category,
		Latitude:  lat,
		Longitude: lon,
		Rating:    4.0,
	}
}

func newTestCatalog(repo *fakePlaceRepository) CatalogServiceInterface {
	return NewCatalogService(repo, memcache.NewPlacesCache(16, time.Minute))
}

func TestFetchPlacesRadiusCut(t *testing.T) {
	repo := &fakePlaceRepository{rows: []db_models.PlaceRecord{
		catalogRow("Red Fort", "history", 28.6562, 77.2410),
		catalogRow("Gateway of India", "history", 18.9220, 72.8347), // ~1150 km off-center
	}}
	catalog := newTestCatalog(repo)

	center := delhi
	places, err := catalog.FetchPlaces(context.Background(), []domain_models.Category{domain_models.CategoryHistory}, 20, &center, 50)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Red Fort", places[0].Name)
}

func TestFetchPlacesWithoutCenter(t *testing.T) {
	repo := &fakePlaceRepository{rows: []db_models.PlaceRecord{
		catalogRow("Red Fort", "history", 28.6562, 77.2410),
		catalogRow("Gateway of India", "history", 18.9220, 72.8347),
	}}
	catalog := newTestCatalog(repo)

	places, err := catalog.FetchPlaces(context.Background(), []domain_models.Category{domain_models.CategoryHistory}, 20, nil, 0)
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestFetchPlacesCachesResults(t *testing.T) {
	repo := &fakePlaceRepository{rows: []db_models.PlaceRecord{
		catalogRow("Red Fort", "history", 28.6562, 77.2410),
	}}
	catalog := newTestCatalog(repo)
	center := delhi
	prefs := []domain_models.Category{domain_models.CategoryHistory}

	first, err := catalog.FetchPlaces(context.Background(), prefs, 20, &center, 50)
	require.NoError(t, err)
	second, err := catalog.FetchPlaces(context.Background(), prefs, 20, &center, 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls, "second fetch must be served from cache")
}

func TestFetchPlacesCacheKeyIgnoresPreferenceOrder(t *testing.T) {
	repo := &fakePlaceRepository{rows: []db_models.PlaceRecord{
		catalogRow("Juhu Beach", "beach", 28.62, 77.21),
	}}
	catalog := newTestCatalog(repo)
	center := delhi

	_, err := catalog.FetchPlaces(context.Background(), []domain_models.Category{domain_models.CategoryFood, domain_models.CategoryBeach}, 20, &center, 50)
	require.NoError(t, err)
	_, err = catalog.FetchPlaces(context.Background(), []domain_models.Category{domain_models.CategoryBeach, domain_models.CategoryFood}, 20, &center, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}

func TestFetchPlacesUnknownCategoryDefaults(t *testing.T) {
	repo := &fakePlaceRepository{rows: []db_models.PlaceRecord{
		catalogRow("Mystery Spot", "spelunking", 28.62, 77.21),
	}}
	catalog := newTestCatalog(repo)
	center := delhi

	places, err := catalog.FetchPlaces(context.Background(), []domain_models.Category{domain_models.CategoryCultural}, 20, &center, 50)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, domain_models.CategoryNeutral, places[0].Category)
}

func TestFetchPlacesRepositoryError(t *testing.T) {
	repo := &fakePlaceRepository{err: assert.AnError}
	catalog := newTestCatalog(repo)
	center := delhi

	_, err := catalog.FetchPlaces(context.Background(), []domain_models.Category{domain_models.CategoryFood}, 20, &center, 50)
	assert.Error(t, err)
}
