package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotrip/internal/models/db_models"
)

type PlaceRepository interface {
	CreatePlace(ctx context.Context, place *db_models.PlaceRecord) (uuid.UUID, error)
	UpdatePlace(ctx context.Context, place *db_models.PlaceRecord) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.PlaceRecord, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.PlaceRecord, error)
	ListByCategories(ctx context.Context, categories []string, limit int) ([]db_models.PlaceRecord, error)
	ListByCategoriesWithin(ctx context.Context, categories []string, minLat, maxLat, minLon, maxLon float64, limit int) ([]db_models.PlaceRecord, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) CreatePlace(ctx context.Context, place *db_models.PlaceRecord) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

func (r *placeRepository) UpdatePlace(ctx context.Context, place *db_models.PlaceRecord) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(place)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to update place: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.PlaceRecord{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.PlaceRecord, error) {
	var place db_models.PlaceRecord
	err := r.db.WithContext(ctx).
		First(&place, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.PlaceRecord, error) {
	var places []db_models.PlaceRecord
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&places).Error

	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListByCategories(ctx context.Context, categories []string, limit int) ([]db_models.PlaceRecord, error) {
	var places []db_models.PlaceRecord

	err := r.db.WithContext(ctx).
		Where("category IN ?", categories).
		Order("rating DESC").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

// ListByCategoriesWithin narrows the catalog scan to a bounding box. The
// exact radius cut happens in the catalog service; the box only keeps the
// query indexable.
func (r *placeRepository) ListByCategoriesWithin(ctx context.Context, categories []string, minLat, maxLat, minLon, maxLon float64, limit int) ([]db_models.PlaceRecord, error) {
	var places []db_models.PlaceRecord

	err := r.db.WithContext(ctx).
		Where("category IN ?", categories).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLon, maxLon).
		Order("rating DESC").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
