package db_models

import (
	"github.com/lib/pq"

	"gotrip/internal/models/domain_models"
)

// PlaceRecord is the catalog row backing the Place Catalog Provider.
type PlaceRecord struct {
	BaseModel
	Name          string  `gorm:"not null"`
	Category      string  `gorm:"index;not null"`
	Latitude      float64 `gorm:"index"`
	Longitude     float64 `gorm:"index"`
	Rating        float64
	ReviewCount   int
	EstimatedCost float64
	VisitMinutes  int
	Description   string
	City          string
	Images        pq.StringArray `gorm:"type:text[]"`
}

func (PlaceRecord) TableName() string { return "places" }

// ToDomain converts a catalog row to the engine's immutable place value.
// Rows with a category outside the taxonomy default to the neutral category
// rather than failing the fetch.
func (r *PlaceRecord) ToDomain() domain_models.Place {
	category, ok := domain_models.ParseCategory(r.Category)
	if !ok {
		category = domain_models.CategoryNeutral
	}
	return domain_models.Place{
		ID:            r.ID.String(),
		Name:          r.Name,
		Category:      category,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		EstimatedCost: r.EstimatedCost,
		VisitMinutes:  r.VisitMinutes,
		Description:   r.Description,
		City:          r.City,
		ImageURLs:     r.Images,
	}
}
