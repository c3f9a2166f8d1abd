package request_models

import "github.com/google/uuid"

type CreatePlaceRequest struct {
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Latitude      float64  `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude     float64  `json:"longitude" binding:"required,gte=-180,lte=180"`
	Rating        float64  `json:"rating" binding:"gte=0,lte=5"`
	ReviewCount   int      `json:"review_count" binding:"gte=0"`
	EstimatedCost float64  `json:"estimated_cost" binding:"gte=0"`
	VisitMinutes  int      `json:"visit_minutes" binding:"gte=0"`
	Description   string   `json:"description"`
	City          string   `json:"city"`
	Images        []string `json:"images"`
}

type UpdatePlaceRequest struct {
	ID            uuid.UUID `json:"id" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Category      string    `json:"category" binding:"required"`
	Latitude      float64   `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude     float64   `json:"longitude" binding:"required,gte=-180,lte=180"`
	Rating        float64   `json:"rating" binding:"gte=0,lte=5"`
	ReviewCount   int       `json:"review_count" binding:"gte=0"`
	EstimatedCost float64   `json:"estimated_cost" binding:"gte=0"`
	VisitMinutes  int       `json:"visit_minutes" binding:"gte=0"`
	Description   string    `json:"description"`
	City          string    `json:"city"`
	Images        []string  `json:"images"`
}
