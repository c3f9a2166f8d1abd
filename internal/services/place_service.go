package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"gotrip/internal/models/db_models"
	"gotrip/internal/models/domain_models"
	"gotrip/internal/models/request_models"
	"gotrip/internal/models/response_models"
	"gotrip/internal/repositories"
	"gotrip/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id string) (response_models.PlaceResponse, error)
	ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error)
	ListCategories() []string
	CreatePlace(ctx context.Context, request request_models.CreatePlaceRequest) (string, error)
	UpdatePlace(ctx context.Context, request request_models.UpdatePlaceRequest) error
	DeletePlace(ctx context.Context, id uuid.UUID) error
}

// PlaceService is the management surface over the place catalog.
type PlaceService struct {
	placeRepository repositories.PlaceRepository
}

func NewPlaceService(placeRepository repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepository: placeRepository,
	}
}

func (p *PlaceService) GetPlaceByID(ctx context.Context, id string) (response_models.PlaceResponse, error) {
	record, err := p.placeRepository.GetByID(ctx, id)
	if err != nil {
		return response_models.PlaceResponse{}, utils.ErrDatabaseError
	}

	if record == nil {
		return response_models.PlaceResponse{}, utils.ErrPlaceNotFound
	}

	return toPlaceResponse(record), nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error) {
	records, err := p.placeRepository.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if len(records) == 0 {
		return []response_models.PlaceResponse{}, nil
	}

	responses := make([]response_models.PlaceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toPlaceResponse(&records[i]))
	}

	return responses, nil
}

func (p *PlaceService) ListCategories() []string {
	categories := domain_models.AllCategories()
	out := make([]string, 0, len(categories))
	for _, category := range categories {
		out = append(out, string(category))
	}
	return out
}

func (p *PlaceService) CreatePlace(ctx context.Context, request request_models.CreatePlaceRequest) (string, error) {
	if _, ok := domain_models.ParseCategory(request.Category); !ok {
		return "", utils.ErrInvalidInput
	}

	record := &db_models.PlaceRecord{
		Name:          request.Name,
		Category:      request.Category,
		Latitude:      request.Latitude,
		Longitude:     request.Longitude,
		Rating:        request.Rating,
		ReviewCount:   request.ReviewCount,
		EstimatedCost: request.EstimatedCost,
		VisitMinutes:  request.VisitMinutes,
		Description:   request.Description,
		City:          request.City,
		Images:        request.Images,
	}

	id, err := p.placeRepository.CreatePlace(ctx, record)
	if err != nil {
		log.Printf("Error creating place: %v", err)
		return "", utils.ErrDatabaseError
	}

	return id.String(), nil
}

func (p *PlaceService) UpdatePlace(ctx context.Context, request request_models.UpdatePlaceRequest) error {
	if _, ok := domain_models.ParseCategory(request.Category); !ok {
		return utils.ErrInvalidInput
	}

	existing, err := p.placeRepository.GetByID(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return utils.ErrDatabaseError
	}

	if existing == nil {
		return utils.ErrPlaceNotFound
	}

	existing.Name = request.Name
	existing.Category = request.Category
	existing.Latitude = request.Latitude
	existing.Longitude = request.Longitude
	existing.Rating = request.Rating
	existing.ReviewCount = request.ReviewCount
	existing.EstimatedCost = request.EstimatedCost
	existing.VisitMinutes = request.VisitMinutes
	existing.Description = request.Description
	existing.City = request.City
	existing.Images = request.Images

	if err := p.placeRepository.UpdatePlace(ctx, existing); err != nil {
		log.Printf("Error updating place: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PlaceService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	existing, err := p.placeRepository.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return utils.ErrDatabaseError
	}

	if existing == nil {
		return utils.ErrPlaceNotFound
	}

	if err := p.placeRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting place: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func toPlaceResponse(record *db_models.PlaceRecord) response_models.PlaceResponse {
	place := record.ToDomain()
	return response_models.PlaceResponse{
		ID:            place.ID,
		Name:          place.Name,
		Category:      string(place.Category),
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		Rating:        place.Rating,
		ReviewCount:   place.ReviewCount,
		EstimatedCost: place.EstimatedCost,
		VisitMinutes:  place.VisitMinutes,
		Description:   place.Description,
		City:          place.City,
		Images:        place.ImageURLs,
	}
}
