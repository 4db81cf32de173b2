package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"house-rental-backend/internal/database/models"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/repository"
	"house-rental-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HouseService handles business logic for house listings
type HouseService struct {
	repo      repository.HouseRepositoryInterface
	images    storage.ImageStore
	validator *validator.Validate
}

// NewHouseService creates a new house service
func NewHouseService(repo repository.HouseRepositoryInterface, images storage.ImageStore, validator *validator.Validate) *HouseService {
	return &HouseService{
		repo:      repo,
		images:    images,
		validator: validator,
	}
}

// CreateHouseRequest represents the listing form fields
type CreateHouseRequest struct {
	Title        string   `json:"title" form:"title" validate:"required,max=200"`
	Description  string   `json:"description" form:"description" validate:"required"`
	Location     string   `json:"location" form:"location" validate:"required,max=255"`
	LocationLink string   `json:"locationLink" form:"locationLink" validate:"max=1024"`
	Price        *float64 `json:"price" form:"price" validate:"required,gte=0"`
	HouseType    string   `json:"houseType" form:"houseType" validate:"required,max=50"`
	Phone        string   `json:"phone" form:"phone" validate:"required,phone10"`
	Email        string   `json:"email" form:"email" validate:"required,max=255"`
}

// ImageUpload is the uploaded image of a new listing
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// HouseListFilter holds the raw query filters of the public listing
type HouseListFilter struct {
	Location  string
	HouseType string
	Budget    *float64
}

// HouseResponse represents a listing as returned by the API
type HouseResponse struct {
	ID           uuid.UUID `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	LocationLink string    `json:"locationLink"`
	Price        float64   `json:"price"`
	HouseType    string    `json:"houseType"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ImagePath    string    `json:"imagePath"`
	OwnerID      uuid.UUID `json:"ownerId"`
	CreatedAt    string    `json:"createdAt"`
}

// CreateHouse validates the listing, stores the image and persists the listing for ownerID.
// The stored image is removed again if the listing cannot be saved.
func (s *HouseService) CreateHouse(ctx context.Context, ownerID uuid.UUID, req *CreateHouseRequest, image *ImageUpload) (*HouseResponse, error) {
	if image == nil || image.Content == nil {
		return nil, apperrors.ErrImageRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	imageName, err := s.images.Save(ctx, image.Filename, image.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	house := &models.House{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		LocationLink: req.LocationLink,
		Price:        *req.Price,
		HouseType:    req.HouseType,
		Phone:        req.Phone,
		Email:        req.Email,
		ImagePath:    imageName,
		OwnerID:      ownerID,
	}
	if err := s.repo.Create(house); err != nil {
		if delErr := s.images.Delete(ctx, imageName); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).Warnf("failed to remove orphaned image %s", imageName)
		}
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	return toHouseResponse(house), nil
}

// ListHouses returns all listings matching every filter that is set
func (s *HouseService) ListHouses(filter HouseListFilter) ([]HouseResponse, error) {
	houses, err := s.repo.Find(repository.HouseFilter{
		Location:  filter.Location,
		HouseType: filter.HouseType,
		MaxPrice:  filter.Budget,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find houses: %w", err)
	}
	return toHouseResponses(houses), nil
}

// ListOwnerHouses returns the listings posted by ownerID
func (s *HouseService) ListOwnerHouses(ownerID uuid.UUID) ([]HouseResponse, error) {
	houses, err := s.repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner houses: %w", err)
	}
	return toHouseResponses(houses), nil
}

// DeleteHouse deletes a listing of ownerID along with its image.
// Deleting a listing that does not exist or belongs to someone else is a no-op.
func (s *HouseService) DeleteHouse(ctx context.Context, ownerID, id uuid.UUID) error {
	house, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get house: %w", err)
	}
	if house.OwnerID != ownerID {
		logger.WithContext(ctx).Warnf("refusing to delete house %s owned by another owner", id)
		return nil
	}

	affected, err := s.repo.DeleteByOwner(id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}
	if affected == 0 || house.ImagePath == "" {
		return nil
	}

	if err := s.images.Delete(ctx, house.ImagePath); err != nil && !apperrors.IsNotFound(err) {
		logger.WithContext(ctx).WithError(err).Warnf("failed to remove image %s", house.ImagePath)
	}
	return nil
}

// OpenImage opens a stored listing image by name
func (s *HouseService) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.images.Open(ctx, name)
}

func toHouseResponse(house *models.House) *HouseResponse {
	return &HouseResponse{
		ID:           house.ID,
		Title:        house.Title,
		Description:  house.Description,
		Location:     house.Location,
		LocationLink: house.LocationLink,
		Price:        house.Price,
		HouseType:    house.HouseType,
		Phone:        house.Phone,
		Email:        house.Email,
		ImagePath:    house.ImagePath,
		OwnerID:      house.OwnerID,
		CreatedAt:    house.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toHouseResponses(houses []models.House) []HouseResponse {
	responses := make([]HouseResponse, 0, len(houses))
	for i := range houses {
		responses = append(responses, *toHouseResponse(&houses[i]))
	}
	return responses
}
