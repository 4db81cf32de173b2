package service

import (
	"context"
	"errors"
	"fmt"

	"house-rental-backend/internal/database/models"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/events"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestService handles tenant contact requests
type RequestService struct {
	repo      repository.RequestRepositoryInterface
	houseRepo repository.HouseRepositoryInterface
	publisher events.Publisher
	validator *validator.Validate
}

// NewRequestService creates a new request service
func NewRequestService(repo repository.RequestRepositoryInterface, houseRepo repository.HouseRepositoryInterface, publisher events.Publisher, validator *validator.Validate) *RequestService {
	return &RequestService{
		repo:      repo,
		houseRepo: houseRepo,
		publisher: publisher,
		validator: validator,
	}
}

// CreateTenantRequest represents the tenant contact form
type CreateTenantRequest struct {
	HouseID       string `json:"houseId" form:"houseId"`
	TenantName    string `json:"tenantName" form:"tenantName" validate:"required,max=200"`
	TenantContact string `json:"tenantContact" form:"tenantContact" validate:"required,max=255"`
	ContactMethod string `json:"contactMethod" form:"contactMethod" validate:"max=50"`
}

// TenantRequestResponse represents a request with its listing attached.
// House is nil once the listing has been deleted.
type TenantRequestResponse struct {
	ID            uuid.UUID      `json:"_id"`
	House         *HouseResponse `json:"houseId"`
	OwnerID       uuid.UUID      `json:"ownerId"`
	TenantName    string         `json:"tenantName"`
	TenantContact string         `json:"tenantContact"`
	ContactMethod string         `json:"contactMethod"`
	CreatedAt     string         `json:"createdAt"`
}

// CreateRequest records a request for an existing listing, addressed to its current owner
func (s *RequestService) CreateRequest(ctx context.Context, req *CreateTenantRequest) (*TenantRequestResponse, error) {
	houseID, err := uuid.Parse(req.HouseID)
	if err != nil {
		return nil, apperrors.ErrHouseNotFound
	}

	house, err := s.houseRepo.GetByID(houseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseNotFound
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	request := &models.Request{
		HouseID:       house.ID,
		OwnerID:       house.OwnerID,
		TenantName:    req.TenantName,
		TenantContact: req.TenantContact,
		ContactMethod: req.ContactMethod,
	}
	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.House = house

	event := events.RequestCreated{
		RequestID:     request.ID,
		HouseID:       house.ID,
		OwnerID:       house.OwnerID,
		TenantName:    request.TenantName,
		TenantContact: request.TenantContact,
		ContactMethod: request.ContactMethod,
		CreatedAt:     request.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.KeyRequestCreated, event); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to publish request created event")
	}

	return toTenantRequestResponse(request), nil
}

// ListOwnerRequests returns the requests addressed to ownerID, newest first
func (s *RequestService) ListOwnerRequests(ownerID uuid.UUID) ([]TenantRequestResponse, error) {
	requests, err := s.repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner requests: %w", err)
	}

	responses := make([]TenantRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *toTenantRequestResponse(&requests[i]))
	}
	return responses, nil
}

func toTenantRequestResponse(request *models.Request) *TenantRequestResponse {
	resp := &TenantRequestResponse{
		ID:            request.ID,
		OwnerID:       request.OwnerID,
		TenantName:    request.TenantName,
		TenantContact: request.TenantContact,
		ContactMethod: request.ContactMethod,
		CreatedAt:     request.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if request.House != nil {
		resp.House = toHouseResponse(request.House)
	}
	return resp
}
