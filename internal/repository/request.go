package repository

import (
	"house-rental-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestRepository handles database operations for tenant requests
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create creates a new request
func (r *RequestRepository) Create(request *models.Request) error {
	return r.db.Omit("House").Create(request).Error
}

// GetByOwnerID retrieves the requests addressed to an owner, newest first, with their listing attached.
// House is nil when the listing has since been deleted.
func (r *RequestRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Preload("House").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
