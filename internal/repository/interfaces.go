package repository

import (
	"time"

	"house-rental-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OwnerRepositoryInterface defines the interface for owner repository operations
type OwnerRepositoryInterface interface {
	Create(owner *models.Owner) error
	GetByID(id uuid.UUID) (*models.Owner, error)
	GetByUsername(username string) (*models.Owner, error)
	GetByEmail(email string) (*models.Owner, error)
	GetByUsernameOrEmail(username, email string) (*models.Owner, error)
	GetByResetToken(token string, now time.Time) (*models.Owner, error)
	Update(owner *models.Owner) error
}

// HouseRepositoryInterface defines the interface for house listing repository operations
type HouseRepositoryInterface interface {
	Create(house *models.House) error
	GetByID(id uuid.UUID) (*models.House, error)
	Find(filter HouseFilter) ([]models.House, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.House, error)
	DeleteByOwner(id, ownerID uuid.UUID) (int64, error)
}

// RequestRepositoryInterface defines the interface for tenant request repository operations
type RequestRepositoryInterface interface {
	Create(request *models.Request) error
	GetByOwnerID(ownerID uuid.UUID) ([]models.Request, error)
}
