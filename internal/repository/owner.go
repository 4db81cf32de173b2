package repository

import (
	"time"

	"house-rental-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerRepository handles database operations for owners
type OwnerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Create creates a new owner
func (r *OwnerRepository) Create(owner *models.Owner) error {
	return r.db.Create(owner).Error
}

// GetByID retrieves an owner by ID
func (r *OwnerRepository) GetByID(id uuid.UUID) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.First(&owner, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetByUsername retrieves an owner by username
func (r *OwnerRepository) GetByUsername(username string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.First(&owner, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetByEmail retrieves an owner by email
func (r *OwnerRepository) GetByEmail(email string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.First(&owner, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetByUsernameOrEmail retrieves the first owner matching either the username or the email
func (r *OwnerRepository) GetByUsernameOrEmail(username, email string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.Where("username = ?", username).Or("email = ?", email).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetByResetToken retrieves the owner holding token, provided it has not expired at now
func (r *OwnerRepository) GetByResetToken(token string, now time.Time) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.First(&owner, "reset_token = ? AND reset_token_expiry > ?", token, now).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// Update saves every column of the owner, including nil reset token fields
func (r *OwnerRepository) Update(owner *models.Owner) error {
	return r.db.Save(owner).Error
}
