package repository

import (
	"strings"

	"house-rental-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HouseFilter holds the optional listing filters. Zero values are ignored.
type HouseFilter struct {
	Location  string
	HouseType string
	MaxPrice  *float64
}

// HouseRepository handles database operations for house listings
type HouseRepository struct {
	db *gorm.DB
}

// NewHouseRepository creates a new house repository
func NewHouseRepository(db *gorm.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

// Create creates a new house listing
func (r *HouseRepository) Create(house *models.House) error {
	return r.db.Create(house).Error
}

// GetByID retrieves a house by ID
func (r *HouseRepository) GetByID(id uuid.UUID) (*models.House, error) {
	var house models.House
	err := r.db.First(&house, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &house, nil
}

// Find returns every listing matching all set filters, oldest first
func (r *HouseRepository) Find(filter HouseFilter) ([]models.House, error) {
	var houses []models.House

	query := r.db.Model(&models.House{})
	if filter.Location != "" {
		query = query.Where(`LOWER(location) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.Location))+"%")
	}
	if filter.HouseType != "" {
		query = query.Where("house_type = ?", filter.HouseType)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	if err := query.Order("created_at ASC").Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

// GetByOwnerID retrieves all listings posted by an owner
func (r *HouseRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.House, error) {
	var houses []models.House
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&houses).Error
	if err != nil {
		return nil, err
	}
	return houses, nil
}

// DeleteByOwner deletes the listing only if it belongs to ownerID and reports how many rows went away
func (r *HouseRepository) DeleteByOwner(id, ownerID uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.House{})
	return result.RowsAffected, result.Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
